package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is the catalog aggregate. ID 0 means the book has not been saved
// yet; the upsert path keys off that sentinel.
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	ISBN13          string    `json:"isbn13" db:"isbn13"`
	Inventory       int       `json:"inventory" db:"inventory"`
	Price           int64     `json:"price" db:"price"` // VND, minor units
	DiscountPercent int       `json:"discount_percent" db:"discount_percent"`
	NumberOfPages   int       `json:"number_of_pages" db:"number_of_pages"`
	PublicationDate time.Time `json:"publication_date" db:"publication_date"`
	ImageURL        string    `json:"image_url" db:"image_url"`

	// Relationships
	AuthorID    int64   `json:"author_id" db:"author_id"`
	PublisherID int64   `json:"publisher_id" db:"publisher_id"`
	CategoryIDs []int64 `json:"category_ids"`

	// Populated via JOIN when the caller asks for eager loading
	AuthorName    string `json:"author_name,omitempty"`
	PublisherName string `json:"publisher_name,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsNew reports whether the book still carries the unsaved-id sentinel.
func (b *Book) IsNew() bool {
	return b.ID == 0
}

// HasCategory reports whether the book is linked to the given category.
func (b *Book) HasCategory(categoryID int64) bool {
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// DiscountedPrice applies DiscountPercent to Price, rounding to whole
// minor units.
func (b *Book) DiscountedPrice() int64 {
	if b.DiscountPercent <= 0 {
		return b.Price
	}
	price := decimal.NewFromInt(b.Price)
	factor := decimal.NewFromInt(int64(100 - b.DiscountPercent)).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(0).IntPart()
}

// BookDTO is the flat external representation consumed by the upsert
// engine. Field ranges are not validated here; the persistence layer's
// constraints are the backstop.
type BookDTO struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ISBN13          string    `json:"isbn13"`
	Inventory       int       `json:"inventory"`
	Price           int64     `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	NumberOfPages   int       `json:"number_of_pages"`
	PublicationDate time.Time `json:"publication_date"`
	ImageURL        string    `json:"image_url"`
	AuthorID        int64     `json:"author_id"`
	PublisherID     int64     `json:"publisher_id"`
	CategoryIDs     []int64   `json:"category_ids"`
}

// ToEntity maps a DTO to a fresh Book, one-to-one. Category links are
// resolved separately by the upsert engine.
func (d BookDTO) ToEntity() *Book {
	now := time.Now()
	return &Book{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		ISBN13:          d.ISBN13,
		Inventory:       d.Inventory,
		Price:           d.Price,
		DiscountPercent: d.DiscountPercent,
		NumberOfPages:   d.NumberOfPages,
		PublicationDate: d.PublicationDate,
		ImageURL:        d.ImageURL,
		AuthorID:        d.AuthorID,
		PublisherID:     d.PublisherID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyDTO overwrites every mutable scalar field from the DTO. The id is
// reassigned too, which is idempotent since the update path loads the
// entity by that id.
func (b *Book) ApplyDTO(d BookDTO) {
	b.ID = d.ID
	b.Title = d.Title
	b.Description = d.Description
	b.ISBN13 = d.ISBN13
	b.Inventory = d.Inventory
	b.Price = d.Price
	b.DiscountPercent = d.DiscountPercent
	b.NumberOfPages = d.NumberOfPages
	b.PublicationDate = d.PublicationDate
	b.ImageURL = d.ImageURL
	b.AuthorID = d.AuthorID
	b.PublisherID = d.PublisherID
	b.UpdatedAt = time.Now()
}
