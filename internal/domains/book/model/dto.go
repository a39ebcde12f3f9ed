package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookRequest is the inbound payload for create and update endpoints.
// It maps one-to-one onto BookDTO; validation lives here, at the HTTP
// boundary, not in the upsert engine.
type BookRequest struct {
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

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Min(0)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ISBN13, validation.Length(0, 17)),
		validation.Field(&r.Inventory, validation.Min(0)),
		validation.Field(&r.Price, validation.Min(0)),
		validation.Field(&r.DiscountPercent, validation.Min(0), validation.Max(100)),
		validation.Field(&r.NumberOfPages, validation.Min(0)),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(1)),
		validation.Field(&r.PublisherID, validation.Required, validation.Min(1)),
	)
}

// ToDTO converts the request into the upsert engine's input.
func (r BookRequest) ToDTO() BookDTO {
	return BookDTO{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ISBN13:          r.ISBN13,
		Inventory:       r.Inventory,
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		NumberOfPages:   r.NumberOfPages,
		PublicationDate: r.PublicationDate,
		ImageURL:        r.ImageURL,
		AuthorID:        r.AuthorID,
		PublisherID:     r.PublisherID,
		CategoryIDs:     r.CategoryIDs,
	}
}

// BookResponse is the detail payload.
type BookResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ISBN13          string    `json:"isbn13,omitempty"`
	Inventory       int       `json:"inventory"`
	Price           int64     `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	DiscountedPrice int64     `json:"discounted_price"`
	NumberOfPages   int       `json:"number_of_pages"`
	PublicationDate time.Time `json:"publication_date"`
	ImageURL        string    `json:"image_url,omitempty"`
	AuthorID        int64     `json:"author_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	PublisherID     int64     `json:"publisher_id"`
	PublisherName   string    `json:"publisher_name,omitempty"`
	CategoryIDs     []int64   `json:"category_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListBookResponse is the slim shape for list views.
type ListBookResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Price           int64  `json:"price"`
	DiscountPercent int    `json:"discount_percent"`
	DiscountedPrice int64  `json:"discounted_price"`
	NumberOfPages   int    `json:"number_of_pages"`
	ImageURL        string `json:"image_url,omitempty"`
	AuthorID        int64  `json:"author_id"`
	AuthorName      string `json:"author_name,omitempty"`
}
