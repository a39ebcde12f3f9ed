package model

import (
	"fmt"
	"sort"
	"strings"
)

// ToResponse maps the entity to the detail payload.
func (b *Book) ToResponse() BookResponse {
	ids := b.CategoryIDs
	if ids == nil {
		ids = []int64{}
	}
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		ISBN13:          b.ISBN13,
		Inventory:       b.Inventory,
		Price:           b.Price,
		DiscountPercent: b.DiscountPercent,
		DiscountedPrice: b.DiscountedPrice(),
		NumberOfPages:   b.NumberOfPages,
		PublicationDate: b.PublicationDate,
		ImageURL:        b.ImageURL,
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName,
		PublisherID:     b.PublisherID,
		PublisherName:   b.PublisherName,
		CategoryIDs:     ids,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToListResponse maps the entity to the slim list payload.
func (b *Book) ToListResponse() ListBookResponse {
	return ListBookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Price:           b.Price,
		DiscountPercent: b.DiscountPercent,
		DiscountedPrice: b.DiscountedPrice(),
		NumberOfPages:   b.NumberOfPages,
		ImageURL:        b.ImageURL,
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName,
	}
}

// ToListResponses maps a slice of entities for list endpoints.
func ToListResponses(books []*Book) []ListBookResponse {
	out := make([]ListBookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, b.ToListResponse())
	}
	return out
}

const (
	cacheKeyBookDetail = "books:detail:%d"
	cacheKeyBookList   = "books:list:%s"

	// CacheKeyBookListPattern matches every cached list; lists are
	// dropped wholesale after any write.
	CacheKeyBookListPattern = "books:list:*"
)

// GenerateBookDetailCacheKey builds the cache key for a single book.
func GenerateBookDetailCacheKey(id int64) string {
	return fmt.Sprintf(cacheKeyBookDetail, id)
}

// GenerateListCacheKey builds a deterministic cache key from the raw
// query parameters. Keys are sorted so equivalent filters share an
// entry regardless of parameter order.
func GenerateListCacheKey(params map[string]string) string {
	if len(params) == 0 {
		return fmt.Sprintf(cacheKeyBookList, "all")
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(strings.ToLower(params[k]))
	}
	return fmt.Sprintf(cacheKeyBookList, sb.String())
}
