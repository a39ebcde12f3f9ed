package service

import (
	"context"

	"topbookstore-backend/internal/domains/book/model"
)

// CategoryResolver narrows a requested category id set down to the ids
// that actually exist. The category domain provides the implementation.
type CategoryResolver interface {
	FilterExisting(ctx context.Context, ids []int64) ([]int64, error)
}

// BookService is the book domain's business surface.
type BookService interface {
	// UpsertBook persists the DTO: id zero inserts, any other id updates
	// the existing book. The whole operation commits exactly once.
	UpsertBook(ctx context.Context, dto model.BookDTO) (*model.Book, error)

	FilterBooks(ctx context.Context, params map[string]string) ([]*model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	GetBooksByCategory(ctx context.Context, categoryID int64) ([]*model.Book, error)
	RemoveBook(ctx context.Context, id int64) error

	UploadCover(ctx context.Context, bookID int64, data []byte) (string, error)
	ExportBooks(ctx context.Context, params map[string]string) ([]byte, error)
}
