package repository

import (
	"context"

	"topbookstore-backend/internal/domains/book/model"
)

// Include selects which related data a single-book read loads.
type Include struct {
	Author     bool
	Publisher  bool
	Categories bool
}

// IncludeAll loads every relation.
var IncludeAll = Include{Author: true, Publisher: true, Categories: true}

// BookTx is the write surface available inside a transaction. All writes
// of one logical upsert go through the same BookTx and land in a single
// commit.
type BookTx interface {
	CreateBook(ctx context.Context, b *model.Book) error
	UpdateBook(ctx context.Context, b *model.Book) error
	AttachCategories(ctx context.Context, bookID int64, categoryIDs []int64) error
}

// BookRepository is the persistence boundary for the book domain.
type BookRepository interface {
	ListBooks(ctx context.Context, filter model.Filter) ([]*model.Book, error)
	GetBookByID(ctx context.Context, id int64, include Include) (*model.Book, error)
	ListBooksByCategory(ctx context.Context, categoryID int64) ([]*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error

	// WithinTx runs fn inside one transaction. fn returning nil commits,
	// anything else rolls back.
	WithinTx(ctx context.Context, fn func(tx BookTx) error) error
}
