package service

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/internal/domains/book/repository"
	"topbookstore-backend/internal/infrastructure/storage"
	"topbookstore-backend/pkg/logger"
)

type bookService struct {
	repo           repository.BookRepository
	categories     CategoryResolver
	imageProcessor *storage.ImageProcessor
	minio          *storage.MinIOStorage
	asynqClient    *asynq.Client
}

// NewBookService wires the book domain together.
func NewBookService(
	repo repository.BookRepository,
	categories CategoryResolver,
	imageProcessor *storage.ImageProcessor,
	minio *storage.MinIOStorage,
	asynqClient *asynq.Client,
) BookService {
	return &bookService{
		repo:           repo,
		categories:     categories,
		imageProcessor: imageProcessor,
		minio:          minio,
		asynqClient:    asynqClient,
	}
}

// UpsertBook inserts or updates depending on the DTO's id. Requested
// category ids that don't exist are silently dropped; links the book
// already has are kept even when the DTO omits them. Every branch runs
// inside one transaction and therefore one commit.
func (s *bookService) UpsertBook(ctx context.Context, dto model.BookDTO) (*model.Book, error) {
	categoryIDs, err := s.categories.FilterExisting(ctx, dto.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}

	book := dto.ToEntity()
	if book.IsNew() {
		return s.insertBook(ctx, book, categoryIDs)
	}
	return s.updateBook(ctx, dto, categoryIDs)
}

func (s *bookService) insertBook(ctx context.Context, book *model.Book, categoryIDs []int64) (*model.Book, error) {
	err := s.repo.WithinTx(ctx, func(tx repository.BookTx) error {
		if err := tx.CreateBook(ctx, book); err != nil {
			return err
		}
		return tx.AttachCategories(ctx, book.ID, categoryIDs)
	})
	if err != nil {
		return nil, err
	}

	book.CategoryIDs = categoryIDs
	logger.Info("book created", map[string]interface{}{
		"book_id":    book.ID,
		"categories": len(categoryIDs),
	})

	return book, nil
}

func (s *bookService) updateBook(ctx context.Context, dto model.BookDTO, categoryIDs []int64) (*model.Book, error) {
	book, err := s.repo.GetBookByID(ctx, dto.ID, repository.Include{Categories: true})
	if err != nil {
		return nil, err
	}

	book.ApplyDTO(dto)

	err = s.repo.WithinTx(ctx, func(tx repository.BookTx) error {
		if err := tx.UpdateBook(ctx, book); err != nil {
			return err
		}

		// Attach only the links the book doesn't have yet.
		var missing []int64
		for _, id := range categoryIDs {
			if !book.HasCategory(id) {
				missing = append(missing, id)
			}
		}
		return tx.AttachCategories(ctx, book.ID, missing)
	})
	if err != nil {
		return nil, err
	}

	for _, id := range categoryIDs {
		if !book.HasCategory(id) {
			book.CategoryIDs = append(book.CategoryIDs, id)
		}
	}
	logger.Info("book updated", map[string]interface{}{"book_id": book.ID})

	return book, nil
}

// FilterBooks resolves the raw query parameters and lists matching
// books. Unrecognized or malformed parameters never produce an error,
// they just widen the result.
func (s *bookService) FilterBooks(ctx context.Context, params map[string]string) ([]*model.Book, error) {
	filter := model.ResolveFilter(params)
	return s.repo.ListBooks(ctx, filter)
}

func (s *bookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	if id <= 0 {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.GetBookByID(ctx, id, repository.IncludeAll)
}

func (s *bookService) GetBooksByCategory(ctx context.Context, categoryID int64) ([]*model.Book, error) {
	if categoryID <= 0 {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.ListBooksByCategory(ctx, categoryID)
}

func (s *bookService) RemoveBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidBookID
	}
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}

	if s.minio != nil {
		if err := s.minio.DeleteByPrefix(ctx, fmt.Sprintf("covers/%d/", id)); err != nil {
			logger.Warn("failed to delete cover objects", err)
		}
	}
	logger.Info("book removed", map[string]interface{}{"book_id": id})

	return nil
}
