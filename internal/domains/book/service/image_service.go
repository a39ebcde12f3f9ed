package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/internal/domains/book/repository"
	types "topbookstore-backend/internal/shared"
	"topbookstore-backend/pkg/logger"
)

// UploadCover validates and stores the original cover, points the book
// at it, then hands resizing off to the worker queue. The variants show
// up asynchronously under the same prefix.
func (s *bookService) UploadCover(ctx context.Context, bookID int64, data []byte) (string, error) {
	if bookID <= 0 {
		return "", model.ErrInvalidBookID
	}
	if _, err := s.repo.GetBookByID(ctx, bookID, repository.Include{}); err != nil {
		return "", err
	}
	if err := s.imageProcessor.ValidateImage(data); err != nil {
		return "", err
	}

	key := fmt.Sprintf("covers/%d/original.jpeg", bookID)
	url, err := s.minio.Upload(ctx, key, data, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload cover: %w", err)
	}

	if err := s.repo.SetImageURL(ctx, bookID, url); err != nil {
		return "", err
	}

	payload, err := json.Marshal(types.ProcessBookCoverPayload{
		BookID:      bookID,
		OriginalKey: key,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cover task: %w", err)
	}

	task := asynq.NewTask(types.TypeProcessBookCover, payload)
	if _, err := s.asynqClient.EnqueueContext(ctx, task, asynq.Queue(types.QueueBook)); err != nil {
		// The original is already stored and linked; resizing can be
		// retried out of band.
		logger.Error("failed to enqueue cover processing", err)
	}

	logger.Info("cover uploaded", map[string]interface{}{"book_id": bookID, "key": key})

	return url, nil
}
