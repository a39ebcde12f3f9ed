package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"topbookstore-backend/internal/infrastructure/storage"
	types "topbookstore-backend/internal/shared"
	"topbookstore-backend/pkg/logger"
)

// CoverProcessor turns an uploaded original cover into the sized
// variants the storefront serves.
type CoverProcessor struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewCoverProcessor(s *storage.MinIOStorage, p *storage.ImageProcessor) *CoverProcessor {
	return &CoverProcessor{storage: s, processor: p}
}

// ProcessBookCover downloads the original, renders each variant and
// stores it next to the original. Failures are retried by asynq.
func (cp *CoverProcessor) ProcessBookCover(ctx context.Context, task *asynq.Task) error {
	var payload types.ProcessBookCoverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal cover payload: %v: %w", err, asynq.SkipRetry)
	}

	original, err := cp.storage.Download(ctx, payload.OriginalKey)
	if err != nil {
		return fmt.Errorf("failed to download original cover: %w", err)
	}

	variants, err := cp.processor.CoverVariants(original)
	if err != nil {
		return fmt.Errorf("failed to render cover variants: %v: %w", err, asynq.SkipRetry)
	}

	for name, data := range variants {
		key := fmt.Sprintf("covers/%d/%s.jpeg", payload.BookID, name)
		if _, err := cp.storage.Upload(ctx, key, data, "image/jpeg"); err != nil {
			return fmt.Errorf("failed to upload variant %s: %w", name, err)
		}
	}

	logger.Info("cover variants processed", map[string]interface{}{
		"book_id":  payload.BookID,
		"variants": len(variants),
	})

	return nil
}
