package main

import (
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"topbookstore-backend/internal/config"
	"topbookstore-backend/internal/infrastructure/storage"
	types "topbookstore-backend/internal/shared"
	"topbookstore-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		logger.Error("failed to init minio storage", err)
		os.Exit(1)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				types.QueueBook: 1,
			},
		},
	)

	processor := NewCoverProcessor(minioStorage, storage.NewImageProcessor())

	mux := asynq.NewServeMux()
	mux.HandleFunc(types.TypeProcessBookCover, processor.ProcessBookCover)

	logger.Info("worker starting", map[string]interface{}{"queue": types.QueueBook})
	if err := srv.Run(mux); err != nil {
		logger.Error("worker stopped", err)
		os.Exit(1)
	}
}
