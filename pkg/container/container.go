package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"topbookstore-backend/internal/config"
	infraCache "topbookstore-backend/internal/infrastructure/cache"
	"topbookstore-backend/internal/infrastructure/database"
	"topbookstore-backend/internal/infrastructure/storage"
	"topbookstore-backend/pkg/cache"
	"topbookstore-backend/pkg/logger"

	authorHandler "topbookstore-backend/internal/domains/author/handler"
	authorRepo "topbookstore-backend/internal/domains/author/repository"
	authorService "topbookstore-backend/internal/domains/author/service"
	bookHandler "topbookstore-backend/internal/domains/book/handler"
	bookRepo "topbookstore-backend/internal/domains/book/repository"
	bookService "topbookstore-backend/internal/domains/book/service"
	categoryHandler "topbookstore-backend/internal/domains/category/handler"
	categoryRepo "topbookstore-backend/internal/domains/category/repository"
	categoryService "topbookstore-backend/internal/domains/category/service"
	publisherHandler "topbookstore-backend/internal/domains/publisher/handler"
	publisherRepo "topbookstore-backend/internal/domains/publisher/repository"
	publisherService "topbookstore-backend/internal/domains/publisher/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client

	BookRepo      bookRepo.BookRepository
	AuthorRepo    authorRepo.AuthorRepository
	CategoryRepo  categoryRepo.CategoryRepository
	PublisherRepo publisherRepo.PublisherRepository

	BookService      bookService.BookService
	AuthorService    authorService.AuthorService
	CategoryService  categoryService.CategoryService
	PublisherService publisherService.PublisherService

	BookHandler      *bookHandler.Handler
	AuthorHandler    *authorHandler.Handler
	CategoryHandler  *categoryHandler.Handler
	PublisherHandler *publisherHandler.Handler
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pool := c.DB.Pool
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool)

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.CategoryService,
		storage.NewImageProcessor(),
		c.Storage,
		c.AsynqClient,
	)

	c.BookHandler = bookHandler.NewHandler(c.BookService, c.Cache)
	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewHandler(c.CategoryService)
	c.PublisherHandler = publisherHandler.NewHandler(c.PublisherService)

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	return c, nil
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Warn("failed to close asynq client", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
