package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/shared/middleware"
	"topbookstore-backend/pkg/cache"
	"topbookstore-backend/pkg/container"
)

// dbChecker is what the health endpoint needs from the database wrapper.
type dbChecker interface {
	HealthCheck(ctx context.Context) error
}

// healthHandler checks postgres and redis. A dead database takes the
// service down; a dead cache only degrades it, since every endpoint can
// serve without redis.
func healthHandler(db dbChecker, cache cache.Cache, version string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := db.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}

		status := "ok"
		if err := cache.Ping(ctx.Request.Context()); err != nil {
			status = "degraded"
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  status,
			"version": version,
		})
	}
}

// SetupRouter wires the HTTP surface.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c.DB, c.Cache, c.Config.App.Version))

	v1 := router.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.ListBooks)
			books.GET("/export", c.BookHandler.ExportBooks)
			books.GET("/:id", c.BookHandler.GetBook)
			books.POST("", c.BookHandler.CreateBook)
			books.PUT("/:id", c.BookHandler.UpdateBook)
			books.DELETE("/:id", c.BookHandler.DeleteBook)
			books.POST("/:id/cover", c.BookHandler.UploadCover)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", c.CategoryHandler.ListCategories)
			categories.GET("/:id", c.CategoryHandler.GetCategory)
			categories.GET("/:id/books", c.BookHandler.GetBooksByCategory)
			categories.POST("", c.CategoryHandler.CreateCategory)
			categories.PUT("/:id", c.CategoryHandler.UpdateCategory)
			categories.DELETE("/:id", c.CategoryHandler.DeleteCategory)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", c.AuthorHandler.ListAuthors)
			authors.GET("/:id", c.AuthorHandler.GetAuthor)
			authors.POST("", c.AuthorHandler.CreateAuthor)
			authors.PUT("/:id", c.AuthorHandler.UpdateAuthor)
			authors.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
		}

		publishers := v1.Group("/publishers")
		{
			publishers.GET("", c.PublisherHandler.ListPublishers)
			publishers.GET("/:id", c.PublisherHandler.GetPublisher)
			publishers.POST("", c.PublisherHandler.CreatePublisher)
			publishers.PUT("/:id", c.PublisherHandler.UpdatePublisher)
			publishers.DELETE("/:id", c.PublisherHandler.DeletePublisher)
		}
	}

	return router
}
