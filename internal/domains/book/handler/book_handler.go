package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/internal/domains/book/service"
	"topbookstore-backend/internal/shared/response"
	"topbookstore-backend/internal/shared/utils"
	"topbookstore-backend/pkg/cache"
	"topbookstore-backend/pkg/logger"
)

const (
	listCacheTTL   = 5 * time.Minute
	detailCacheTTL = 10 * time.Minute
)

// Handler exposes the book domain over HTTP. Responses are cached here,
// at the edge; the service and repository below stay cache-free.
type Handler struct {
	service service.BookService
	cache   cache.Cache
}

func NewHandler(service service.BookService, cache cache.Cache) *Handler {
	return &Handler{service: service, cache: cache}
}

// filterParams collects the recognized filter keys from the query
// string. Unknown keys never reach the resolver.
func filterParams(c *gin.Context) map[string]string {
	params := map[string]string{}
	for _, key := range []string{
		model.FilterKeyCategory,
		model.FilterKeyPrice,
		model.FilterKeyPages,
		model.FilterKeyAuthor,
	} {
		if v := c.Query(key); v != "" {
			params[key] = v
		}
	}
	return params
}

// ListBooks handles GET /books with optional category, price, pages and
// author filters.
func (h *Handler) ListBooks(c *gin.Context) {
	params := filterParams(c)
	cacheKey := model.GenerateListCacheKey(params)

	var cached []model.ListBookResponse
	if found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && found {
		response.SuccessWithMeta(c, http.StatusOK, "Books retrieved successfully", cached,
			&response.Meta{Total: len(cached)})
		return
	}

	books, err := h.service.FilterBooks(c.Request.Context(), params)
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to list books")
		return
	}

	data := model.ToListResponses(books)
	if err := h.cache.Set(c.Request.Context(), cacheKey, data, listCacheTTL); err != nil {
		logger.Warn("failed to cache book list", err)
	}

	response.SuccessWithMeta(c, http.StatusOK, "Books retrieved successfully", data,
		&response.Meta{Total: len(data)})
}

// GetBook handles GET /books/:id.
func (h *Handler) GetBook(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid book id")
		return
	}

	cacheKey := model.GenerateBookDetailCacheKey(id)
	var cached model.BookResponse
	if found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && found {
		response.Success(c, http.StatusOK, "Book retrieved successfully", cached)
		return
	}

	book, err := h.service.GetBookByID(c.Request.Context(), id)
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to get book")
		return
	}

	data := book.ToResponse()
	if err := h.cache.Set(c.Request.Context(), cacheKey, data, detailCacheTTL); err != nil {
		logger.Warn("failed to cache book detail", err)
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", data)
}

// GetBooksByCategory handles GET /categories/:id/books.
func (h *Handler) GetBooksByCategory(c *gin.Context) {
	categoryID := utils.SafeToInt64(c.Param("id"))
	if categoryID <= 0 {
		response.BadRequest(c, "Invalid category id")
		return
	}

	books, err := h.service.GetBooksByCategory(c.Request.Context(), categoryID)
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to list books by category")
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", model.ToListResponses(books))
}

// CreateBook handles POST /books. A zero id in the payload means insert.
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}
	req.ID = 0

	book, err := h.service.UpsertBook(c.Request.Context(), req.ToDTO())
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to create book")
		return
	}

	h.invalidateBookCache(c, book.ID)
	response.Success(c, http.StatusCreated, "Book created successfully", book.ToResponse())
}

// UpdateBook handles PUT /books/:id. The path id wins over any id in the
// payload.
func (h *Handler) UpdateBook(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid book id")
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}
	req.ID = id

	book, err := h.service.UpsertBook(c.Request.Context(), req.ToDTO())
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to update book")
		return
	}

	h.invalidateBookCache(c, book.ID)
	response.Success(c, http.StatusOK, "Book updated successfully", book.ToResponse())
}

// DeleteBook handles DELETE /books/:id.
func (h *Handler) DeleteBook(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid book id")
		return
	}

	if err := h.service.RemoveBook(c.Request.Context(), id); err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.InternalServerError(c, "Failed to delete book")
		return
	}

	h.invalidateBookCache(c, id)
	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// UploadCover handles POST /books/:id/cover with a multipart "cover"
// file. Resized variants are produced asynchronously.
func (h *Handler) UploadCover(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid book id")
		return
	}

	file, _, err := c.Request.FormFile("cover")
	if err != nil {
		response.BadRequest(c, "Missing cover file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Failed to read cover file")
		return
	}

	url, err := h.service.UploadCover(c.Request.Context(), id, data)
	if err != nil {
		if model.HandleBookError(c, err) {
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	h.invalidateBookCache(c, id)
	response.Success(c, http.StatusOK, "Cover uploaded successfully", gin.H{"image_url": url})
}

// ExportBooks handles GET /books/export, streaming the filtered catalog
// as an xlsx download.
func (h *Handler) ExportBooks(c *gin.Context) {
	data, err := h.service.ExportBooks(c.Request.Context(), filterParams(c))
	if err != nil {
		response.InternalServerError(c, "Failed to export books")
		return
	}

	filename := "books-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// invalidateBookCache drops the book's detail entry and every cached
// list after a write.
func (h *Handler) invalidateBookCache(c *gin.Context, bookID int64) {
	ctx := c.Request.Context()
	if err := h.cache.Delete(ctx, model.GenerateBookDetailCacheKey(bookID)); err != nil {
		logger.Warn("failed to invalidate book detail cache", err)
	}
	if err := h.cache.DeletePattern(ctx, model.CacheKeyBookListPattern); err != nil {
		logger.Warn("failed to invalidate book list cache", err)
	}
}
