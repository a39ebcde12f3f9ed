package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/domains/author/model"
	"topbookstore-backend/internal/domains/author/service"
	"topbookstore-backend/internal/shared/response"
	"topbookstore-backend/internal/shared/utils"
)

type Handler struct {
	service service.AuthorService
}

func NewHandler(service service.AuthorService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListAuthors(c *gin.Context) {
	authors, err := h.service.GetAllAuthors(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list authors")
		return
	}
	response.Success(c, http.StatusOK, "Authors retrieved successfully", authors)
}

func (h *Handler) GetAuthor(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid author id")
		return
	}

	author, err := h.service.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		response.InternalServerError(c, "Failed to get author")
		return
	}
	response.Success(c, http.StatusOK, "Author retrieved successfully", author)
}

func (h *Handler) CreateAuthor(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	author, err := h.service.CreateAuthor(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to create author")
		return
	}
	response.Success(c, http.StatusCreated, "Author created successfully", author)
}

func (h *Handler) UpdateAuthor(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid author id")
		return
	}

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	author, err := h.service.UpdateAuthor(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		response.InternalServerError(c, "Failed to update author")
		return
	}
	response.Success(c, http.StatusOK, "Author updated successfully", author)
}

func (h *Handler) DeleteAuthor(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid author id")
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		response.InternalServerError(c, "Failed to delete author")
		return
	}
	response.Success(c, http.StatusOK, "Author deleted successfully", nil)
}
