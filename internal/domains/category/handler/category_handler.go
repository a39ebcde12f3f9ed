package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/domains/category/model"
	"topbookstore-backend/internal/domains/category/service"
	"topbookstore-backend/internal/shared/response"
	"topbookstore-backend/internal/shared/utils"
)

type Handler struct {
	service service.CategoryService
}

func NewHandler(service service.CategoryService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.GetAllCategories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid category id")
		return
	}

	cat, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		response.InternalServerError(c, "Failed to get category")
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved successfully", cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrCategoryExists) {
			response.Conflict(c, "Category already exists")
			return
		}
		response.InternalServerError(c, "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid category id")
		return
	}

	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		if errors.Is(err, model.ErrCategoryExists) {
			response.Conflict(c, "Category already exists")
			return
		}
		response.InternalServerError(c, "Failed to update category")
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid category id")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		response.InternalServerError(c, "Failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
