package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/domains/publisher/model"
	"topbookstore-backend/internal/domains/publisher/service"
	"topbookstore-backend/internal/shared/response"
	"topbookstore-backend/internal/shared/utils"
)

type Handler struct {
	service service.PublisherService
}

func NewHandler(service service.PublisherService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPublishers(c *gin.Context) {
	publishers, err := h.service.GetAllPublishers(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list publishers")
		return
	}
	response.Success(c, http.StatusOK, "Publishers retrieved successfully", publishers)
}

func (h *Handler) GetPublisher(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid publisher id")
		return
	}

	p, err := h.service.GetPublisherByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPublisherNotFound) {
			response.NotFound(c, "Publisher not found")
			return
		}
		response.InternalServerError(c, "Failed to get publisher")
		return
	}
	response.Success(c, http.StatusOK, "Publisher retrieved successfully", p)
}

func (h *Handler) CreatePublisher(c *gin.Context) {
	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	p, err := h.service.CreatePublisher(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to create publisher")
		return
	}
	response.Success(c, http.StatusCreated, "Publisher created successfully", p)
}

func (h *Handler) UpdatePublisher(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid publisher id")
		return
	}

	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VAL_001", "Validation failed", err)
		return
	}

	p, err := h.service.UpdatePublisher(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrPublisherNotFound) {
			response.NotFound(c, "Publisher not found")
			return
		}
		response.InternalServerError(c, "Failed to update publisher")
		return
	}
	response.Success(c, http.StatusOK, "Publisher updated successfully", p)
}

func (h *Handler) DeletePublisher(c *gin.Context) {
	id := utils.SafeToInt64(c.Param("id"))
	if id <= 0 {
		response.BadRequest(c, "Invalid publisher id")
		return
	}

	if err := h.service.DeletePublisher(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrPublisherNotFound) {
			response.NotFound(c, "Publisher not found")
			return
		}
		response.InternalServerError(c, "Failed to delete publisher")
		return
	}
	response.Success(c, http.StatusOK, "Publisher deleted successfully", nil)
}
