package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"wiki-backend/internal/domains/page"
	"wiki-backend/internal/shared/middleware"
	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/logger"
)

type PageHandler struct {
	service page.Service
}

func NewPageHandler(service page.Service) *PageHandler {
	return &PageHandler{service: service}
}

// List handles GET /pages
func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pages)
}

// GetByID handles GET /pages/:id
func (h *PageHandler) GetByID(c *gin.Context) {
	id, ok := parsePageID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /pages
func (h *PageHandler) Create(c *gin.Context) {
	var req page.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	creator := c.GetString(middleware.ContextEmailKey)
	p, err := h.service.Create(c.Request.Context(), req, creator)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/pages/%d", p.ID))
	response.Success(c, http.StatusCreated, p)
}

// Update handles PUT /pages/:id
func (h *PageHandler) Update(c *gin.Context) {
	id, ok := parsePageID(c)
	if !ok {
		return
	}

	var req page.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete handles DELETE /pages/:id
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := parsePageID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func parsePageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return 0, false
	}
	return id, true
}

func (h *PageHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, page.ErrPageNotFound):
		response.NotFound(c, "The page does not exist.")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", validationErrs)
	default:
		logger.Error("page handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
