package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"wiki-backend/internal/domains/page"
	"wiki-backend/internal/domains/version"
	"wiki-backend/internal/shared/middleware"
	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/logger"
)

type VersionHandler struct {
	service version.Service
}

func NewVersionHandler(service version.Service) *VersionHandler {
	return &VersionHandler{service: service}
}

// ListByPage handles GET /pages/:id/versions
func (h *VersionHandler) ListByPage(c *gin.Context) {
	pageID, ok := parsePageID(c)
	if !ok {
		return
	}

	versions, err := h.service.FindPageVersionsByPageID(c.Request.Context(), pageID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, versions)
}

// Latest handles GET /pages/:id/versions/latest
func (h *VersionHandler) Latest(c *gin.Context) {
	pageID, ok := parsePageID(c)
	if !ok {
		return
	}

	v, err := h.service.GetLatestVersion(c.Request.Context(), pageID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Add handles POST /pages/:id/versions
func (h *VersionHandler) Add(c *gin.Context) {
	pageID, ok := parsePageID(c)
	if !ok {
		return
	}

	var req version.AddVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author := c.GetString(middleware.ContextEmailKey)
	v, err := h.service.AddNewVersion(c.Request.Context(), pageID, req, author)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

// All handles GET /versions
func (h *VersionHandler) All(c *gin.Context) {
	versions, err := h.service.AllVersions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, versions)
}

// ByAuthor handles GET /versions/author/:author
func (h *VersionHandler) ByAuthor(c *gin.Context) {
	versions, err := h.service.FindPageVersionsByAuthor(c.Request.Context(), c.Param("author"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, versions)
}

// GetByID handles GET /versions/:id
func (h *VersionHandler) GetByID(c *gin.Context) {
	id, ok := parseVersionID(c)
	if !ok {
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Update handles PUT /versions/:id
func (h *VersionHandler) Update(c *gin.Context) {
	id, ok := parseVersionID(c)
	if !ok {
		return
	}

	var req version.UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	v, err := h.service.UpdateExistingVersion(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Delete handles DELETE /versions/:id
func (h *VersionHandler) Delete(c *gin.Context) {
	id, ok := parseVersionID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteVersion(c.Request.Context(), id); err != nil {
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

func parseVersionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid version id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *VersionHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, version.ErrVersionNotFound):
		response.NotFound(c, "The page version does not exist.")
	case errors.Is(err, page.ErrPageNotFound):
		response.NotFound(c, "The page does not exist.")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", validationErrs)
	default:
		logger.Error("version handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
