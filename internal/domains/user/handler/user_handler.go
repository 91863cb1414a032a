package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"wiki-backend/internal/domains/user"
	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/logger"
)

// UserHandler exposes the identity provisioning endpoints. All routes
// are admin-only; the role check happens in middleware.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// GetByEmail handles GET /users/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	dto, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// CreateAdmin handles POST /users/create-admin
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	h.create(c, h.service.CreateAdmin)
}

// CreateEditor handles POST /users/create-editor
func (h *UserHandler) CreateEditor(c *gin.Context) {
	h.create(c, h.service.CreateEditor)
}

func (h *UserHandler) create(c *gin.Context, provision func(context.Context, user.CreateUserRequest) (*user.UserDTO, error)) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := provision(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+dto.Email)
	response.Success(c, http.StatusCreated, dto)
}

// Delete handles DELETE /users (body: {email})
func (h *UserHandler) Delete(c *gin.Context) {
	var req user.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "The email address does not exist.")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.BadRequest(c, "The email address already exists.")
	case errors.Is(err, user.ErrUserLockedOut):
		response.BadRequest(c, "The user with the email address is already locked out.")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", validationErrs)
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
