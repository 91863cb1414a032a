package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"wiki-backend/internal/domains/auth"
	"wiki-backend/internal/domains/user"
	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/logger"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Authenticate handles POST /auth/authenticate
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req auth.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.service.Authenticate(c.Request.Context(), req, c.GetString("client_ip"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken, c.GetString("client_ip"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "The email address does not exist.")
	case errors.Is(err, auth.ErrRefreshTokenNotFound):
		response.NotFound(c, "The refresh token does not exist.")
	case errors.Is(err, auth.ErrForbidden):
		response.Forbidden(c, "Access denied.")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", validationErrs)
	default:
		logger.Error("auth handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
