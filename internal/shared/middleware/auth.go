package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/jwt"
)

const (
	// ContextEmailKey holds the authenticated user's email in the gin context.
	ContextEmailKey = "auth_email"
	// ContextRolesKey holds the authenticated user's role claims.
	ContextRolesKey = "auth_roles"
)

// Auth validates the Bearer token and stores the caller's identity in
// the request context. Requests without a valid token are rejected
// with 401 before reaching the handler.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRolesKey, claims.Roles)
		c.Next()
	}
}

// RolesFromContext returns the role claims set by Auth.
func RolesFromContext(c *gin.Context) []string {
	v, ok := c.Get(ContextRolesKey)
	if !ok {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
