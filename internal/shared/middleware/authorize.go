package middleware

import (
	"github.com/gin-gonic/gin"

	"wiki-backend/internal/domains/auth"
	"wiki-backend/internal/shared/response"
)

// Authorize enforces a role policy on top of Auth. It must run after
// Auth in the middleware chain.
func Authorize(policy auth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := RolesFromContext(c)
		if !auth.Allowed(roles, policy) {
			response.Forbidden(c, "Access denied.")
			c.Abort()
			return
		}
		c.Next()
	}
}
