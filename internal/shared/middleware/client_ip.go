package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"wiki-backend/internal/shared/utils"
)

type contextKey string

const clientIPKey contextKey = "client_ip"

// ClientIPMiddleware extracts the client IP address from the request and
// injects it into the context for downstream handlers. The auth service
// binds refresh tokens to the issuing IP.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set("client_ip", clientIP)

		ctx := context.WithValue(c.Request.Context(), clientIPKey, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext retrieves the client IP from context.
// Returns empty string if not found.
func GetClientIPFromContext(ctx context.Context) string {
	if ip := ctx.Value(clientIPKey); ip != nil {
		if ipStr, ok := ip.(string); ok {
			return ipStr
		}
	}
	return ""
}
