package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wiki-backend/internal/domains/auth"
	"wiki-backend/internal/shared/middleware"
	"wiki-backend/internal/shared/response"
	"wiki-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIPMiddleware(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPageRoutes(v1, c)
		setupVersionRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/authenticate", c.AuthHandler.Authenticate)
		authGroup.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// User provisioning is admin-only end to end.
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager), middleware.Authorize(auth.PolicyAdmin))
	{
		users.GET("/:email", c.UserHandler.GetByEmail)
		users.POST("/create-admin", c.UserHandler.CreateAdmin)
		users.POST("/create-editor", c.UserHandler.CreateEditor)
		users.DELETE("", c.UserHandler.Delete)
	}
}

// Reads are anonymous; writes require the editor policy (admins
// qualify implicitly).
func setupPageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	pages := v1.Group("/pages")
	{
		pages.GET("", c.PageHandler.List)
		pages.GET("/:id", c.PageHandler.GetByID)
		pages.GET("/:id/versions", c.VersionHandler.ListByPage)
		pages.GET("/:id/versions/latest", c.VersionHandler.Latest)
	}

	editor := pages.Group("")
	editor.Use(middleware.Auth(c.JWTManager), middleware.Authorize(auth.PolicyEditor))
	{
		editor.POST("", c.PageHandler.Create)
		editor.PUT("/:id", c.PageHandler.Update)
		editor.DELETE("/:id", c.PageHandler.Delete)
		editor.POST("/:id/versions", c.VersionHandler.Add)
	}
}

func setupVersionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	versions := v1.Group("/versions")
	{
		versions.GET("/author/:author", c.VersionHandler.ByAuthor)
		versions.GET("/:id", c.VersionHandler.GetByID)
	}

	versions.GET("", middleware.Auth(c.JWTManager), middleware.Authorize(auth.PolicyAdmin), c.VersionHandler.All)

	editor := versions.Group("")
	editor.Use(middleware.Auth(c.JWTManager), middleware.Authorize(auth.PolicyEditor))
	{
		editor.PUT("/:id", c.VersionHandler.Update)
		editor.DELETE("/:id", c.VersionHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := "healthy"
		checks := map[string]string{
			"postgres": "up",
			"redis":    "up",
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = "degraded"
			checks["postgres"] = "down"
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			status = "degraded"
			checks["redis"] = "down"
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":      status,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"checks":      checks,
		})
	}
}
