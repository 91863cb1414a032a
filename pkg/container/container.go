package container

import (
	"context"
	"fmt"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"wiki-backend/internal/config"
	infraCache "wiki-backend/internal/infrastructure/cache"
	"wiki-backend/internal/infrastructure/database"
	"wiki-backend/internal/infrastructure/document"
	"wiki-backend/pkg/cache"
	"wiki-backend/pkg/jwt"
	"wiki-backend/pkg/logger"

	"wiki-backend/internal/domains/auth"
	authHandler "wiki-backend/internal/domains/auth/handler"
	authService "wiki-backend/internal/domains/auth/service"
	authStore "wiki-backend/internal/domains/auth/store"
	"wiki-backend/internal/domains/page"
	pageHandler "wiki-backend/internal/domains/page/handler"
	pageRepo "wiki-backend/internal/domains/page/repository"
	pageService "wiki-backend/internal/domains/page/service"
	"wiki-backend/internal/domains/user"
	userHandler "wiki-backend/internal/domains/user/handler"
	userRepo "wiki-backend/internal/domains/user/repository"
	userService "wiki-backend/internal/domains/user/service"
	"wiki-backend/internal/domains/version"
	versionHandler "wiki-backend/internal/domains/version/handler"
	versionRepo "wiki-backend/internal/domains/version/repository"
	versionService "wiki-backend/internal/domains/version/service"
)

// Container is the root of the dependency graph. Construction order
// is config, infrastructure, repositories, services, handlers; a
// failure at any step aborts startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Document   *surrealdb.DB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo    user.Repository
	PageRepo    page.Repository
	VersionRepo version.Repository
	TokenStore  auth.TokenStore

	UserService    user.Service
	PageService    page.Service
	VersionService version.Service
	AuthService    auth.Service

	UserHandler    *userHandler.UserHandler
	PageHandler    *pageHandler.PageHandler
	VersionHandler *versionHandler.VersionHandler
	AuthHandler    *authHandler.AuthHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Identity store.
	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c.DB = db

	if err := userRepo.Migrate(ctx, db.Pool); err != nil {
		return nil, fmt.Errorf("migrate users: %w", err)
	}

	// Document store for pages and revisions.
	doc, err := document.Connect(ctx, &cfg.Surreal)
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}
	c.Document = doc

	// Refresh-token store.
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisClient

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Hour)

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.PageRepo = pageRepo.NewSurrealRepository(doc)
	c.VersionRepo = versionRepo.NewSurrealRepository(doc)
	c.TokenStore = authStore.NewRedisStore(c.Cache)

	refreshTTL := time.Duration(cfg.JWT.RefreshTokenExpiry) * time.Hour
	c.UserService = userService.NewUserService(c.UserRepo)
	c.PageService = pageService.NewPageService(c.PageRepo, c.VersionRepo)
	c.VersionService = versionService.NewVersionService(c.VersionRepo, c.PageRepo)
	c.AuthService = authService.NewAuthService(c.UserRepo, c.TokenStore, c.JWTManager, refreshTTL)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PageHandler = pageHandler.NewPageHandler(c.PageService)
	c.VersionHandler = versionHandler.NewVersionHandler(c.VersionService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup releases infrastructure connections in reverse order of
// construction.
func (c *Container) Cleanup() {
	if c.Document != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.Document.Close(ctx); err != nil {
			logger.Error("close surrealdb", err)
		}
		cancel()
	}

	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
