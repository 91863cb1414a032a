package document

import (
	"context"
	"fmt"
	"net/url"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"wiki-backend/internal/config"
	"wiki-backend/pkg/logger"
)

// Connect opens the SurrealDB connection that backs the page and version
// stores. The connection is configured with the surrealcbor codec so that
// time.Time values and record IDs marshal in the format SurrealDB expects;
// the default codec mangles datetimes and breaks ORDER BY queries.
func Connect(ctx context.Context, cfg *config.SurrealConfig) (*surrealdb.DB, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse surreal url: %w", err)
	}

	conf := connection.NewConfig(u)

	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	conn := gorillaws.New(conf)

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("surrealdb signin: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	logger.Info("connected to surrealdb", map[string]interface{}{
		"url":       cfg.URL,
		"namespace": cfg.Namespace,
		"database":  cfg.Database,
	})
	return db, nil
}
