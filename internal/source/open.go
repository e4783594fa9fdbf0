package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JonMunkholm/riskreport/internal/config"
	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Open builds the source selected by cfg.Data.Source. The returned close
// function releases any connection pool and is always safe to call.
func Open(ctx context.Context, cfg *config.Config) (core.Source, func(), error) {
	switch cfg.Data.Source {
	case config.SourceFile, "":
		slog.Info("reading datasets from directory", "dir", cfg.Data.Dir)
		return NewDir(cfg.Data.Dir), func() {}, nil

	case config.SourcePostgres:
		pool, err := connect(ctx, cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		slog.Info("reading datasets from database", "database", databaseName(cfg.Database.URL), "table", cfg.Data.Table)
		return NewPostgres(pool, cfg.Data.Table), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// connect parses the URL, applies pool limits and verifies the connection.
func connect(ctx context.Context, db config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(db.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(db.MaxConns)
	poolConfig.MinConns = int32(db.MinConns)
	poolConfig.MaxConnLifetime = db.MaxConnLifetime
	poolConfig.MaxConnIdleTime = db.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// databaseName returns the database path of a connection URL for logging.
func databaseName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
