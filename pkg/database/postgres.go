package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tuning defaults, applied when a setting is left at its zero value.
const (
	defaultMaxConns        = 25
	defaultConnMaxLifetime = time.Hour
	defaultConnMaxIdleTime = 30 * time.Minute
)

// DB is the pgx connection pool shared by the query executor and the
// history repository.
type DB struct {
	*pgxpool.Pool
}

// Config holds connection pool settings.
type Config struct {
	URL             string
	MaxConnections  int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// poolConfig parses the connection URL and applies the pool settings,
// substituting defaults for zero values.
func poolConfig(cfg *Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pc.MaxConns = cfg.MaxConnections
	if pc.MaxConns <= 0 {
		pc.MaxConns = defaultMaxConns
	}
	pc.MaxConnLifetime = cfg.ConnMaxLifetime
	if pc.MaxConnLifetime <= 0 {
		pc.MaxConnLifetime = defaultConnMaxLifetime
	}
	pc.MaxConnIdleTime = cfg.ConnMaxIdleTime
	if pc.MaxConnIdleTime <= 0 {
		pc.MaxConnIdleTime = defaultConnMaxIdleTime
	}

	return pc, nil
}

// NewConnection creates the pool and verifies connectivity with a ping.
func NewConnection(ctx context.Context, cfg *Config) (*DB, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}
