// Package store persists evaluated design points. The core pipeline never
// touches it; the CLI wires it in when DATABASE_URL is set, so optimization
// and sensitivity sweeps can query past runs instead of re-evaluating.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool from the DATABASE_URL environment
// variable. Safe to call more than once; only the first call connects.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the shared connection pool, or nil before InitDB.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
