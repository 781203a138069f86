// Package postgres implements store.Store on PostgreSQL. Uniqueness of profile
// names and of (owner, date) plans is enforced by unique indexes and every
// upsert is a single INSERT ... ON CONFLICT statement.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alkime/creatoros/internal/store"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// Store is a PostgreSQL-backed store.Store.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Open connects to the database at dsn and verifies the connection.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return New(db, logger), nil
}

// New wraps an existing connection pool.
func New(db *sqlx.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("component", "postgres"),
	}
}

// DB exposes the underlying pool.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
