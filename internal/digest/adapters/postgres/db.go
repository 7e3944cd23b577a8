package postgres

import (
	"context"
	"database/sql"
)

// Row matches *sql.Row's Scan so tests can fake single-row queries.
type Row interface {
	Scan(dest ...any) error
}

type DB interface {
	QueryRowContext(ctx context.Context, query string, args ...any) Row
}

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryRowContext(ctx context.Context, query string, args ...any) Row {
	return s.db.QueryRowContext(ctx, query, args...)
}
