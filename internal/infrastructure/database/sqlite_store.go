package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore is the embedded single-file backend. SQLite already speaks `?`
// placeholders and reports insert ids natively, so no query rewriting is
// needed. A single connection keeps writes serialized the way the embedded
// engine expects.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database file and ensures the
// schema. Foreign keys are switched on per connection so deletes cascade.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "data/taller.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	s := &SQLiteStore{db: db}
	if err := initSchema(context.Background(), s, sqliteSchema, sqliteMigrations); err != nil {
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) QueryAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanRows(rows)
}

func (s *SQLiteStore) QueryOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.QueryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *SQLiteStore) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, err
	}
	id, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()
	return Result{LastInsertID: id, RowsAffected: affected}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
