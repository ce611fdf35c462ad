package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// PostgresStore is the client/server backend. It rewrites `?` placeholders to
// the native `$n` syntax and appends a RETURNING clause to INSERTs lacking one
// so Execute can report the generated id the same way SQLite does.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects using the given DSN and ensures the schema. An
// unreachable server is a startup failure, never a silent fallback.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := initSchema(ctx, s, postgresSchema, postgresMigrations); err != nil {
		return nil, fmt.Errorf("init postgres schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) QueryAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanRows(rows)
}

func (s *PostgresStore) QueryOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.QueryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *PostgresStore) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	if isInsert(query) {
		q := rewritePlaceholders(ensureReturningID(query))
		var id int64
		if err := s.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
			return Result{}, err
		}
		return Result{LastInsertID: id, RowsAffected: 1}, nil
	}
	res, err := s.db.ExecContext(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return Result{}, err
	}
	affected, _ := res.RowsAffected()
	return Result{RowsAffected: affected}, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

var insertRe = regexp.MustCompile(`(?i)^\s*INSERT\s+`)
var returningRe = regexp.MustCompile(`(?i)\bRETURNING\s+`)

func isInsert(query string) bool { return insertRe.MatchString(query) }

// ensureReturningID appends " RETURNING id" to INSERT statements that do not
// already carry a RETURNING clause.
func ensureReturningID(query string) string {
	if returningRe.MatchString(query) {
		return query
	}
	return strings.TrimRight(query, " \t\n;") + " RETURNING id"
}

// rewritePlaceholders turns positional `?` markers into `$1..$n`. Like the
// rest of the adapter it assumes queries do not embed literal question marks.
func rewritePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
