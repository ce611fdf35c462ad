package database

import (
	"context"
	"database/sql"
	"time"
)

// Store is the uniform query surface every repository is written against.
// Queries use positional `?` placeholders regardless of backend; each
// implementation normalizes them to its own dialect. The backend is chosen
// once at process start and never changes at runtime.
type Store interface {
	// QueryAll runs a SELECT and returns every row.
	QueryAll(ctx context.Context, query string, args ...any) ([]Row, error)
	// QueryOne runs a SELECT and returns the first row, or nil when absent.
	QueryOne(ctx context.Context, query string, args ...any) (Row, error)
	// Execute runs an INSERT/UPDATE/DELETE. For INSERTs the returned result
	// carries the generated id.
	Execute(ctx context.Context, query string, args ...any) (Result, error)
	Close() error
}

// Row is a single result row keyed by column name.
type Row map[string]any

// Result reports the outcome of Execute.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// normalizeValue flattens driver-specific scan types so repositories see the
// same shapes from both backends.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
