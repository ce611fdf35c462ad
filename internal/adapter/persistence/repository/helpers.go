package repository

import (
	"encoding/json"

	"carmasters/internal/infrastructure/database"
)

// Row value coercion. The two backends disagree on scan types (SQLite hands
// back int64/float64/string, Postgres NUMERIC arrives as a string), so every
// repository reads through these.

func rowInt(r database.Row, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func rowFloat(r database.Row, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		var f float64
		if err := json.Unmarshal([]byte(v), &f); err == nil {
			return f
		}
	}
	return 0
}

func rowString(r database.Row, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// decodeImageList deserializes the imagenes column. Corrupt or absent data
// degrades to an empty list, never an error.
func decodeImageList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil || images == nil {
		return []string{}
	}
	return images
}

// nullIfEmpty maps "" to NULL so optional TEXT/TIMESTAMP columns keep their
// column defaults on both backends.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
