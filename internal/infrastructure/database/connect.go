package database

import (
	"log"
	"os"
)

// Connect picks the backend from the environment, once, at process start:
// DATABASE_URL set means Postgres, otherwise the embedded SQLite file at
// SQLITE_PATH (default data/taller.db). A Postgres connection failure is
// fatal; there is no silent fallback to the embedded store.
func Connect() Store {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		s, err := NewPostgresStore(dsn)
		if err != nil {
			log.Fatalf("[database] postgres unavailable: %v", err)
		}
		log.Printf("[database] connected to postgres")
		return s
	}
	path := getenvDefault("SQLITE_PATH", "data/taller.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		log.Fatalf("[database] sqlite init failed: %v", err)
	}
	log.Printf("[database] sqlite ready path=%s", path)
	return s
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
