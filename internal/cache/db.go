package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the session store: an in-memory SQLite database holding fetched
// thread payloads and the export history for this run. Nothing persists
// past the process.
type DB struct {
	db *sql.DB
}

// Open creates the in-memory session store and runs migrations.
func Open() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	// A single connection keeps every statement on the same in-memory DB.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating session store: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the store, discarding all session state.
func (d *DB) Close() error {
	return d.db.Close()
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS threads (
			url TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			comment_count INTEGER NOT NULL DEFAULT 0,
			payload BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_threads_fetched ON threads(fetched_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}
