package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"kb-app/internal/kb"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path. It does not touch the
// schema; callers run InitSchema once at startup. Stores are request-scoped,
// so Open stays lightweight.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "kb.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Opener returns a kb.StoreOpener bound to path.
func Opener(path string) kb.StoreOpener {
	return func() (kb.Store, error) {
		return Open(path)
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InitSchema creates the three tables if they are absent. Safe to run against
// an existing database file.
func (s *Store) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS topic (
			topic_id INTEGER PRIMARY KEY,
			topic_name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS sub_topic (
			sub_topic_id INTEGER PRIMARY KEY,
			sub_topic_name TEXT NOT NULL UNIQUE,
			topic_id INTEGER NOT NULL,
			FOREIGN KEY (topic_id) REFERENCES topic(topic_id)
		);`,
		`CREATE TABLE IF NOT EXISTS content (
			content_id INTEGER PRIMARY KEY,
			content_text TEXT NOT NULL,
			sub_topic_id INTEGER NOT NULL,
			FOREIGN KEY (sub_topic_id) REFERENCES sub_topic(sub_topic_id)
		);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
