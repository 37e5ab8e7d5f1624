// Package session persists the authenticated session in a local SQLite
// file so the client survives restarts without re-login. It is a thin
// key-value collaborator, deliberately outside the entity store.
package session

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"clinic-ops-client/internal/converter"
	"clinic-ops-client/internal/domain/entity"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS session (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open creates or opens the session database at the given path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect session store: %w", err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply session schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the persisted session atomically
func (s *Store) Save(sess entity.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin session save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	for key, value := range converter.SessionToValues(sess) {
		if _, err := tx.Exec(`INSERT INTO session (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("store session key %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Load returns the persisted session, or a zero session when none exists
func (s *Store) Load() (entity.Session, error) {
	rows, err := s.db.Query(`SELECT key, value FROM session`)
	if err != nil {
		return entity.Session{}, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return entity.Session{}, fmt.Errorf("scan session row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return entity.Session{}, fmt.Errorf("read session rows: %w", err)
	}

	return converter.SessionFromValues(values), nil
}

// Clear removes every persisted session key (logout)
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
