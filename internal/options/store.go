// Package options provides SQLite-based persistence for engine settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Values are stored as text under string keys with typed accessors on top.
package options

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations. A leading ~ is
// expanded to the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("options: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("options: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("options: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("options: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("options: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SetString stores a string value under key, replacing any previous value.
func (s *Store) SetString(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("options: cannot set %q: %w", key, err)
	}
	return nil
}

// GetString returns the string value for key. The second return is false
// when the key has never been set.
func (s *Store) GetString(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("options: cannot get %q: %w", key, err)
	}
	return value, true, nil
}

// SetBool stores a boolean value under key.
func (s *Store) SetBool(key string, value bool) error {
	return s.SetString(key, strconv.FormatBool(value))
}

// GetBool returns the boolean value for key, or def when absent or
// unparsable.
func (s *Store) GetBool(key string, def bool) (bool, error) {
	raw, ok, err := s.GetString(key)
	if err != nil || !ok {
		return def, err
	}
	value, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		return def, nil
	}
	return value, nil
}

// SetInt stores an integer value under key.
func (s *Store) SetInt(key string, value int) error {
	return s.SetString(key, strconv.Itoa(value))
}

// GetInt returns the integer value for key, or def when absent or
// unparsable.
func (s *Store) GetInt(key string, def int) (int, error) {
	raw, ok, err := s.GetString(key)
	if err != nil || !ok {
		return def, err
	}
	value, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		return def, nil
	}
	return value, nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("options: cannot delete %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys, for diagnostics.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("options: cannot list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("options: cannot scan row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("options: row iteration error: %w", err)
	}
	return keys, nil
}
