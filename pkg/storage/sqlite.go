package storage

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"mindwell/pkg/errors"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteBackend keeps values in a single SQLite table
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path in WAL mode
func OpenSQLite(path string) (*SQLiteBackend, error) {
	// parent directory must exist to avoid SQLITE_CANTOPEN
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DIR_CREATE_FAILED", "failed to create database directory")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_OPEN_FAILED", "failed to open database")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_OPEN_FAILED", "failed to open database")
	}
	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_SCHEMA_FAILED", "failed to create kv table")
	}
	return &SQLiteBackend{db: db}, nil
}

// Get returns the value for key
func (s *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_READ_FAILED", "failed to read key").
			WithContext("key", key)
	}
	return value, nil
}

// Set upserts value under key
func (s *SQLiteBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeStorage, "DB_WRITE_FAILED", "failed to write key").
			WithContext("key", key)
	}
	return nil
}

// Delete removes key
func (s *SQLiteBackend) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.Wrap(err, errors.ErrTypeStorage, "DB_WRITE_FAILED", "failed to delete key").
			WithContext("key", key)
	}
	return nil
}

// Keys lists keys starting with prefix in sorted order
func (s *SQLiteBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE substr(key, 1, length(?)) = ? ORDER BY key`, prefix, prefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_READ_FAILED", "failed to list keys")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeStorage, "DB_READ_FAILED", "failed to scan key")
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database
func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
