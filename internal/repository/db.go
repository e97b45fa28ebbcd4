package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// NewDB opens the SQLite database file at path, creating it if absent.
func NewDB(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one pooled connection avoids SQLITE_BUSY
	// under concurrent requests.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates both tables if they do not exist. It is safe to run on
// every process start and never touches existing rows.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const usersDDL = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		full_name TEXT,
		hashed_password TEXT NOT NULL,
		disabled INTEGER NOT NULL DEFAULT 0)`

	const carModelsDDL = `CREATE TABLE IF NOT EXISTS car_models (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		manufacturer TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		price REAL NOT NULL,
		image_path TEXT)`

	if _, err := db.ExecContext(ctx, usersDDL); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	if _, err := db.ExecContext(ctx, carModelsDDL); err != nil {
		return fmt.Errorf("create car_models table: %w", err)
	}
	return nil
}
