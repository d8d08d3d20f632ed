package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

// NewDatabase opens the embedded SQLite database stored at the given file path.
// The pool is capped at a single connection: the store serves exactly one
// sequential caller, and one connection keeps every statement on the same
// SQLite handle.
func NewDatabase(path string) (*sql.DB, error) {
	ctxTimeout := 5 * time.Second

	dtb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open SQLite database %q: %w", path, err)
	}

	dtb.SetMaxOpenConns(1)
	dtb.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), ctxTimeout)
	defer cancel()

	if err = dtb.PingContext(ctx); err != nil {
		dtb.Close()
		return nil, fmt.Errorf("failed to ping SQLite database %q: %w", path, err)
	}

	return dtb, nil
}
