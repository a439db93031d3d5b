package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens an existing SQLite database file read-only.
// A missing file is an error rather than a new empty database.
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite3", readOnlyURI(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// readOnlyURI builds a read-only SQLite URI for path, escaping characters
// such as ? and # that would otherwise end the path.
func readOnlyURI(path string) string {
	u := url.URL{Scheme: "file", Path: path, OmitHost: true, RawQuery: "mode=ro"}
	return u.String()
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *SQLiteClient) GetDB() *sql.DB {
	return c.db
}
