package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"health-tracker/internal/health/repository"
	"health-tracker/pkg/log"
)

// Stored timestamps are fixed-width UTC so they sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository. The schema must already exist; see Migrate.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("health/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Open opens the database at path, creating its directory when needed, and
// applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// single writer; also keeps an in-memory database alive across calls
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply SQLite schema: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("health/repository/sqlite.%s", method)
}
