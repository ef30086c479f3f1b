// Package migrations holds the embedded goose migrations for the forum
// schema (users, sessions, levels, verify badges, categories, blocks,
// posts). Migrate is run by the server at startup, before any repository
// touches the database.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations against db. It is idempotent:
// goose tracks applied versions in its own table, so rerunning on an
// up-to-date schema is a no-op.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
