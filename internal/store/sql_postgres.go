// Package store implements the PostgreSQL persistence layer of the forum
// server: a thin connection wrapper plus one repository per aggregate
// (accounts, sessions, forum content). All queries use parameter binding;
// no value is ever interpolated into SQL text.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps *sql.DB with the application logger. Repositories embed or hold
// a *DB and share one connection pool; database/sql hands each request its
// own connection for the duration of a call.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies all embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// postgresError returns the PostgreSQL error code of err, or "" when err did
// not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// postgresConstraint returns the violated constraint name of err, or ""
// when err is not a pgx constraint error. Used to tell a (name, code)
// handle collision apart from a duplicate subject id on the same table.
func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
