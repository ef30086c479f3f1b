package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoAccountFound is returned when a lookup expected to match one
	// account produces an empty result set. Lookups only see rows with a
	// non-NULL subject id; placeholder rows are treated as absent.
	ErrNoAccountFound = errors.New("no account was found")

	// ErrSubjectExists is returned when creating an account fails because
	// a row with the same external subject id already exists.
	ErrSubjectExists = errors.New("subject id already registered")

	// ErrHandleTaken is returned when creating an account fails on the
	// (name, code) unique constraint. The provisioner reacts by redrawing
	// the discriminator code once before giving up.
	ErrHandleTaken = errors.New("display name and code already taken")

	// ErrNoSessionFound is returned when a session token does not exist.
	// Expired sessions removed during lookup surface the same error, so
	// callers cannot tell "expired" from "never existed".
	ErrNoSessionFound = errors.New("no session was found")

	// ErrSessionExists is returned when inserting a session collides on the
	// token primary key. The issuer retries with a fresh token once.
	ErrSessionExists = errors.New("session token already exists")

	// ErrNoLevelFound is returned when a membership level id has no row.
	ErrNoLevelFound = errors.New("no level was found")

	// ErrNoBadgeFound is returned when a verification badge id has no row.
	ErrNoBadgeFound = errors.New("no badge was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
