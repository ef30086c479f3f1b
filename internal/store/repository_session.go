package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/models"
	"github.com/jackc/pgerrcode"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Session rows are small and hot: one lookup plus one
// touch per authenticated request.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Find retrieves the session with the given token.
func (r *sessionRepository) Find(ctx context.Context, sid string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := r.db.QueryRowContext(ctx, findSession, sid).Scan(
		&session.SID,
		&session.UID,
		&session.LastRequest,
		&session.Platform,
		&session.Browser,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionFound
		}

		log.Err(err).Str("func", "*sessionRepository.Find").Msg("error finding session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// Touch sets the session's last-activity timestamp, resetting the sliding
// expiry window.
func (r *sessionRepository) Touch(ctx context.Context, sid string, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchSession, sid, at); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Touch").Msg("error touching session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the session row. Deleting a row that is already gone is
// not an error: two concurrent lookups may both discover the same expired
// session.
func (r *sessionRepository) Delete(ctx context.Context, sid string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sid); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Create inserts a new session row.
//
// Error handling:
//   - unique_violation (23505) on the token → [ErrSessionExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) Create(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertSession,
		session.SID, session.UID, session.LastRequest, session.Platform, session.Browser)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Int64("uid", session.UID).Msg("error creating session")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrSessionExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}
