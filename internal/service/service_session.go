package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/internal/utils"
	"github.com/campushub/forum-server/models"
)

// sessionService is the concrete implementation of SessionService. It owns
// the sliding idle window: every successful validation pushes the expiry
// forward, and stale rows are removed lazily at lookup time — there is no
// background sweep, so an idle session's row lingers until someone presents
// its token again.
type sessionService struct {
	// sessionRepository is the data-access layer for session rows.
	sessionRepository store.SessionRepository

	// ttl is the idle window after which a session expires.
	ttl time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService with the idle TTL from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ttl:               cfg.SessionTTL,
		logger:            logger,
	}
}

// Validate looks up the token and refreshes its activity window.
//
// Returns the live session or:
//   - ErrNoSession if the token does not exist, or existed but idled past
//     the TTL — in which case the row is deleted before returning. Callers
//     get no distinct "expired" signal.
//   - A wrapped storage error on any other repository failure.
//
// The read-then-touch is not atomic against concurrent validations of the
// same token; losing one timestamp update only shortens the window by the
// gap between the two requests.
func (s *sessionService) Validate(ctx context.Context, sid string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.Find(ctx, sid)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionFound) {
			return models.Session{}, ErrNoSession
		}

		log.Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	now := time.Now()

	if now.Sub(session.LastRequest) >= s.ttl {
		log.Debug().Int64("uid", session.UID).Msg("session expired, deleting")

		if err := s.sessionRepository.Delete(ctx, sid); err != nil {
			log.Err(err).Msg("failed to delete expired session")
			return models.Session{}, fmt.Errorf("failed to delete expired session: %w", err)
		}

		return models.Session{}, ErrNoSession
	}

	if err := s.sessionRepository.Touch(ctx, sid, now); err != nil {
		log.Err(err).Msg("failed to refresh session activity")
		return models.Session{}, fmt.Errorf("failed to refresh session activity: %w", err)
	}

	session.LastRequest = now
	return session, nil
}

// Issue generates a fresh unguessable token and persists a session row with
// the activity window starting now.
//
// A token collision is astronomically unlikely but handled anyway: the
// insert is retried once with a new token before the error surfaces.
func (s *sessionService) Issue(ctx context.Context, uid int64, client models.ClientInfo) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		sid, err := utils.RandomToken()
		if err != nil {
			return "", fmt.Errorf("failed to generate session token: %w", err)
		}

		err = s.sessionRepository.Create(ctx, models.Session{
			SID:         sid,
			UID:         uid,
			LastRequest: time.Now(),
			Platform:    client.Platform,
			Browser:     client.Browser,
		})
		if err == nil {
			log.Debug().Int64("uid", uid).Msg("session issued")
			return sid, nil
		}

		if !errors.Is(err, store.ErrSessionExists) {
			log.Err(err).Int64("uid", uid).Msg("session creation failed")
			return "", fmt.Errorf("session creation failed: %w", err)
		}

		log.Warn().Int64("uid", uid).Msg("session token collision, regenerating")
	}

	return "", fmt.Errorf("session creation failed: %w", store.ErrSessionExists)
}
