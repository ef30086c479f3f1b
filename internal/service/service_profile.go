package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/models"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z]{2,15}$`)
	picturePattern = regexp.MustCompile(`(?i)^(https?://)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&/=]*)$`)
)

// fieldValidator pairs an updatable profile column with its value check.
// The slice (not a map) keeps validation order stable.
type fieldValidator struct {
	field    string
	validate func(value string) bool
}

// updatableFields enumerates the profile columns a user may edit and the
// constraint each value must satisfy. Anything not listed is rejected.
var updatableFields = []fieldValidator{
	{"name", func(v string) bool { return namePattern.MatchString(v) }},
	{"bio", func(string) bool { return true }},
	{"picture", func(v string) bool { return picturePattern.MatchString(v) }},
	{"user_page", func(string) bool { return true }},
}

// profileService implements ProfileService on top of the account repository.
type profileService struct {
	// accountRepository is the data-access layer for account rows.
	accountRepository store.AccountRepository

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewProfileService constructs a ProfileService backed by accountRepository.
func NewProfileService(accountRepository store.AccountRepository, logger *logger.Logger) ProfileService {
	return &profileService{accountRepository: accountRepository, logger: logger}
}

// Get resolves a profile by explicit uid, by (name, code) handle, or by the
// caller's own session, in that precedence. The user page body is fetched
// only when the query asks for it. Level and badge details are joined in
// when present; their absence is not an error.
func (s *profileService) Get(ctx context.Context, query ProfileQuery) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var (
		account models.Account
		err     error
	)

	switch {
	case query.UID != 0:
		account, err = s.accountRepository.FindByID(ctx, query.UID, query.UserPage)
	case query.Name != "":
		account, err = s.accountRepository.FindByHandle(ctx, query.Name, query.Code, query.UserPage)
	case query.SessionUID != 0:
		account, err = s.accountRepository.FindByID(ctx, query.SessionUID, query.UserPage)
	default:
		return models.Profile{}, ErrNoIdentifier
	}

	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return models.Profile{}, err
		}

		log.Err(err).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	profile := models.Profile{Account: account}

	level, err := s.accountRepository.GetLevel(ctx, account.Level)
	switch {
	case err == nil:
		profile.LevelInfo = &level
	case !errors.Is(err, store.ErrNoLevelFound):
		log.Err(err).Msg("level lookup failed")
		return models.Profile{}, fmt.Errorf("level lookup failed: %w", err)
	}

	if account.Verify != 0 {
		badge, err := s.accountRepository.GetBadge(ctx, account.Verify)
		switch {
		case err == nil:
			profile.BadgeInfo = &badge
		case !errors.Is(err, store.ErrNoBadgeFound):
			log.Err(err).Msg("badge lookup failed")
			return models.Profile{}, fmt.Errorf("badge lookup failed: %w", err)
		}
	}

	return profile, nil
}

// Update validates and applies the submitted field edits to uid's profile
// in a single statement. The update is all-or-nothing: one unknown key
// (ErrUnknownField) or failing value (ErrInvalidFieldValue) rejects the
// whole submission, and an empty submission is ErrInvalidDataProvided.
func (s *profileService) Update(ctx context.Context, uid int64, fields map[string]string) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return ErrInvalidDataProvided
	}

	known := make(map[string]func(string) bool, len(updatableFields))
	for _, fv := range updatableFields {
		known[fv.field] = fv.validate
	}

	for field, value := range fields {
		validate, ok := known[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if !validate(value) {
			return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
		}
	}

	if err := s.accountRepository.UpdateProfile(ctx, uid, fields); err != nil {
		if errors.Is(err, store.ErrHandleTaken) || errors.Is(err, store.ErrNoAccountFound) {
			return err
		}

		log.Err(err).Int64("uid", uid).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}

// CheckHandle reports whether the (name, code) pair is free to claim.
// The name is required; a zero code means "any code with this name".
func (s *profileService) CheckHandle(ctx context.Context, name string, code int) (bool, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return false, ErrInvalidDataProvided
	}

	taken, err := s.accountRepository.HandleTaken(ctx, name, code)
	if err != nil {
		log.Err(err).Msg("handle availability check failed")
		return false, fmt.Errorf("handle availability check failed: %w", err)
	}

	return !taken, nil
}
