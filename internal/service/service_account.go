package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/internal/utils"
	"github.com/campushub/forum-server/models"
)

// maxNameLength caps the display-name part of a handle.
const maxNameLength = 15

// codeDrawAttempts bounds the code search per provisioning attempt so a
// pathologically saturated name cannot spin forever.
const codeDrawAttempts = 100

// accountService implements AccountService: find-or-create provisioning of
// accounts keyed by the verified identity subject.
type accountService struct {
	// accountRepository is the data-access layer for account rows.
	accountRepository store.AccountRepository

	// randomString draws random strings; swapped in tests for a
	// deterministic source.
	randomString func(length int, alphabet string) (string, error)

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService backed by accountRepository.
func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		randomString:      utils.RandomString,
		logger:            logger,
	}
}

// Provision resolves verified identity claims to a local account, creating
// one on first sign-in.
//
// Returns the account id and whether the account was created by this call.
// Creation derives the display name from the given name and draws a random
// 4-digit discriminator code until the (name, code) pair is free; the unique
// constraint on the pair is the backstop against a concurrent registration
// winning the same handle, in which case the draw is retried. Exhausting the
// retries yields ErrHandleExhausted.
func (s *accountService) Provision(ctx context.Context, claims models.Claims) (int64, bool, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindBySubject(ctx, claims.Subject)
	if err == nil {
		return account.UID, false, nil
	}
	if !errors.Is(err, store.ErrNoAccountFound) {
		log.Err(err).Msg("account lookup failed")
		return 0, false, fmt.Errorf("account lookup failed: %w", err)
	}

	name := deriveName(claims.GivenName)

	for attempt := 0; attempt < 2; attempt++ {
		code, err := s.drawCode(ctx, name)
		if err != nil {
			return 0, false, err
		}

		created, err := s.accountRepository.Create(ctx, models.Account{
			GID:     claims.Subject,
			Name:    name,
			Code:    code,
			Email:   claims.Email,
			Picture: claims.Picture,
		})
		if err == nil {
			log.Info().Int64("uid", created.UID).Str("name", name).Msg("account created")
			return created.UID, true, nil
		}

		if errors.Is(err, store.ErrSubjectExists) {
			// Concurrent first sign-in from the same identity won the
			// insert; adopt its row.
			account, err = s.accountRepository.FindBySubject(ctx, claims.Subject)
			if err != nil {
				log.Err(err).Msg("account lookup failed after concurrent creation")
				return 0, false, fmt.Errorf("account lookup failed: %w", err)
			}
			return account.UID, false, nil
		}

		if !errors.Is(err, store.ErrHandleTaken) {
			log.Err(err).Msg("account creation failed")
			return 0, false, fmt.Errorf("account creation failed: %w", err)
		}

		log.Warn().Str("name", name).Int("code", code).Msg("handle raced away, redrawing code")
	}

	return 0, false, ErrHandleExhausted
}

// drawCode draws random 4-digit codes for name until one is free. Codes
// below 1000 would lose their leading zero in the rendered handle and are
// rejected.
func (s *accountService) drawCode(ctx context.Context, name string) (int, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < codeDrawAttempts; attempt++ {
		digits, err := s.randomString(4, utils.DigitAlphabet)
		if err != nil {
			return 0, fmt.Errorf("failed to draw handle code: %w", err)
		}

		code, err := strconv.Atoi(digits)
		if err != nil {
			return 0, fmt.Errorf("failed to draw handle code: %w", err)
		}
		if code < 1000 {
			continue
		}

		taken, err := s.accountRepository.HandleTaken(ctx, name, code)
		if err != nil {
			log.Err(err).Msg("handle availability check failed")
			return 0, fmt.Errorf("handle availability check failed: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return 0, ErrHandleExhausted
}

// deriveName shapes a given name into a display name: trim, truncate to the
// handle limit, then cut at the first space so a truncation never ends
// mid-phrase.
func deriveName(givenName string) string {
	name := strings.TrimSpace(givenName)

	runes := []rune(name)
	if len(runes) > maxNameLength {
		runes = runes[:maxNameLength]
	}

	for i, r := range runes {
		if unicode.IsSpace(r) {
			runes = runes[:i]
			break
		}
	}

	return string(runes)
}
