package service

import (
	"context"

	"github.com/campushub/forum-server/models"
)

// SessionService manages the lifecycle of opaque session tokens.
type SessionService interface {
	// Validate resolves a session token. A hit refreshes the sliding
	// expiry window; a stale session is deleted on the spot and reported
	// as ErrNoSession, identically to a token that never existed.
	Validate(ctx context.Context, sid string) (models.Session, error)

	// Issue creates a fresh session for the account and returns its token.
	Issue(ctx context.Context, uid int64, client models.ClientInfo) (string, error)
}

// AccountService turns verified identity claims into local accounts.
type AccountService interface {
	// Provision finds the account owning the claims' subject id, creating
	// it on first sight. newbie reports whether a new row was created.
	Provision(ctx context.Context, claims models.Claims) (uid int64, newbie bool, err error)
}

// ProfileQuery selects exactly one account resolution path for a profile
// read: by id, by handle, or by the caller's own session.
type ProfileQuery struct {
	UID        int64
	Name       string
	Code       int
	SessionUID int64

	// UserPage includes the profile page content in the result.
	UserPage bool
}

// ProfileService serves profile reads and owner-scoped profile updates.
type ProfileService interface {
	// Get resolves a profile per the query's resolution path, joining in
	// level attributes and the verification badge when present.
	Get(ctx context.Context, query ProfileQuery) (models.Profile, error)

	// Update applies a whitelisted field set to the caller's own account.
	// The first unknown key or invalid value rejects the entire update.
	Update(ctx context.Context, uid int64, fields map[string]string) error

	// CheckHandle reports whether the (name, code) pair is still free.
	CheckHandle(ctx context.Context, name string, code int) (bool, error)
}

// ForumService serves the read-only forum content surface.
type ForumService interface {
	// Overview returns the visible category/block hierarchy.
	Overview(ctx context.Context) (models.ForumOverview, error)

	// Posts returns one page of the post listing, optionally filtered to a
	// block.
	Posts(ctx context.Context, block, page, size int) (models.PostPage, error)
}
