package store

import (
	"context"
	"time"

	"github.com/campushub/forum-server/models"
)

// AccountRepository is the data-access contract for user accounts.
type AccountRepository interface {
	// FindBySubject returns the account owning the given external subject
	// id, or ErrNoAccountFound.
	FindBySubject(ctx context.Context, gid string) (models.Account, error)

	// FindByID returns the account with the given internal id. Rows without
	// a subject id are invisible; includeUserPage controls whether the
	// user_page column is fetched.
	FindByID(ctx context.Context, uid int64, includeUserPage bool) (models.Account, error)

	// FindByHandle returns the account with the given (name, code) handle,
	// subject to the same visibility rule as FindByID.
	FindByHandle(ctx context.Context, name string, code int, includeUserPage bool) (models.Account, error)

	// HandleTaken reports whether any account already owns the (name, code)
	// pair. Placeholder rows count: the unique constraint spans all rows.
	HandleTaken(ctx context.Context, name string, code int) (bool, error)

	// Create persists a new account and returns it with server-assigned
	// fields (UID, RegisterTime) populated. Unique violations map to
	// ErrSubjectExists or ErrHandleTaken depending on the constraint hit.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateProfile applies the given column values to one account in a
	// single statement. Keys must already be validated; values are always
	// bound as parameters.
	UpdateProfile(ctx context.Context, uid int64, fields map[string]string) error

	// GetLevel returns the display attributes of a membership level.
	GetLevel(ctx context.Context, id int) (models.Level, error)

	// GetBadge returns a verification badge record.
	GetBadge(ctx context.Context, id int) (models.Badge, error)
}

// SessionRepository is the data-access contract for sessions.
type SessionRepository interface {
	// Find returns the session with the given token, or ErrNoSessionFound.
	Find(ctx context.Context, sid string) (models.Session, error)

	// Touch sets the session's last-activity timestamp. A lost update under
	// two concurrent validations of the same token is acceptable.
	Touch(ctx context.Context, sid string, at time.Time) error

	// Delete removes the session row. Deleting an absent row is not an error.
	Delete(ctx context.Context, sid string) error

	// Create inserts a new session row. A token collision surfaces as
	// ErrSessionExists.
	Create(ctx context.Context, session models.Session) error
}

// ForumRepository is the read-only data-access contract for forum content.
type ForumRepository interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Blocks(ctx context.Context) ([]models.Block, error)

	// CountPosts returns the total number of posts across all blocks.
	CountPosts(ctx context.Context) (int, error)

	// ListPosts returns one page of posts ordered by latest comment,
	// newest first. A zero block lists across all blocks.
	ListPosts(ctx context.Context, block int, limit, offset uint64) ([]models.Post, error)
}
