// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and random string generation for tokens and discriminator codes.
package utils

import (
	"context"

	"github.com/campushub/forum-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// validated [models.Session] for the current request.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the validated session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — a session was resolved for this request
//   - ok == false — the request carried no (valid) session cookie
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
