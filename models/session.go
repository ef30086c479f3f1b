package models

import "time"

// Session is an opaque bearer-token credential mapping to exactly one
// account. The token itself is the only value stored in the client cookie;
// all session state lives server-side.
//
// A session is valid while the gap since LastRequest stays under the
// configured idle TTL (7 days). Every successful validation resets the
// window, so active users are never logged out; expired rows are removed
// lazily, at the moment a lookup discovers them.
type Session struct {
	// SID is the opaque session token, primary key of the sessions table.
	SID string `json:"-"`

	// UID is the owning account id.
	UID int64 `json:"uid"`

	// LastRequest is the last-activity timestamp driving the sliding
	// expiry window.
	LastRequest time.Time `json:"-"`

	// Platform and Browser are client metadata captured at issue time,
	// kept for auditing only.
	Platform string `json:"-"`
	Browser  string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// ClientInfo carries the client metadata recorded on a freshly issued
// session.
type ClientInfo struct {
	Platform string
	Browser  string
}
