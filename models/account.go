package models

import "time"

// Account represents a local user record derived from one external identity
// subject. A row is created exactly once, on the first successful ID-token
// verification for a given subject, and its handle (Name + Code) is fixed at
// creation time.
//
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// UID is the internal unique identifier of the account.
	UID int64 `json:"uid"`

	// GID is the stable subject identifier issued by the identity provider.
	// Unique and immutable. Rows with an empty GID are placeholders and are
	// never returned by profile lookups.
	GID string `json:"-"`

	// Name is the display name, 2–15 letters. Together with Code it forms
	// the account's unique handle.
	Name string `json:"name"`

	// Code is the 4-digit discriminator appended to Name to resolve display
	// name collisions. Always in [1000, 9999].
	Code int `json:"code"`

	Email   string `json:"email"`
	Bio     string `json:"bio"`
	Picture string `json:"picture"`

	// UserPage is the free-form profile page content. Only included in
	// lookups that explicitly request it.
	UserPage string `json:"user_page,omitempty"`

	// Level is the membership level id; resolved to a Level record in
	// profile responses.
	Level int `json:"lv"`
	Exp   int `json:"exp"`

	IsMember    bool `json:"is_member"`
	IsModerator bool `json:"is_moderator"`

	// Verify is the verification-badge id, zero when the account carries
	// no badge.
	Verify int `json:"verify,omitempty"`

	RegisterTime time.Time `json:"register_time"`

	// JoinTime is when the account became a member; zero until then.
	JoinTime time.Time `json:"join_time,omitzero"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// Level holds the display attributes of a membership level.
type Level struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}

// Badge holds the display attributes of a verification badge.
type Badge struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Profile is the shape returned by profile lookups: the account with its
// level attributes joined in and the badge record resolved when present.
type Profile struct {
	Account
	LevelInfo *Level `json:"lv_info,omitempty"`
	BadgeInfo *Badge `json:"verify_info,omitempty"`
}
