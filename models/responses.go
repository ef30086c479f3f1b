package models

// Envelope is the uniform response body returned by every endpoint.
//
// Success reports whether the operation completed; Message carries a
// human-readable note (usually empty on success); Data holds the
// endpoint-specific payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AuthResult is the payload of POST /auth. Newbie reports whether the call
// provisioned a brand-new account.
type AuthResult struct {
	Newbie bool `json:"newbie"`
}

// Availability is the payload of GET /user/check.
type Availability struct {
	Available bool `json:"available"`
}

// NotSignedIn is the payload returned when an operation requires a session
// and none (or an expired one) is present.
type NotSignedIn struct {
	Empty bool `json:"empty"`
}
