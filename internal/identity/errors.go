package identity

import "errors"

// Sentinel errors returned by [Verifier.Verify]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidToken is returned when the token is malformed, expired,
	// carries a wrong audience or issuer, or fails signature validation.
	ErrInvalidToken = errors.New("identity token is invalid")

	// ErrWrongDomain is returned when an otherwise valid token carries a
	// hosted-domain claim different from the configured allowed domain.
	ErrWrongDomain = errors.New("wrong hosted domain")

	// ErrKeyFetch is returned when the provider's signing keys cannot be
	// retrieved, so the token cannot be checked at all.
	ErrKeyFetch = errors.New("failed to fetch signing keys")
)
