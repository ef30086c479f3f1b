package service

import "errors"

var (
	// ErrNoSession is returned when a presented token resolves to no live
	// session, whether it never existed or idled past the expiry window.
	ErrNoSession = errors.New("no valid session")

	// ErrNoIdentifier is returned when a profile read supplies none of
	// {uid, handle, session}.
	ErrNoIdentifier = errors.New("no account identifier provided")

	// ErrUnknownField is returned when a profile update contains a key
	// outside the mutable whitelist.
	ErrUnknownField = errors.New("unknown profile field")

	// ErrInvalidFieldValue is returned when a whitelisted profile field
	// carries a format-invalid value.
	ErrInvalidFieldValue = errors.New("invalid profile field value")

	// ErrInvalidDataProvided is returned when a request is missing required
	// input (empty token, empty handle name, bad page number).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrHandleExhausted is returned when no free discriminator code could
	// be drawn for a display name, including the bounded retry after an
	// insert-time collision.
	ErrHandleExhausted = errors.New("could not allocate a free handle")
)
