package teacher

import "errors"

// Sentinel errors returned by validation, the flows, and the repositories.
// Handlers match on these with errors.Is; anything else is treated as a
// store failure and rendered as a 500 without detail.
var (
	ErrMissingField  = errors.New("required field missing")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrWeakPassword  = errors.New("password shorter than 8 characters")
	ErrEmailTaken    = errors.New("email already in use")
	ErrNotFound      = errors.New("teacher not found")
	ErrBadCredential = errors.New("password mismatch")
)
