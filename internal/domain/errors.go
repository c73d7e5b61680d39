package domain

import "errors"

// Business outcomes the handlers translate to HTTP statuses. Anything else
// coming out of a repository is treated as an infrastructure error and
// passed through unwrapped.
var (
	ErrNotFound               = errors.New("record not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrDuplicateIdentity      = errors.New("identity already has an active account")
	ErrValidation             = errors.New("validation failed")
)
