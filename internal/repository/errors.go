package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist. Callers treat it
	// as an empty result rather than a failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
