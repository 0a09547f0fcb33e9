package domain

import "errors"

var (
	// ErrEmptyName rejects project creation with a blank name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrMissingOwner rejects project creation without an owning user.
	ErrMissingOwner = errors.New("project must belong to a user")

	// ErrEmptyMessage rejects sending a blank chat message.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrInvalidTransition rejects a backward or unknown status change.
	// Note that re-setting the current status and changing a terminal
	// session are silent no-ops, not errors.
	ErrInvalidTransition = errors.New("invalid session status transition")

	// ErrDuplicateFileName rejects an upload whose display name already
	// exists within the owning scope.
	ErrDuplicateFileName = errors.New("a file with this name already exists")
)
