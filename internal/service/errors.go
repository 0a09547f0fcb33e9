package service

import "errors"

var (
	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmptyAudio is returned when a recording transcribes to nothing.
	ErrEmptyAudio = errors.New("transcribed message is empty")
)

// InsufficientDataSummary is written as the aggregated summary when no
// session has produced a summary yet.
const InsufficientDataSummary = "Insufficient data for project summarization."
