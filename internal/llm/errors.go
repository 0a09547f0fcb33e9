package llm

import "errors"

var (
	// ErrUnavailable indicates the completion service could not be reached.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyCompletion indicates the service answered without any choice.
	ErrEmptyCompletion = errors.New("empty completion response")
)
