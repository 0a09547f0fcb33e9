package llm

import "context"

// Role tags a chat message for the completion service.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one role-tagged entry of an assembled context.
type ChatMessage struct {
	Role    Role
	Content string
}

// Gateway is the boundary to the remote language model service. Calls are
// blocking; the core performs no retries — transport-level concerns stay
// behind this interface.
type Gateway interface {
	// Complete sends the assembled message list and returns the generated
	// text of the first choice.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)

	// Transcribe converts recorded audio (WAV bytes) to text.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
