package service

import (
	"context"

	"github.com/talbenari/coachflow/internal/domain"
)

type ProjectService interface {
	// Create validates the project and creates it together with its fixed
	// 22-session workflow in one transaction.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Project, error)

	// MarkDone closes out a finished engagement.
	MarkDone(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type SessionService interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	ListForProject(ctx context.Context, projectID int64) ([]*domain.Session, error)

	// SetStatus applies the workflow state machine. Setting the current
	// status again or changing an ended session is a silent no-op; a
	// backward move is rejected. Entering the terminal status triggers,
	// in order: goal generation (kickoff session only), summarization,
	// and project aggregation.
	SetStatus(ctx context.Context, sessionID int64, status domain.SessionStatus) error

	// Summarize compresses the session's conversation into its summary
	// field and then refreshes the project's aggregated summary.
	Summarize(ctx context.Context, sessionID int64) error

	// GenerateGoals derives the project goal from the kickoff session's
	// summary. A blank summary is a no-op.
	GenerateGoals(ctx context.Context, sessionID int64) error

	// AggregateProject reduces all non-blank session summaries into the
	// project's aggregated summary.
	AggregateProject(ctx context.Context, projectID int64) error
}

type ChatService interface {
	// Send runs one chat turn: assembles context, calls the model, and
	// persists the user message and reply. Returns the assistant reply.
	Send(ctx context.Context, sessionID int64, text string) (string, error)

	// SendAudio transcribes recorded audio and sends the transcript as a
	// normal chat turn.
	SendAudio(ctx context.Context, sessionID int64, audio []byte) (string, error)

	History(ctx context.Context, sessionID int64) ([]*domain.Message, error)
}

type FileService interface {
	// Upload stores the blob and records the file. A display name already
	// present in the owning scope is rejected before any side effect.
	Upload(ctx context.Context, f *domain.File, data []byte) error

	// Delete removes the blob and then the record. The two steps are not
	// transactional.
	Delete(ctx context.Context, id int64) error

	ListSession(ctx context.Context, sessionID int64) ([]*domain.File, error)
	ListProject(ctx context.Context, projectID int64) ([]*domain.File, error)
	ListGlobal(ctx context.Context) ([]*domain.File, error)
}

type PromptService interface {
	Get(ctx context.Context) (*domain.PromptConfig, error)
	Update(ctx context.Context, c *domain.PromptConfig) error
}

type UserService interface {
	Register(ctx context.Context, name, email, password string, role domain.UserRole, org string) (*domain.User, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error

	// List returns all users, for the admin surface.
	List(ctx context.Context) ([]*domain.User, error)
}
