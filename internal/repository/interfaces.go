package repository

import (
	"context"

	"github.com/talbenari/coachflow/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type TokenRepo interface {
	Store(ctx context.Context, userID int64, token string) error
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Remove(ctx context.Context, token string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Project, error)
	UpdateGoal(ctx context.Context, id int64, goal string) error
	UpdateAggregatedSummary(ctx context.Context, id int64, summary string) error
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	ListForProject(ctx context.Context, projectID int64) ([]*domain.Session, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error
	UpdateSummary(ctx context.Context, id int64, summary string) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListForSession(ctx context.Context, sessionID int64) ([]*domain.Message, error)
}

type FileRepo interface {
	Create(ctx context.Context, f *domain.File) error
	GetByID(ctx context.Context, id int64) (*domain.File, error)
	ListForSession(ctx context.Context, sessionID int64) ([]*domain.File, error)
	ListForProject(ctx context.Context, projectID int64) ([]*domain.File, error)
	ListGlobal(ctx context.Context) ([]*domain.File, error)
	ExistsInScope(ctx context.Context, f *domain.File) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type PromptConfigRepo interface {
	// Get returns the singleton row, creating it with empty defaults on
	// first read.
	Get(ctx context.Context) (*domain.PromptConfig, error)
	Update(ctx context.Context, c *domain.PromptConfig) error
}
