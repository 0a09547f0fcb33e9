package service

import (
	"context"
	"log/slog"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	logger   *slog.Logger
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, logger *slog.Logger) ProjectService {
	return &projectService{projects: projects, uow: uow, logger: logger}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}

	// The project and its 22 workflow sessions exist together or not at all.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if err := txProjects.Create(ctx, p); err != nil {
			return err
		}
		for _, entry := range domain.DefaultSessionTemplate() {
			sess := &domain.Session{
				ProjectID:     p.ID,
				SessionNumber: entry.Number,
				SessionName:   entry.Name,
				Status:        domain.StatusNotStarted,
			}
			if err := txSessions.Create(ctx, sess); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("project created", "project_id", p.ID, "user_id", p.UserID, "name", p.Name)
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListForUser(ctx context.Context, userID int64) ([]*domain.Project, error) {
	return s.projects.ListForUser(ctx, userID)
}

func (s *projectService) MarkDone(ctx context.Context, id int64) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.projects.UpdateStatus(ctx, id, domain.ProjectDone); err != nil {
		return err
	}
	s.logger.Info("project closed", "project_id", id)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}
