package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
	"github.com/talbenari/coachflow/internal/storage"
)

type fileService struct {
	files  repository.FileRepo
	store  storage.Store
	logger *slog.Logger
}

func NewFileService(files repository.FileRepo, store storage.Store, logger *slog.Logger) FileService {
	return &fileService{files: files, store: store, logger: logger}
}

func (s *fileService) Upload(ctx context.Context, f *domain.File, data []byte) error {
	if strings.TrimSpace(f.DisplayName) == "" {
		return domain.ErrEmptyName
	}

	// The duplicate check runs before any side effect: a rejected upload
	// leaves neither a blob nor a row behind.
	exists, err := s.files.ExistsInScope(ctx, f)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateFileName
	}

	path, err := s.store.Save(data, f.DisplayName)
	if err != nil {
		return err
	}
	f.StoragePath = path

	if err := s.files.Create(ctx, f); err != nil {
		return err
	}
	s.logger.Info("file uploaded", "file_id", f.ID, "name", f.DisplayName, "scope", f.Scope())
	return nil
}

// Delete removes the blob first, then the row. A crash between the two can
// leave a dangling row; this mirrors the store's non-transactional contract.
func (s *fileService) Delete(ctx context.Context, id int64) error {
	f, err := s.files.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(f.StoragePath); err != nil {
		return err
	}
	if err := s.files.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("file deleted", "file_id", id, "name", f.DisplayName)
	return nil
}

func (s *fileService) ListSession(ctx context.Context, sessionID int64) ([]*domain.File, error) {
	return s.files.ListForSession(ctx, sessionID)
}

func (s *fileService) ListProject(ctx context.Context, projectID int64) ([]*domain.File, error) {
	return s.files.ListForProject(ctx, projectID)
}

func (s *fileService) ListGlobal(ctx context.Context) ([]*domain.File, error) {
	return s.files.ListGlobal(ctx)
}
