package service

import (
	"context"
	"log/slog"

	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
)

type promptService struct {
	promptCfg repository.PromptConfigRepo
	logger    *slog.Logger
}

func NewPromptService(promptCfg repository.PromptConfigRepo, logger *slog.Logger) PromptService {
	return &promptService{promptCfg: promptCfg, logger: logger}
}

func (s *promptService) Get(ctx context.Context) (*domain.PromptConfig, error) {
	return s.promptCfg.Get(ctx)
}

func (s *promptService) Update(ctx context.Context, c *domain.PromptConfig) error {
	if err := s.promptCfg.Update(ctx, c); err != nil {
		return err
	}
	s.logger.Info("prompt configuration updated")
	return nil
}
