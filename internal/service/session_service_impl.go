package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talbenari/coachflow/internal/assembler"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/llm"
	"github.com/talbenari/coachflow/internal/repository"
)

type sessionService struct {
	sessions  repository.SessionRepo
	projects  repository.ProjectRepo
	messages  repository.MessageRepo
	files     repository.FileRepo
	promptCfg repository.PromptConfigRepo
	gateway   llm.Gateway
	asm       *assembler.Assembler
	logger    *slog.Logger
}

func NewSessionService(
	sessions repository.SessionRepo,
	projects repository.ProjectRepo,
	messages repository.MessageRepo,
	files repository.FileRepo,
	promptCfg repository.PromptConfigRepo,
	gateway llm.Gateway,
	asm *assembler.Assembler,
	logger *slog.Logger,
) SessionService {
	return &sessionService{
		sessions:  sessions,
		projects:  projects,
		messages:  messages,
		files:     files,
		promptCfg: promptCfg,
		gateway:   gateway,
		asm:       asm,
		logger:    logger,
	}
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListForProject(ctx context.Context, projectID int64) ([]*domain.Session, error) {
	return s.sessions.ListForProject(ctx, projectID)
}

// SetStatus applies the pure transition decision first and only then
// dispatches terminal-entry side effects, so each piece is testable on its
// own. Ended sessions ignore all further changes by design: re-ending a
// session must not re-run summarization.
func (s *sessionService) SetStatus(ctx context.Context, sessionID int64, status domain.SessionStatus) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if status == sess.Status {
		return nil
	}
	if sess.Status.IsTerminal() {
		s.logger.Debug("ignoring status change on ended session", "session_id", sessionID, "requested", status)
		return nil
	}
	if !domain.CanTransition(sess.Status, status) {
		return fmt.Errorf("%w: %q to %q", domain.ErrInvalidTransition, sess.Status, status)
	}

	if err := s.sessions.UpdateStatus(ctx, sessionID, status); err != nil {
		return err
	}
	s.logger.Info("session status changed", "session_id", sessionID, "from", sess.Status, "to", status)

	if !status.IsTerminal() {
		return nil
	}

	// Terminal entry: goal generation first (kickoff only, fed by whatever
	// summary exists at this point), then summarization, which itself ends
	// by refreshing the project aggregate.
	if sess.IsKickoff() {
		if err := s.GenerateGoals(ctx, sessionID); err != nil {
			return err
		}
	}
	return s.Summarize(ctx, sessionID)
}

func (s *sessionService) Summarize(ctx context.Context, sessionID int64) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	history, err := s.messages.ListForSession(ctx, sessionID)
	if err != nil {
		return err
	}
	prompts, err := s.promptCfg.Get(ctx)
	if err != nil {
		return err
	}
	paths, err := s.summaryFilePaths(ctx, sess)
	if err != nil {
		return err
	}

	prompt := prompts.SessionSummarization() + "\n\n" + assembler.RenderHistory(history)
	summary, err := s.gateway.Complete(ctx, s.asm.OneShot(prompt, paths, *prompts))
	if err != nil {
		return fmt.Errorf("summarizing session %d: %w", sessionID, err)
	}

	if err := s.sessions.UpdateSummary(ctx, sessionID, summary); err != nil {
		return err
	}
	s.logger.Info("session summarized", "session_id", sessionID, "project_id", sess.ProjectID)

	return s.AggregateProject(ctx, sess.ProjectID)
}

func (s *sessionService) GenerateGoals(ctx context.Context, sessionID int64) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(sess.Summary) == "" {
		return nil
	}
	prompts, err := s.promptCfg.Get(ctx)
	if err != nil {
		return err
	}

	prompt := prompts.Goals() + "\n\n" + sess.Summary
	goal, err := s.gateway.Complete(ctx, s.asm.OneShot(prompt, nil, *prompts))
	if err != nil {
		return fmt.Errorf("generating goals for project %d: %w", sess.ProjectID, err)
	}

	if err := s.projects.UpdateGoal(ctx, sess.ProjectID, goal); err != nil {
		return err
	}
	s.logger.Info("project goal generated", "project_id", sess.ProjectID, "session_id", sessionID)
	return nil
}

func (s *sessionService) AggregateProject(ctx context.Context, projectID int64) error {
	sessions, err := s.sessions.ListForProject(ctx, projectID)
	if err != nil {
		return err
	}

	var summaries []string
	for _, sess := range sessions {
		if strings.TrimSpace(sess.Summary) != "" {
			summaries = append(summaries, sess.Summary)
		}
	}
	if len(summaries) == 0 {
		return s.projects.UpdateAggregatedSummary(ctx, projectID, InsufficientDataSummary)
	}

	var b strings.Builder
	for i, summary := range summaries {
		fmt.Fprintf(&b, "Session %d:\n%s\n\n", i+1, summary)
	}

	prompts, err := s.promptCfg.Get(ctx)
	if err != nil {
		return err
	}
	prompt := prompts.ProjectSummarization() + "\n\n" + b.String()
	aggregated, err := s.gateway.Complete(ctx, s.asm.OneShot(prompt, nil, *prompts))
	if err != nil {
		return fmt.Errorf("aggregating project %d: %w", projectID, err)
	}

	if err := s.projects.UpdateAggregatedSummary(ctx, projectID, aggregated); err != nil {
		return err
	}
	s.logger.Info("project summary aggregated", "project_id", projectID, "sessions_with_summaries", len(summaries))
	return nil
}

// summaryFilePaths gathers the document paths carried into a session
// summarization call: the session's own files, then the project's.
func (s *sessionService) summaryFilePaths(ctx context.Context, sess *domain.Session) ([]string, error) {
	sessionFiles, err := s.files.ListForSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	projectFiles, err := s.files.ListForProject(ctx, sess.ProjectID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(sessionFiles)+len(projectFiles))
	for _, f := range sessionFiles {
		paths = append(paths, f.StoragePath)
	}
	for _, f := range projectFiles {
		paths = append(paths, f.StoragePath)
	}
	return paths, nil
}
