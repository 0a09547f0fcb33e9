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

type chatService struct {
	sessions  repository.SessionRepo
	messages  repository.MessageRepo
	files     repository.FileRepo
	promptCfg repository.PromptConfigRepo
	gateway   llm.Gateway
	asm       *assembler.Assembler
	logger    *slog.Logger
}

func NewChatService(
	sessions repository.SessionRepo,
	messages repository.MessageRepo,
	files repository.FileRepo,
	promptCfg repository.PromptConfigRepo,
	gateway llm.Gateway,
	asm *assembler.Assembler,
	logger *slog.Logger,
) ChatService {
	return &chatService{
		sessions:  sessions,
		messages:  messages,
		files:     files,
		promptCfg: promptCfg,
		gateway:   gateway,
		asm:       asm,
		logger:    logger,
	}
}

func (s *chatService) Send(ctx context.Context, sessionID int64, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyMessage
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	history, err := s.messages.ListForSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	prompts, err := s.promptCfg.Get(ctx)
	if err != nil {
		return "", err
	}
	paths, err := s.chatFilePaths(ctx, sess)
	if err != nil {
		return "", err
	}

	reply, err := s.gateway.Complete(ctx, s.asm.Chat(history, text, paths, *prompts))
	if err != nil {
		// Nothing has been persisted yet: a failed turn leaves the
		// conversation exactly as it was.
		return "", fmt.Errorf("chat turn in session %d: %w", sessionID, err)
	}

	userMsg := &domain.Message{SessionID: sessionID, Sender: domain.SenderUser, Content: text}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return "", err
	}
	assistantMsg := &domain.Message{SessionID: sessionID, Sender: domain.SenderAssistant, Content: reply}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return "", err
	}

	s.logger.Info("chat turn completed", "session_id", sessionID, "history_len", len(history))
	return reply, nil
}

func (s *chatService) SendAudio(ctx context.Context, sessionID int64, audio []byte) (string, error) {
	transcript, err := s.gateway.Transcribe(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("transcribing audio for session %d: %w", sessionID, err)
	}
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyAudio
	}
	return s.Send(ctx, sessionID, transcript)
}

func (s *chatService) History(ctx context.Context, sessionID int64) ([]*domain.Message, error) {
	return s.messages.ListForSession(ctx, sessionID)
}

// chatFilePaths gathers documents for an interactive turn: session files,
// then project files, then the admin-managed global pool.
func (s *chatService) chatFilePaths(ctx context.Context, sess *domain.Session) ([]string, error) {
	sessionFiles, err := s.files.ListForSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	projectFiles, err := s.files.ListForProject(ctx, sess.ProjectID)
	if err != nil {
		return nil, err
	}
	globalFiles, err := s.files.ListGlobal(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(sessionFiles)+len(projectFiles)+len(globalFiles))
	for _, f := range sessionFiles {
		paths = append(paths, f.StoragePath)
	}
	for _, f := range projectFiles {
		paths = append(paths, f.StoragePath)
	}
	for _, f := range globalFiles {
		paths = append(paths, f.StoragePath)
	}
	return paths, nil
}
