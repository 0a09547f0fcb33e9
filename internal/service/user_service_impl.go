package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
)

type userService struct {
	users  repository.UserRepo
	tokens repository.TokenRepo
	logger *slog.Logger
}

func NewUserService(users repository.UserRepo, tokens repository.TokenRepo, logger *slog.Logger) UserService {
	return &userService{users: users, tokens: tokens, logger: logger}
}

// HashPassword returns the stored form of a credential.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *userService) Register(ctx context.Context, name, email, password string, role domain.UserRole, org string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, domain.ErrEmptyName
	}
	if role == "" {
		role = domain.RoleUser
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(password),
		Role:         role,
		Organization: org,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if subtle.ConstantTimeCompare([]byte(u.PasswordHash), []byte(HashPassword(password))) != 1 {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.tokens.Store(ctx, u.ID, token); err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", u.ID)
	return u, token, nil
}

func (s *userService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	return s.tokens.Resolve(ctx, token)
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.tokens.Remove(ctx, token)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
