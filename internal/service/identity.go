package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"picstash/internal/auth"
	"picstash/internal/domain"
	"picstash/internal/domain/models"
	"picstash/internal/domain/repositories"
)

// IdentityService handles registration and login
type IdentityService struct {
	users  repositories.UserRepository
	tokens *auth.Tokens
	logger *slog.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(users repositories.UserRepository, tokens *auth.Tokens, logger *slog.Logger) *IdentityService {
	return &IdentityService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Register creates a new user. The stored credential is a one-way hash;
// the raw password never touches the database.
func (s *IdentityService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Guard against duplicates at the application level; the unique index
	// catches the race.
	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q: %w", req.Username, domain.ErrConflict)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", domain.ErrUnauthorized
	}

	return s.tokens.IssueToken(user.ID)
}
