package repositories

import (
	"context"

	"picstash/internal/domain/models"
)

// UserRepository defines data access operations for user records
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrConflict if the
	// username is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername retrieves a user by exact username.
	// Returns domain.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
