package storage

import (
	"context"

	"notesvc/internal/models"
)

// UserStorage defines the credential store contract.
// Users are created once at registration and never mutated or deleted.
type UserStorage interface {
	// CreateUser creates a new user.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
