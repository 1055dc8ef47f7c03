package repository

import (
	"context"
	"errors"

	authdomain "dietdiary-backend/internal/auth/domain"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create assigns an ID and creation time and stores the user
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail returns nil, nil when no user has that email
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)

	// FindByID returns nil, nil when the user does not exist
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
}
