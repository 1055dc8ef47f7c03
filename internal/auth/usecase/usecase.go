package usecase

import (
	"context"

	authdomain "dietdiary-backend/internal/auth/domain"
	authdto "dietdiary-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a user and issues a token for it
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResult, error)

	// Login checks credentials and issues a token
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResult, error)

	// Me returns the user behind a verified token
	Me(ctx context.Context, userID string) (*authdomain.User, error)

	// ValidateToken verifies a bearer token and returns its user id
	ValidateToken(token string) (string, error)
}

// TokenIssuer is the part of the token service the usecase depends on
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
