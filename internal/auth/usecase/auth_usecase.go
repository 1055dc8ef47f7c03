package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	authdomain "dietdiary-backend/internal/auth/domain"
	authdto "dietdiary-backend/internal/auth/dto"
	"dietdiary-backend/internal/auth/repository"
	"dietdiary-backend/pkg/apperror"
)

const (
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgMissingCredentials = "Please provide an email and password"
	MsgUserNotFound       = "User not found"
	MsgNotAuthorized      = "Not authorized to access this route"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens TokenIssuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResult, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperror.Validation("Please provide a name, email and password")
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.ErrDuplicateEmail, MsgUserExists)
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.New(apperror.ErrDuplicateEmail, MsgUserExists)
		}
		return nil, err
	}

	log.Printf("[Auth] Registered user %s", user.ID)
	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResult, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperror.Validation(MsgMissingCredentials)
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.New(apperror.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	return u.issue(user)
}

func (u *authUsecase) Me(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	return user, nil
}

func (u *authUsecase) ValidateToken(token string) (string, error) {
	userID, err := u.tokens.Verify(token)
	if err != nil {
		return "", apperror.Unauthenticated(MsgNotAuthorized)
	}
	return userID, nil
}

func (u *authUsecase) issue(user *authdomain.User) (*authdto.AuthResult, error) {
	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
