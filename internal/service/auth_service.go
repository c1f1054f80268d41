package service

import (
	"context"
	"fmt"

	"authsvc/internal/auth"
	apperrors "authsvc/internal/errors"
	"authsvc/internal/model"
	"authsvc/internal/password"
	"authsvc/internal/repository"
)

// AuthService handles signup, credential verification, and session tokens.
type AuthService interface {
	SignUp(ctx context.Context, email, plaintext, fullName string) (*model.User, error)
	Authenticate(ctx context.Context, email, plaintext string) (*model.AuthUser, error)
	Login(ctx context.Context, email, plaintext string) (token string, user *model.AuthUser, err error)
	VerifyToken(tokenString string) (*model.AuthUser, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// SignUp creates a new user with a freshly hashed password. Duplicate emails
// surface as apperrors.ErrDuplicateEmail from the store's unique index.
func (s *authService) SignUp(ctx context.Context, email, plaintext, fullName string) (*model.User, error) {
	hashed, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashed,
		FullName:     fullName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks the credentials and returns the identity on success.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// caller cannot enumerate registered addresses.
func (s *authService) Authenticate(ctx context.Context, email, plaintext string) (*model.AuthUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user.AuthUser(), nil
}

// Login authenticates the credentials and mints a session token.
func (s *authService) Login(ctx context.Context, email, plaintext string) (string, *model.AuthUser, error) {
	user, err := s.Authenticate(ctx, email, plaintext)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.IssueToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// VerifyToken validates a presented session token and extracts the identity
// it carries. Every failure mode collapses into ErrTokenInvalid.
func (s *authService) VerifyToken(tokenString string) (*model.AuthUser, error) {
	claims, err := s.jwtService.VerifyToken(tokenString)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	return &model.AuthUser{
		ID:    claims.UserID,
		Email: claims.Email,
	}, nil
}
