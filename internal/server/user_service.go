// Package server provides the HTTP REST API for the Linkup platform.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/1001franck/Linkup-sub000/internal/config"
	"github.com/1001franck/Linkup-sub000/internal/db"
)

// userStore is the account persistence surface the service depends on.
type userStore interface {
	CreateUser(ctx context.Context, email, passwordHash, role string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*db.User, error)
}

// UserService provides business logic for account authentication operations
type UserService struct {
	db             userStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store userStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account with password authentication.
// The password hash never leaves this package; db.User excludes it from
// serialization.
func (s *UserService) Register(ctx context.Context, email, password, role string) (*db.User, error) {
	if !db.ValidRole(role) {
		return nil, &ErrInvalidRole{Role: role}
	}

	existing, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.db.CreateUser(ctx, email, passwordHash, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates an account and returns the stored user.
func (s *UserService) Login(ctx context.Context, email, password string) (*db.User, error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Unknown email and wrong password produce the same generic error.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}
