package services

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
)

// UserSvcFacade defines operations on user accounts.
type UserSvcFacade interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies email/password credentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
