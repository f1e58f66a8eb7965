// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Credentials live only for the duration of the call; they are never
// persisted or logged.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateAccountInput defines a partial profile update. A blank field means
// "leave unchanged"; a present password is re-hashed before storage.
type UpdateAccountInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the session token issued after a successful
// registration or login.
type TokenOutput struct {
	Token string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account and returns a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login authenticates an existing account and returns a fresh session token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Update applies a partial profile update to an existing account.
	Update(ctx context.Context, input *UpdateAccountInput) error

	// Get retrieves an account by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// GetByEmail retrieves an account by its login email.
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List retrieves all accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// Delete removes an account by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
