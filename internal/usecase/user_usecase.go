// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user's identity and the issued token.
type LoginOutput struct {
	ID       int64
	Username string
	Token    string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user together with their monetary account.
	// Both records are created atomically: if either insert fails, neither persists.
	Register(ctx context.Context, input *RegisterInput) error
	// Login verifies the credentials and issues a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// GetBalance returns the current balance of the user's account.
	GetBalance(ctx context.Context, userID int64) (float64, error)
}
