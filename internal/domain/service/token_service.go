package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the identity fields embedded in a session token.
type Claims struct {
	UserID   int64
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed, time-limited token carrying the user's
	// identity claims.
	Generate(userID int64, username string) (string, error)

	// ValidateToken checks the validity of a raw token string.
	ValidateToken(tokenString string) (*Claims, error)

	// ValidateAuthorizationHeader parses an Authorization header of the form
	// "Bearer <token>" and validates the token. A missing, malformed, or
	// expired header always fails with the same unauthorized error value.
	ValidateAuthorizationHeader(header string) (*Claims, error)
}
