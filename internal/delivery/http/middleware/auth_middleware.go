package middleware

import (
	"wallet/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the authentication middleware for handlers to read.
const (
	KeyUserID   = "userID"
	KeyUsername = "username"
)

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the token's
// identity claims on the request context. All failures surface as the same
// unauthorized error, handled by the central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.tokenSvc.ValidateAuthorizationHeader(c.Request().Header.Get("Authorization"))
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUsername, claims.Username)

		return next(c)
	}
}
