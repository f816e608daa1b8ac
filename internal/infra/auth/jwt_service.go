// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wallet/config"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/service"
	"wallet/internal/errors"
)

const bearerPrefix = "Bearer "

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Every validation failure collapses into the one unauthorized error value,
// so callers can never distinguish a missing header from a bad signature or
// an expired token.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// Generate creates a new signed session token carrying the user's identity claims.
func (s *jwtService) Generate(userID int64, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"username": username,
		"iat":      now.Unix(),            // Issued At
		"exp":      now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a raw token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("unexpected claims type")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("subject claim missing")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("subject claim malformed")
	}

	username, ok := mapClaims["username"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("username claim missing")
	}

	return &service.Claims{
		UserID:   userID,
		Username: username,
	}, nil
}

// ValidateAuthorizationHeader parses a "Bearer <token>" header and validates the token.
func (s *jwtService) ValidateAuthorizationHeader(header string) (*service.Claims, error) {
	if header == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("authorization header missing")
	}

	tokenString := strings.TrimPrefix(header, bearerPrefix)
	if tokenString == header || tokenString == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("authorization header malformed")
	}

	return s.ValidateToken(tokenString)
}
