package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/service"
	mockSvc "wallet/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	authMw := NewAuthMiddleware(tokenSvc)
	errorMw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.HTTPErrorHandler = errorMw.HandleHTTPError
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"userID":   c.Get(KeyUserID),
			"username": c.Get(KeyUsername),
		})
	}, authMw.Authenticate)

	return e, tokenSvc
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().
		ValidateAuthorizationHeader("Bearer good.token").
		Return(&service.Claims{UserID: 7, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good.token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":7`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().
		ValidateAuthorizationHeader("Bearer bad.token").
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad.token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().
		ValidateAuthorizationHeader("").
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("authorization header missing"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
