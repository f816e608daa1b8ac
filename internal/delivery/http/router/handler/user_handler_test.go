package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet/internal/delivery/http/middleware"
	mockUC "wallet/internal/mocks/usecase"
	"wallet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	uc := mockUC.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, logger), uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "Password123!"}).
		Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"username":"alice","password":"Password123!"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestUserHandler_Login(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "Password123!"}).
		Return(&usecase.LoginOutput{ID: 7, Username: "alice", Token: "signed.jwt.token"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"username":"alice","password":"Password123!"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestUserHandler_GetBalance(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().GetBalance(mock.Anything, int64(7)).Return(100.0, nil)

	c, rec := newJSONContext(http.MethodGet, "/user/balance", "")
	c.Set(middleware.KeyUserID, int64(7))
	c.Set(middleware.KeyUsername, "alice")

	err := h.GetBalance(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":100`)
}

func TestUserHandler_GetBalance_MissingIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	// No userID set on the context, as when the auth middleware never ran.
	c, rec := newJSONContext(http.MethodGet, "/user/balance", "")

	err := h.GetBalance(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"username":`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
