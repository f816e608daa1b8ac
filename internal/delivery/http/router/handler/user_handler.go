// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"wallet/internal/delivery/http/middleware"
	"wallet/internal/delivery/http/response"
	"wallet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the JSON payload for the registration endpoint.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginRequest is the JSON payload for the login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is returned after a successful login.
type loginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// balanceResponse is returned by the balance endpoint.
type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	input := &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// The password hash never leaves the service, so the body carries only a confirmation.
	return response.Success(c, http.StatusCreated, map[string]string{"username": req.Username}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	input := &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		ID:       output.ID,
		Username: output.Username,
		Token:    output.Token,
	}, "Login successful")
}

// GetBalance handles the request for the authenticated user's account balance.
func (h *UserHandler) GetBalance(c echo.Context) error {
	userIDVal := c.Get(middleware.KeyUserID)
	userID, ok := userIDVal.(int64)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user identity in token")
	}

	balance, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, balanceResponse{Balance: balance}, "Balance retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
