// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"disaster_backend/internal/api"
	"disaster_backend/internal/feature/auth/domain/entity"
	"disaster_backend/internal/feature/auth/transport/http/dto"
	"disaster_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the identity operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given profile and password.
	Register(ctx context.Context, name, email, password, phone string) (*entity.User, error)
	// Login authenticates a user and returns the stored record on success.
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func userPayload(u *entity.User) api.UserPayload {
	return api.UserPayload{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// Signup handles the /api/signup endpoint.
// - 400 when a required field is missing or empty after trimming
// - 409 when the email is already registered
// - 500 on a persistence fault (details are logged, not returned)
// - 200 with the created user's public fields on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: "invalid request body"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		var missing *usecase.MissingFieldError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: missing.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Success: false, Message: "User already exists with this email address"})
		default:
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Success: false, Message: "internal server error"})
		}
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.UserResponse{
		Success: true,
		Message: "Registration successful!",
		User:    userPayload(user),
	})
}

// Login handles the /api/login endpoint.
// - 400 when email or password is missing
// - 401 with one generic message for both unknown email and wrong password
// - 200 with the user's public fields on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: "invalid request body"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var missing *usecase.MissingFieldError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: missing.Error()})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Success: false, Message: "Invalid email or password"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Success: false, Message: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.UserResponse{Success: true, User: userPayload(user)})
}
