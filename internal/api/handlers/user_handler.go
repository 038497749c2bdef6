package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	"github.com/welldanyogia/webrana-resource-api/internal/auth"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
)

// UserHandler handles signup and login
type UserHandler struct {
	auth     auth.Authenticator
	security *logger.SecurityLogger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authenticator auth.Authenticator, security *logger.SecurityLogger) *UserHandler {
	return &UserHandler{auth: authenticator, security: security}
}

// CredentialsRequest represents the request body for signup and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login
type TokenResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Signup handles POST /api/user/signup
func (h *UserHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	user, token, err := h.auth.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, TokenResponse{Email: user.Email, Token: token})
}

// Login handles POST /api/user/login
func (h *UserHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.IsUnauthorized(err) && h.security != nil {
			h.security.LoginFailure(c.RealIP(), req.Email)
		}
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, TokenResponse{Email: user.Email, Token: token})
}
