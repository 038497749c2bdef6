// Package middleware provides HTTP middleware for the resource API.
package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	"github.com/welldanyogia/webrana-resource-api/internal/auth"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
)

const userContextKey = "auth.user"

// TokenVerifier resolves a bearer token to an account.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// BearerAuthConfig configures BearerAuthWithConfig.
type BearerAuthConfig struct {
	Verifier TokenVerifier
	Security *logger.SecurityLogger
	// AllowQueryToken also reads the token from ?token= when the header is
	// absent. Browsers cannot set headers on websocket upgrades.
	AllowQueryToken bool
}

// BearerAuth rejects requests without a valid bearer token before the
// handler runs, and stores the verified account on the context.
func BearerAuth(verifier TokenVerifier, security *logger.SecurityLogger) echo.MiddlewareFunc {
	return BearerAuthWithConfig(BearerAuthConfig{Verifier: verifier, Security: security})
}

// BearerAuthWithConfig returns BearerAuth middleware with custom config.
func BearerAuthWithConfig(cfg BearerAuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			var token string
			switch {
			case header != "":
				parsed, err := auth.ParseAuthorization(header)
				if err != nil {
					return reject(c, cfg.Security, "malformed_header")
				}
				token = parsed
			case cfg.AllowQueryToken && c.QueryParam("token") != "":
				token = c.QueryParam("token")
			default:
				return reject(c, cfg.Security, "missing_header")
			}

			user, err := cfg.Verifier.Verify(c.Request().Context(), token)
			if err != nil {
				if apperrors.IsDependencyUnavailable(err) {
					return response.Error(c, err)
				}
				return reject(c, cfg.Security, "invalid_token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func reject(c echo.Context, security *logger.SecurityLogger, reason string) error {
	if security != nil {
		security.AuthFailure(c.RealIP(), c.Request().URL.Path, reason)
	}
	return response.Unauthorized(c, "authentication required")
}

// CurrentUser returns the account stored by BearerAuth.
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(userContextKey).(*models.User)
	return user, ok && user != nil
}

// SetUser stores user on c. Handler tests use it in place of BearerAuth.
func SetUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}
