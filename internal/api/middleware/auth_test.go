package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/tests/mocks"
)

var testUser = &models.User{ID: "11111111-1111-1111-1111-111111111111", Email: "mattiv@matti.fi"}

func protectedEcho(mw echo.MiddlewareFunc, called *bool) *echo.Echo {
	e := echo.New()
	e.GET("/favorites", func(c echo.Context) error {
		*called = true
		user, ok := CurrentUser(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no user")
		}
		return c.String(http.StatusOK, user.ID)
	}, mw)
	return e
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	var buf bytes.Buffer
	security := logger.NewSecurityLoggerWithHandler(slog.NewJSONHandler(&buf, nil))
	var called bool
	e := protectedEcho(BearerAuth(verifier, security), &called)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeUnauthorized)
	assert.False(t, called)
	assert.Contains(t, buf.String(), "missing_header")
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	var called bool
	e := protectedEcho(BearerAuth(verifier, nil), &called)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "token"} {
		req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
	assert.False(t, called)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	verifier.On("Verify", mock.Anything, "bad").Return(nil, apperrors.ErrUnauthorized)
	var called bool
	e := protectedEcho(BearerAuth(verifier, nil), &called)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	verifier.AssertExpectations(t)
}

func TestBearerAuth_ValidTokenVariants(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	verifier.On("Verify", mock.Anything, "good").Return(testUser, nil)
	var called bool
	e := protectedEcho(BearerAuth(verifier, nil), &called)

	for _, header := range []string{"Bearer good", "bearer good", "Bearer token=good"} {
		req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, header)
		assert.Equal(t, testUser.ID, rec.Body.String())
	}
	assert.True(t, called)
}

func TestBearerAuth_StoreUnavailable(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	verifier.On("Verify", mock.Anything, "good").
		Return(nil, errors.Join(apperrors.ErrDependencyUnavailable, context.DeadlineExceeded))
	var called bool
	e := protectedEcho(BearerAuth(verifier, nil), &called)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, called)
}

func TestBearerAuth_QueryToken(t *testing.T) {
	verifier := new(mocks.MockAuthenticator)
	verifier.On("Verify", mock.Anything, "good").Return(testUser, nil)

	var called bool
	withQuery := protectedEcho(BearerAuthWithConfig(BearerAuthConfig{Verifier: verifier, AllowQueryToken: true}), &called)
	req := httptest.NewRequest(http.MethodGet, "/favorites?token=good", nil)
	rec := httptest.NewRecorder()
	withQuery.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	called = false
	headerOnly := protectedEcho(BearerAuth(verifier, nil), &called)
	req = httptest.NewRequest(http.MethodGet, "/favorites?token=good", nil)
	rec = httptest.NewRecorder()
	headerOnly.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestCurrentUser_Absent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	SetUser(c, testUser)
	user, ok := CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, testUser.ID, user.ID)
}
