package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
)

// CodeRateLimited is sent when a client exceeds its request budget.
const CodeRateLimited = "RATE_LIMITED"

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// Resource is a single resource object in a document.
type Resource struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Attributes interface{} `json:"attributes"`
}

// Document is the top-level envelope for resource responses.
type Document struct {
	Data interface{} `json:"data"`
}

// One writes a document holding a single resource
func One(c echo.Context, status int, res Resource) error {
	return c.JSON(status, Document{Data: res})
}

// Many writes a document holding a list of resources. A nil list is sent as [].
func Many(c echo.Context, status int, res []Resource) error {
	if res == nil {
		res = []Resource{}
	}
	return c.JSON(status, Document{Data: res})
}

// JSON writes v without an envelope
func JSON(c echo.Context, status int, v interface{}) error {
	return c.JSON(status, v)
}

// Created returns a 201 Created response with a bare body
func Created(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusCreated, v)
}

// Status returns an empty response with the given status
func Status(c echo.Context, status int) error {
	return c.NoContent(status)
}

// Error returns an error response with appropriate status code.
// Only the public message of err is sent to the client.
func Error(c echo.Context, err error) error {
	code := apperrors.GetErrorCode(err)
	status := getHTTPStatus(code)

	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   apperrors.PublicMessage(err),
		Code:    code,
	})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    apperrors.CodeInvalidInput,
	})
}

// Unauthorized returns a 401 Unauthorized response
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    apperrors.CodeUnauthorized,
	})
}

// NotFound returns a 404 Not Found response
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    apperrors.CodeNotFound,
	})
}

// TooManyRequests returns a 429 response
func TooManyRequests(c echo.Context, retryAfter string) error {
	c.Response().Header().Set("Retry-After", retryAfter)
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success: false,
		Error:   "rate limit exceeded",
		Code:    CodeRateLimited,
	})
}

// getHTTPStatus maps error codes to HTTP status codes
func getHTTPStatus(code string) int {
	switch code {
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeDuplicateEntry:
		return http.StatusConflict
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.CodeForbidden:
		return http.StatusForbidden
	case apperrors.CodeDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
