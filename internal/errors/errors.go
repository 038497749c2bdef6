package errors

import (
	"errors"
	"fmt"
)

// Domain-specific error types
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEntry indicates a unique constraint violation
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing, malformed or unknown credential
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates forbidden access
	ErrForbidden = errors.New("forbidden")

	// ErrDependencyUnavailable indicates the store or another backing service
	// did not answer in time or dropped the connection
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal server error")
)

// Error codes for API responses
const (
	CodeNotFound              = "NOT_FOUND"
	CodeDuplicateEntry        = "DUPLICATE_ENTRY"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// AppError represents an application error with a caller-safe message.
type AppError struct {
	Err     error
	Message string
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(err error, message string, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Code:    code,
	}
}

// Invalid returns a validation error whose message may be shown to the client.
func Invalid(format string, args ...any) *AppError {
	return NewAppError(ErrInvalidInput, fmt.Sprintf(format, args...), CodeInvalidInput)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateEntry checks if the error is a duplicate entry error
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnauthorized checks if the error is an authentication failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsDependencyUnavailable checks if the error came from an unreachable dependency
func IsDependencyUnavailable(err error) bool {
	return errors.Is(err, ErrDependencyUnavailable)
}

// GetErrorCode returns the appropriate error code for an error
func GetErrorCode(err error) string {
	switch {
	case IsUnauthorized(err):
		return CodeUnauthorized
	case IsNotFound(err):
		return CodeNotFound
	case IsDuplicateEntry(err):
		return CodeDuplicateEntry
	case IsInvalidInput(err):
		return CodeInvalidInput
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case IsDependencyUnavailable(err):
		return CodeDependencyUnavailable
	default:
		return CodeInternalError
	}
}

// PublicMessage returns the text that may be sent to a client for err.
// Only AppError messages are considered safe; everything else collapses to
// a generic message for its code.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	switch GetErrorCode(err) {
	case CodeUnauthorized:
		return "authentication required"
	case CodeNotFound:
		return ErrNotFound.Error()
	case CodeDuplicateEntry:
		return "already exists"
	case CodeInvalidInput:
		return ErrInvalidInput.Error()
	case CodeForbidden:
		return ErrForbidden.Error()
	case CodeDependencyUnavailable:
		return "service temporarily unavailable"
	default:
		return ErrInternal.Error()
	}
}
