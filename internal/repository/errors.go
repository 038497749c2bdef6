package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"gorm.io/gorm"
)

// Common repository errors
var (
	ErrNotFound              = apperrors.ErrNotFound
	ErrDuplicateEntry        = apperrors.ErrDuplicateEntry
	ErrInvalidInput          = apperrors.ErrInvalidInput
	ErrDependencyUnavailable = apperrors.ErrDependencyUnavailable
)

// DefaultTimeout bounds a single store call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// isDuplicateKeyError checks if the error is a duplicate key violation
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "Duplicate entry") || // MySQL 1062
		strings.Contains(errStr, "23505") // PostgreSQL unique violation code
}

// isUnavailableError reports whether err means the store could not answer.
func isUnavailableError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}

// translate maps driver-level failures onto the shared error taxonomy.
// Not-found and duplicate handling stay with the caller because the
// message depends on the resource.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isUnavailableError(err) {
		return errors.Join(ErrDependencyUnavailable, err)
	}
	return err
}

// withTimeout derives the context for a single store call.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
