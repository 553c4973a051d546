package repository

import (
	"errors"
	"strings"
)

// errCritical marks errors the repeater must not retry
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, errCritical) match, which is how the repeater recognizes it
func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
