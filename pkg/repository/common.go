package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by KV backends when the key does not exist
var ErrNotFound = errors.New("key not found")

// errCritical is the repeater termination error matched by any criticalError
var errCritical = errors.New("critical error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

// Is makes criticalError match errCritical, so repeater stops on it
func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // identity check against the sentinel
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
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

// maskURL hides the password part of a store url, if any
func maskURL(u string) string {
	schemeEnd := strings.Index(u, "://")
	if schemeEnd < 0 {
		return u
	}
	rest := u[schemeEnd+3:]
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return u
	}
	userInfo := rest[:at]
	if colon := strings.Index(userInfo, ":"); colon >= 0 {
		userInfo = userInfo[:colon+1] + "****"
	} else {
		userInfo = "****"
	}
	return u[:schemeEnd+3] + userInfo + rest[at:]
}
