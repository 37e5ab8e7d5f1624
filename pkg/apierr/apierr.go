// Package apierr defines the error taxonomy shared by the remote client
// and the synchronizer usecases: scheduling conflicts, generic network
// failures, and authentication failures.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// ReasonOverlap is the single user-facing reason attached to every
// scheduling conflict, whether detected locally or reported by the
// remote authority as a 409.
const ReasonOverlap = "appointment overlaps an existing booking"

// ConflictError signals a scheduling conflict. Never fatal: the caller
// recovers by choosing a different time.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflict builds a ConflictError with the standard overlap reason
func NewConflict() *ConflictError {
	return &ConflictError{Reason: ReasonOverlap}
}

// NetworkError is any non-2xx response other than 409/401, or a
// transport failure. Message carries the response body text when the
// authority provided one, otherwise the status text.
type NetworkError struct {
	StatusCode int
	Message    string
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// AuthError is a 401 from the authority. There is no automatic retry or
// re-login; the caller decides how to recover.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return http.StatusText(http.StatusUnauthorized)
	}
	return e.Message
}

// IsConflict reports whether err is, or wraps, a scheduling conflict
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsAuth reports whether err is, or wraps, an authentication failure
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// ConflictReason extracts the conflict reason, or "" when err is not one
func ConflictReason(err error) string {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return ""
}
