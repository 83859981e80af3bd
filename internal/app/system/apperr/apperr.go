// internal/app/system/apperr/apperr.go

// Package apperr defines the service-wide error taxonomy and its mapping to
// HTTP status codes.
//
// Handlers classify failures into one of five kinds and hand the error to
// httpjson.WriteError, which picks the status from the kind. Anything that
// is not an *apperr.Error is treated as an internal failure: the raw cause
// is logged server-side and only a generic message reaches the client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// Validation covers missing/malformed required fields and the
	// disallowed-email-domain check on login.
	Validation Kind = iota + 1
	// Conflict covers duplicate email at registration. It reports as 400,
	// not 409: the registration endpoint's contract pins all client
	// failures to 400.
	Conflict
	// NotFound covers login against an unknown email.
	NotFound
	// Auth covers a password mismatch for an existing user.
	Auth
	// Internal covers corrupted stored data and store failures.
	Internal
)

// Error is a classified, client-presentable error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Status returns the HTTP status for err. Errors outside the taxonomy map
// to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Auth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Errors outside the
// taxonomy get a generic message so internal detail never leaks.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
