package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/campushub/campushub/internal/app/system/apperr"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.New(apperr.Validation, "missing email"), http.StatusBadRequest},
		{"conflict", apperr.New(apperr.Conflict, "already exists"), http.StatusBadRequest},
		{"not found", apperr.New(apperr.NotFound, "user not found"), http.StatusNotFound},
		{"auth", apperr.New(apperr.Auth, "invalid password"), http.StatusUnauthorized},
		{"internal", apperr.New(apperr.Internal, "corrupted record"), http.StatusInternalServerError},
		{"unclassified", errors.New("driver exploded"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("register: %w", apperr.New(apperr.Conflict, "already exists")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := apperr.Message(apperr.New(apperr.Validation, "missing email")); got != "missing email" {
		t.Errorf("Message() = %q, want %q", got, "missing email")
	}

	// Unclassified errors must not leak internal detail.
	if got := apperr.Message(errors.New("dial tcp 10.0.0.5:27017: connection refused")); got != "internal server error" {
		t.Errorf("Message() leaked internal detail: %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("login: %w", apperr.New(apperr.NotFound, "user not found"))
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Error("expected IsKind to match wrapped NotFound")
	}
	if apperr.IsKind(err, apperr.Auth) {
		t.Error("IsKind matched the wrong kind")
	}
	if apperr.IsKind(errors.New("plain"), apperr.Internal) {
		t.Error("IsKind matched a plain error")
	}
}
