// internal/app/system/credentials/credentials.go

// Package credentials abstracts how passwords are stored and checked.
//
// The platform historically ran two parallel route sets: one storing raw
// passwords, one delegating to an external identity provider. Here that is
// a single Scheme interface selected by the auth_scheme config key:
//
//   - "plaintext": stores and compares the password verbatim. This is the
//     default and matches the deployed behavior.
//   - "bcrypt": stores a bcrypt hash and rejects over-length passwords at
//     registration.
//
// Handlers never look at the password field directly; everything goes
// through the scheme.
package credentials

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the supplied password does not
// match the stored credential.
var ErrMismatch = errors.New("password mismatch")

// Scheme encodes passwords for storage and verifies supplied passwords
// against stored credentials.
type Scheme interface {
	// Name is the config value that selects this scheme.
	Name() string
	// Create turns a raw password into its stored form. A scheme may reject
	// passwords it cannot encode.
	Create(password string) (string, error)
	// Verify checks supplied against the stored form. Returns ErrMismatch
	// on a failed match; other errors indicate an unusable stored value.
	Verify(stored, supplied string) error
}

// ForName returns the scheme registered under name.
func ForName(name string) (Scheme, error) {
	switch name {
	case "plaintext", "":
		return Plaintext{}, nil
	case "bcrypt":
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown auth scheme %q", name)
	}
}

// Plaintext stores passwords verbatim and compares them as strings.
type Plaintext struct{}

func (Plaintext) Name() string { return "plaintext" }

func (Plaintext) Create(password string) (string, error) {
	return password, nil
}

func (Plaintext) Verify(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrMismatch
	}
	return nil
}

// Bcrypt stores bcrypt hashes.
type Bcrypt struct {
	Cost int
}

func (Bcrypt) Name() string { return "bcrypt" }

func (b Bcrypt) Create(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Verify(stored, supplied string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
