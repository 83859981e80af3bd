// internal/app/system/normalize/normalize.go

// Package normalize holds input normalization applied before any comparison
// or storage. Normalized email is the uniqueness and lookup key for users.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases. Every email must pass
// through here before it is stored, compared, or queried.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Text trims surrounding whitespace, preserving case. Used for free-text
// fields like roles and society/event names, which are stored as given.
func Text(s string) string {
	return strings.TrimSpace(s)
}
