// internal/app/system/timeouts/timeouts.go

// Package timeouts provides the timeout values handlers use with
// context.WithTimeout around store calls.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes
//   - Medium: full-collection scans (lists, the login fallback scan)
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for point lookups and single inserts.
func Short() time.Duration { return short }

// Medium returns the timeout for collection scans.
func Medium() time.Duration { return medium }
