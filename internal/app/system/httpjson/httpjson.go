// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON boundary helpers shared by every handler:
// request decoding and the success/error response envelopes.
//
// Failure bodies are always {"error": "<message>"} with the status picked by
// the apperr taxonomy, so the frontend can treat every endpoint uniformly.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/campushub/campushub/internal/app/system/apperr"
)

// Decode reads the request body into dst. A missing or malformed body is a
// validation failure, not an internal one.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.New(apperr.Validation, "request body required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.Validation, "request body required")
		}
		return apperr.New(apperr.Validation, "invalid JSON body")
	}
	return nil
}

// Write encodes v as the response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the {"error": …} envelope for err using the apperr
// status and message mapping.
func WriteError(w http.ResponseWriter, err error) {
	Write(w, apperr.Status(err), map[string]string{"error": apperr.Message(err)})
}
