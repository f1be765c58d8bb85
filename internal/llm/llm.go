// Package llm defines the text-generation collaborator and an
// OpenAI-compatible chat client for providers such as OpenRouter.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network I/O when the client has no
// credential to present.
var ErrMissingAPIKey = errors.New("llm: api key not configured")

// ErrorClass groups provider failures so callers can map them to their own
// surface (an HTTP handler to status codes, a CLI to exit messages).
type ErrorClass string

const (
	ClassAuth      ErrorClass = "auth"
	ClassRateLimit ErrorClass = "rate_limit"
	ClassTransport ErrorClass = "transport"
	ClassAPI       ErrorClass = "api"
)

// APIError is a classified provider failure.
type APIError struct {
	Class      ErrorClass
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm: %s error (status %d): %s", e.Class, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm: %s error: %s", e.Class, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Classify reports the error class of err, or ClassAPI when err is not an
// APIError. The second return is false for a nil error.
func Classify(err error) (ErrorClass, bool) {
	if err == nil {
		return "", false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Class, true
	}
	return ClassAPI, true
}

// Generator produces an assistant reply from a system instruction and a
// fully assembled user prompt. Implementations must not retry internally;
// backoff policy belongs to the caller, who knows the request's deadline.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
