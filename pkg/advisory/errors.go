// Package advisory talks to the external generative advisory service: it
// builds the structured prompt around extracted ground truth, recovers JSON
// from whatever shape the model answers in, and rejects anything that does
// not conform to the candidate schema. Nothing untyped crosses this boundary.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an advisory transport failure. Each kind maps to one
// precise user-visible message.
type ErrorKind string

const (
	ErrAuth      ErrorKind = "auth"
	ErrRateLimit ErrorKind = "rate-limit"
	ErrTimeout   ErrorKind = "timeout"
	ErrNetwork   ErrorKind = "network"
)

// ServiceError is a classified failure at the advisory boundary. These are
// surfaced to the caller, never swallowed.
type ServiceError struct {
	Kind ErrorKind
	Err  error
}

func (e *ServiceError) Error() string {
	switch e.Kind {
	case ErrAuth:
		return fmt.Sprintf("advisory: invalid credentials: %v", e.Err)
	case ErrRateLimit:
		return fmt.Sprintf("advisory: rate limited, retry later: %v", e.Err)
	case ErrTimeout:
		return fmt.Sprintf("advisory: request timed out: %v", e.Err)
	default:
		return fmt.Sprintf("advisory: service unreachable: %v", e.Err)
	}
}

func (e *ServiceError) Unwrap() error { return e.Err }

// MalformedResponseError means no JSON recovery strategy could interpret the
// advisory output. Propagated as a typed failure.
type MalformedResponseError struct {
	// Snippet is a truncated view of the raw response for diagnostics.
	Snippet string
}

func (e *MalformedResponseError) Error() string {
	return "advisory: could not interpret advisory output"
}

// ClassifyError wraps an error from the underlying client into a
// ServiceError. Classification prefers context state over message sniffing.
func ClassifyError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return &ServiceError{Kind: ErrTimeout, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission") ||
		strings.Contains(msg, "api key"):
		return &ServiceError{Kind: ErrAuth, Err: err}
	case strings.Contains(msg, "429") || strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return &ServiceError{Kind: ErrRateLimit, Err: err}
	case strings.Contains(msg, "deadline") || strings.Contains(msg, "timeout"):
		return &ServiceError{Kind: ErrTimeout, Err: err}
	default:
		return &ServiceError{Kind: ErrNetwork, Err: err}
	}
}
