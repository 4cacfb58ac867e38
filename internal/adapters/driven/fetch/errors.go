package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
)

// StatusError is returned when a page or API request completes with a non-success status.
type StatusError struct {
	URL        string
	StatusCode int

	// Message is the upstream error message, when one was provided.
	Message string

	// RetryAfter is the Retry-After header in seconds, or 0.
	RetryAfter int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

// Temporary reports whether the request may succeed if repeated.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// isRetryable reports whether err is worth another attempt.
// Status errors are retried only when temporary; other transport errors always are.
func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}
