package fetch

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/logger"
)

const defaultRetryDelay = 500 * time.Millisecond

// requester runs page requests through the rate limiter with bounded retries.
type requester struct {
	limiter    *RateLimiter
	attempts   uint
	retryDelay time.Duration
	log        logger.Logger
}

func newRequester(limiter *RateLimiter, retries int, retryDelay time.Duration, log logger.Logger) requester {
	if retries < 0 {
		retries = 0
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	if log == nil {
		log = logger.NewNop()
	}
	return requester{
		limiter:    limiter,
		attempts:   uint(retries) + 1,
		retryDelay: retryDelay,
		log:        log,
	}
}

// do calls fn until it succeeds, returns a permanent error, or attempts run out.
func (r requester) do(ctx context.Context, pageURL string, fn func() (string, error)) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			if err := r.limiter.Wait(ctx); err != nil {
				return "", retry.Unrecoverable(err)
			}
			body, err := fn()
			var statusErr *StatusError
			if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
				r.limiter.RecordRateLimitError(statusErr.RetryAfter)
			}
			return body, err
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			r.log.Debug("fetch retry", zap.String("url", pageURL), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
}

// retryAfterSeconds parses a Retry-After header given in seconds.
func retryAfterSeconds(h http.Header) int {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
