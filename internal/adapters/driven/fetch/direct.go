package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// Ensure DirectFetcher implements the interface.
var _ driven.PageFetcher = (*DirectFetcher)(nil)

const (
	defaultUserAgent = "Mozilla/5.0 (compatible; staffscout/1.0)"

	// maxBodyBytes caps how much of a single page is read.
	maxBodyBytes = 10 << 20
)

// DirectConfig configures a DirectFetcher.
type DirectConfig struct {
	UserAgent string

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	RateLimit RateLimitConfig
}

// DirectFetcher issues plain HTTP GETs. Rendering and anti-bot options are ignored.
type DirectFetcher struct {
	client    *http.Client
	userAgent string
	requests  requester
	log       logger.Logger
}

// NewDirectFetcher creates a direct HTTP page fetcher.
func NewDirectFetcher(cfg DirectConfig, log logger.Logger) *DirectFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultFetchTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &DirectFetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		requests:  newRequester(NewRateLimiter(cfg.RateLimit), cfg.Retries, cfg.RetryDelay, log),
		log:       log,
	}
}

// Fetch returns the raw body of pageURL.
func (f *DirectFetcher) Fetch(ctx context.Context, pageURL string, _ driven.FetchOptions) (string, error) {
	return f.requests.do(ctx, pageURL, func() (string, error) {
		return f.get(ctx, pageURL)
	})
}

func (f *DirectFetcher) get(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfterSeconds(resp.Header),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}

	f.log.Debug("page fetched", zap.String("url", pageURL), zap.Int("bytes", len(body)))
	return string(body), nil
}
