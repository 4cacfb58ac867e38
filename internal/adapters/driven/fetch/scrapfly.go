package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// Ensure ScrapflyFetcher implements the interface.
var _ driven.PageFetcher = (*ScrapflyFetcher)(nil)

// DefaultScrapflyURL is the Scrapfly scrape endpoint.
const DefaultScrapflyURL = "https://api.scrapfly.io/scrape"

// ScrapflyConfig configures a ScrapflyFetcher.
type ScrapflyConfig struct {
	APIKey  string
	BaseURL string

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	RateLimit RateLimitConfig
}

// ScrapflyFetcher retrieves rendered pages through the Scrapfly scraping API.
type ScrapflyFetcher struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	requests requester
	log      logger.Logger
}

// NewScrapflyFetcher creates a Scrapfly-backed page fetcher.
func NewScrapflyFetcher(cfg ScrapflyConfig, log logger.Logger) (*ScrapflyFetcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: scrapfly API key is required", domain.ErrFetcherUnavailable)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultScrapflyURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultFetchTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &ScrapflyFetcher{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: cfg.Timeout},
		requests: newRequester(NewRateLimiter(cfg.RateLimit), cfg.Retries, cfg.RetryDelay, log),
		log:      log,
	}, nil
}

// Fetch returns the page content Scrapfly rendered for pageURL.
func (f *ScrapflyFetcher) Fetch(ctx context.Context, pageURL string, opts driven.FetchOptions) (string, error) {
	return f.requests.do(ctx, pageURL, func() (string, error) {
		return f.scrape(ctx, pageURL, opts)
	})
}

func (f *ScrapflyFetcher) scrape(ctx context.Context, pageURL string, opts driven.FetchOptions) (string, error) {
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("url", pageURL)
	params.Set("asp", strconv.FormatBool(opts.BypassAntiBot))
	params.Set("render_js", strconv.FormatBool(opts.RenderJS))
	if opts.WaitForSelector != "" {
		params.Set("wait_for_selector", opts.WaitForSelector)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("scrape %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(body, "message").String(),
			RetryAfter: retryAfterSeconds(resp.Header),
		}
	}

	result := gjson.GetBytes(body, "result")
	if !result.Exists() {
		return "", fmt.Errorf("scrape %s: response has no result", pageURL)
	}

	if upstream := int(result.Get("status_code").Int()); upstream >= http.StatusBadRequest {
		return "", &StatusError{
			URL:        pageURL,
			StatusCode: upstream,
			Message:    result.Get("reason").String(),
		}
	}

	content := result.Get("content").String()
	f.log.Debug("page scraped",
		zap.String("url", pageURL),
		zap.Int("bytes", len(content)),
		zap.Bool("render_js", opts.RenderJS),
	)
	return content, nil
}
