package fetch

import (
	"fmt"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// New creates the page fetcher selected by settings.
func New(settings domain.FetcherSettings, log logger.Logger) (driven.PageFetcher, error) {
	limits := RateLimitConfig{
		RequestsPerSecond: settings.RequestsPerSecond,
		BurstSize:         settings.Burst,
	}

	switch settings.Provider {
	case domain.FetchProviderScrapfly:
		f, err := NewScrapflyFetcher(ScrapflyConfig{
			APIKey:    settings.APIKey,
			BaseURL:   settings.BaseURL,
			Timeout:   settings.Timeout,
			Retries:   settings.Retries,
			RateLimit: limits,
		}, log)
		if err != nil {
			return nil, err
		}
		return f, nil
	case domain.FetchProviderDirect:
		return NewDirectFetcher(DirectConfig{
			Timeout:   settings.Timeout,
			Retries:   settings.Retries,
			RateLimit: limits,
		}, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown fetch provider %q", domain.ErrInvalidInput, settings.Provider)
	}
}
