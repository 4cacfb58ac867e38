package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Defaults applied when settings leave a value unset.
const (
	DefaultMaxOrganizations = 10
	DefaultConcurrency      = 1
	DefaultMaxContactPages  = 8
	DefaultMaxCorpusChars   = 25000
	DefaultLLMModel         = "gpt-4o"
	DefaultLLMTemperature   = 0.1
	DefaultFetchTimeout     = 150 * time.Second
	DefaultFetchRetries     = 3
	DefaultRequestsPerSec   = 2.0
	DefaultBurst            = 2
	DefaultSearchURL        = "https://www.niche.com/k12/search/best-schools/?geoip=true"
)

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if the provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// FetchProvider identifies how pages are retrieved.
type FetchProvider string

// Available fetch providers.
const (
	// FetchProviderScrapfly renders pages through the Scrapfly scraping API.
	FetchProviderScrapfly FetchProvider = "scrapfly"

	// FetchProviderDirect issues plain HTTP requests without rendering.
	FetchProviderDirect FetchProvider = "direct"
)

// IsValid returns true if the provider is recognised.
func (p FetchProvider) IsValid() bool {
	return p == FetchProviderScrapfly || p == FetchProviderDirect
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint override.
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string

	// Temperature is the sampling temperature used for extraction.
	Temperature float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// FetcherSettings holds page retrieval configuration.
type FetcherSettings struct {
	Provider FetchProvider
	APIKey   string
	BaseURL  string

	// RequestsPerSecond and Burst bound the outbound request rate.
	RequestsPerSecond float64
	Burst             int

	Timeout time.Duration
	Retries int
}

// Selectors are the CSS selectors used to read the directory site.
type Selectors struct {
	ListingCard    string
	ListingLink    string
	ProfileHeading string
	ProfilePhone   string
	ProfileAddress string
	ProfileWebsite string
}

// DefaultSelectors returns the selectors for the Niche K-12 directory.
func DefaultSelectors() Selectors {
	return Selectors{
		ListingCard:    ".card.search-result",
		ListingLink:    "a.search-result__link",
		ProfileHeading: "h1.MuiTypography-root",
		ProfilePhone:   "a.profile__telephone__link",
		ProfileAddress: "address.profile__address--compact",
		ProfileWebsite: "a.profile__website__link",
	}
}

// Settings is the complete run configuration.
type Settings struct {
	// SearchURL is the directory search page to start from.
	SearchURL string

	// MaxOrganizations truncates the discovered directory entries.
	MaxOrganizations int

	// Output is the output target; a ".xlsx" suffix selects a workbook.
	Output string

	// Concurrency is the number of organizations processed at once. 1 is strictly sequential.
	Concurrency int

	// MaxContactPages caps contact-page candidates per website.
	MaxContactPages int

	// MaxCorpusChars caps the reduced corpus sent for extraction.
	MaxCorpusChars int

	// PromptDir overrides where prompt templates are read from.
	PromptDir string

	LogLevel string

	Fetcher   FetcherSettings
	LLM       LLMSettings
	Selectors Selectors
}

// DefaultSettings returns settings populated with defaults.
func DefaultSettings() *Settings {
	return &Settings{
		SearchURL:        DefaultSearchURL,
		MaxOrganizations: DefaultMaxOrganizations,
		Concurrency:      DefaultConcurrency,
		MaxContactPages:  DefaultMaxContactPages,
		MaxCorpusChars:   DefaultMaxCorpusChars,
		LogLevel:         "info",
		Fetcher: FetcherSettings{
			Provider:          FetchProviderScrapfly,
			RequestsPerSecond: DefaultRequestsPerSec,
			Burst:             DefaultBurst,
			Timeout:           DefaultFetchTimeout,
			Retries:           DefaultFetchRetries,
		},
		LLM: LLMSettings{
			Provider:    AIProviderOpenAI,
			Model:       DefaultLLMModel,
			Temperature: DefaultLLMTemperature,
		},
		Selectors: DefaultSelectors(),
	}
}

// DefaultOutput returns the default output target for a run started at t.
func DefaultOutput(t time.Time) string {
	return fmt.Sprintf("output/contacts-%d.csv", t.UnixMilli())
}

// Validate checks the settings needed to start a run.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.SearchURL) == "" {
		return fmt.Errorf("%w: search URL is required", ErrInvalidInput)
	}
	if s.MaxOrganizations < 1 {
		return fmt.Errorf("%w: max organizations must be at least 1", ErrInvalidInput)
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrInvalidInput)
	}
	if s.MaxContactPages < 0 {
		return fmt.Errorf("%w: max contact pages cannot be negative", ErrInvalidInput)
	}
	if s.MaxCorpusChars < 1 {
		return fmt.Errorf("%w: max corpus characters must be at least 1", ErrInvalidInput)
	}
	if !s.Fetcher.Provider.IsValid() {
		return fmt.Errorf("%w: unknown fetch provider %q", ErrInvalidInput, s.Fetcher.Provider)
	}
	if s.Fetcher.Provider == FetchProviderScrapfly && s.Fetcher.APIKey == "" {
		return fmt.Errorf("%w: scrapfly API key is required", ErrFetcherUnavailable)
	}
	if !s.LLM.Provider.IsValid() {
		return fmt.Errorf("%w: unknown LLM provider %q", ErrInvalidInput, s.LLM.Provider)
	}
	if !s.LLM.IsConfigured() {
		return fmt.Errorf("%w: %s API key is required", ErrLLMUnavailable, s.LLM.Provider)
	}
	return nil
}
