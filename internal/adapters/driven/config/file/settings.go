package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// Environment variables read after the settings file.
const (
	EnvScrapflyAPIKey  = "SCRAPFLY_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvOllamaBaseURL   = "OLLAMA_BASE_URL"
)

// settingsFile mirrors domain.Settings in the on-disk TOML layout.
type settingsFile struct {
	SearchURL        string `toml:"search_url"`
	MaxOrganizations int    `toml:"max_organizations"`
	Output           string `toml:"output"`
	Concurrency      int    `toml:"concurrency"`
	MaxContactPages  int    `toml:"max_contact_pages"`
	MaxCorpusChars   int    `toml:"max_corpus_chars"`
	PromptDir        string `toml:"prompt_dir"`
	LogLevel         string `toml:"log_level"`

	Fetcher   fetcherSection   `toml:"fetcher"`
	LLM       llmSection       `toml:"llm"`
	Selectors selectorsSection `toml:"selectors"`
}

type fetcherSection struct {
	Provider          string  `toml:"provider"`
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	Retries           int     `toml:"retries"`
}

type llmSection struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	BaseURL     string  `toml:"base_url"`
	APIKey      string  `toml:"api_key"`
	Temperature float64 `toml:"temperature"`
}

type selectorsSection struct {
	ListingCard    string `toml:"listing_card"`
	ListingLink    string `toml:"listing_link"`
	ProfileHeading string `toml:"profile_heading"`
	ProfilePhone   string `toml:"profile_phone"`
	ProfileAddress string `toml:"profile_address"`
	ProfileWebsite string `toml:"profile_website"`
}

// SettingsLoader builds run settings from defaults, a TOML file and the environment.
// Later sources win: defaults, then the file, then environment variables (including
// any loaded from the .env file). Command-line flags are applied by the caller.
type SettingsLoader struct {
	path    string
	envFile string
}

// NewSettingsLoader creates a loader.
// If path is empty, defaults to ~/.staffscout/config.toml. If envFile is empty, .env
// in the working directory is used.
func NewSettingsLoader(path, envFile string) (*SettingsLoader, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, ".staffscout", "config.toml")
	}
	if envFile == "" {
		envFile = ".env"
	}
	return &SettingsLoader{path: path, envFile: envFile}, nil
}

// Path returns the settings file path.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Load returns the merged settings. A missing settings file or .env file is not an error.
func (l *SettingsLoader) Load() (*domain.Settings, error) {
	if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", l.envFile, err)
	}

	file := toFile(domain.DefaultSettings())

	data, err := os.ReadFile(l.path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, l.path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings %s: %w", l.path, err)
	}

	settings := file.toDomain()
	applyEnv(settings)
	return settings, nil
}

// WriteDefaults writes a settings file populated with defaults and reports
// whether it was created. An existing file is left untouched.
func (l *SettingsLoader) WriteDefaults() (bool, error) {
	if _, err := os.Stat(l.path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return false, fmt.Errorf("create settings directory: %w", err)
	}
	data, err := toml.Marshal(toFile(domain.DefaultSettings()))
	if err != nil {
		return false, fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0600); err != nil {
		return false, fmt.Errorf("write settings: %w", err)
	}
	return true, nil
}

// applyEnv overrides secrets and endpoints from the environment.
func applyEnv(s *domain.Settings) {
	if v := os.Getenv(EnvScrapflyAPIKey); v != "" {
		s.Fetcher.APIKey = v
	}

	switch s.LLM.Provider {
	case domain.AIProviderOpenAI:
		if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
			s.LLM.APIKey = v
		}
	case domain.AIProviderAnthropic:
		if v := os.Getenv(EnvAnthropicAPIKey); v != "" {
			s.LLM.APIKey = v
		}
	case domain.AIProviderOllama:
		if v := os.Getenv(EnvOllamaBaseURL); v != "" {
			s.LLM.BaseURL = v
		}
	}
}

func toFile(s *domain.Settings) settingsFile {
	return settingsFile{
		SearchURL:        s.SearchURL,
		MaxOrganizations: s.MaxOrganizations,
		Output:           s.Output,
		Concurrency:      s.Concurrency,
		MaxContactPages:  s.MaxContactPages,
		MaxCorpusChars:   s.MaxCorpusChars,
		PromptDir:        s.PromptDir,
		LogLevel:         s.LogLevel,
		Fetcher: fetcherSection{
			Provider:          string(s.Fetcher.Provider),
			APIKey:            s.Fetcher.APIKey,
			BaseURL:           s.Fetcher.BaseURL,
			RequestsPerSecond: s.Fetcher.RequestsPerSecond,
			Burst:             s.Fetcher.Burst,
			TimeoutSeconds:    int(s.Fetcher.Timeout / time.Second),
			Retries:           s.Fetcher.Retries,
		},
		LLM: llmSection{
			Provider:    string(s.LLM.Provider),
			Model:       s.LLM.Model,
			BaseURL:     s.LLM.BaseURL,
			APIKey:      s.LLM.APIKey,
			Temperature: s.LLM.Temperature,
		},
		Selectors: selectorsSection{
			ListingCard:    s.Selectors.ListingCard,
			ListingLink:    s.Selectors.ListingLink,
			ProfileHeading: s.Selectors.ProfileHeading,
			ProfilePhone:   s.Selectors.ProfilePhone,
			ProfileAddress: s.Selectors.ProfileAddress,
			ProfileWebsite: s.Selectors.ProfileWebsite,
		},
	}
}

func (f settingsFile) toDomain() *domain.Settings {
	return &domain.Settings{
		SearchURL:        f.SearchURL,
		MaxOrganizations: f.MaxOrganizations,
		Output:           f.Output,
		Concurrency:      f.Concurrency,
		MaxContactPages:  f.MaxContactPages,
		MaxCorpusChars:   f.MaxCorpusChars,
		PromptDir:        f.PromptDir,
		LogLevel:         f.LogLevel,
		Fetcher: domain.FetcherSettings{
			Provider:          domain.FetchProvider(f.Fetcher.Provider),
			APIKey:            f.Fetcher.APIKey,
			BaseURL:           f.Fetcher.BaseURL,
			RequestsPerSecond: f.Fetcher.RequestsPerSecond,
			Burst:             f.Fetcher.Burst,
			Timeout:           time.Duration(f.Fetcher.TimeoutSeconds) * time.Second,
			Retries:           f.Fetcher.Retries,
		},
		LLM: domain.LLMSettings{
			Provider:    domain.AIProvider(f.LLM.Provider),
			Model:       f.LLM.Model,
			BaseURL:     f.LLM.BaseURL,
			APIKey:      f.LLM.APIKey,
			Temperature: f.LLM.Temperature,
		},
		Selectors: domain.Selectors{
			ListingCard:    f.Selectors.ListingCard,
			ListingLink:    f.Selectors.ListingLink,
			ProfileHeading: f.Selectors.ProfileHeading,
			ProfilePhone:   f.Selectors.ProfilePhone,
			ProfileAddress: f.Selectors.ProfileAddress,
			ProfileWebsite: f.Selectors.ProfileWebsite,
		},
	}
}
