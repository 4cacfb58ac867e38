// Command staffscout discovers school leadership contacts from a directory listing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/custodia-labs/staffscout/internal/adapters/driven/ai"
	"github.com/custodia-labs/staffscout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/staffscout/internal/adapters/driven/export"
	"github.com/custodia-labs/staffscout/internal/adapters/driven/fetch"
	"github.com/custodia-labs/staffscout/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/staffscout/internal/adapters/driving/cli"
	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
	"github.com/custodia-labs/staffscout/internal/core/services"
	"github.com/custodia-labs/staffscout/internal/logger"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	cli.SetVersion(version)
	cli.SetServices(services.NewTitleService(), a)

	err := cli.Execute(ctx)
	a.close()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app wires adapters into core services. It implements cli.Builder.
type app struct {
	mu      sync.Mutex
	closers []func() error
	prompts []*file.PromptStore
}

func (a *app) LoadSettings(configPath, envFile string) (*domain.Settings, error) {
	loader, err := file.NewSettingsLoader(configPath, envFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (a *app) Discovery(settings *domain.Settings, log logger.Logger) (driving.DiscoveryService, error) {
	fetcher, err := fetch.New(settings.Fetcher, log)
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}

	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		return nil, fmt.Errorf("create LLM service: %w", err)
	}
	a.onClose(llm.Close)

	prompts, err := file.NewPromptStore(settings.PromptDir, ai.DefaultPrompts())
	if err != nil {
		return nil, fmt.Errorf("create prompt store: %w", err)
	}
	a.mu.Lock()
	a.prompts = append(a.prompts, prompts)
	a.mu.Unlock()
	extractor := ai.NewLLMExtractor(llm, prompts, settings.LLM.Temperature)

	var sink driven.ContactSink
	if settings.Output != "" {
		sink = export.New(settings.Output)
	}

	newStore := func() driven.ContactStore { return memory.NewContactStore() }

	return services.NewDiscoveryService(
		services.NewListingCrawler(fetcher, settings.Selectors, log),
		services.NewProfileResolver(fetcher, settings.Selectors, log),
		services.NewSiteCrawler(fetcher, settings.MaxContactPages, log),
		services.NewExtractionService(extractor, settings.MaxCorpusChars, log),
		newStore,
		sink,
		log,
	), nil
}

func (a *app) CheckLLM(ctx context.Context, settings *domain.Settings) error {
	llm, err := ai.CreateAndValidateLLMService(ctx, &settings.LLM)
	if err != nil {
		return err
	}
	return llm.Close()
}

func (a *app) InitConfig(configPath string) (string, bool, error) {
	loader, err := file.NewSettingsLoader(configPath, "")
	if err != nil {
		return "", false, err
	}
	created, err := loader.WriteDefaults()
	return loader.Path(), created, err
}

func (a *app) ReloadPrompts() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.prompts {
		p.Reload()
	}
}

func (a *app) onClose(fn func() error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, fn)
}

func (a *app) close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, fn := range a.closers {
		_ = fn()
	}
	a.closers = nil
}
