package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
	"github.com/custodia-labs/staffscout/internal/logger"
)

type mockTitleService struct {
	vocabulary []string
	matches    map[string]string
}

func (m *mockTitleService) Vocabulary() []string { return m.vocabulary }

func (m *mockTitleService) Standardise(raw string) (string, bool) {
	canonical, ok := m.matches[raw]
	return canonical, ok
}

type mockDiscoveryService struct {
	report *domain.RunReport
	err    error
	opts   []domain.RunOptions
}

func (m *mockDiscoveryService) Run(_ context.Context, opts domain.RunOptions) (*domain.RunReport, error) {
	m.opts = append(m.opts, opts)
	return m.report, m.err
}

type mockBuilder struct {
	settings     *domain.Settings
	loadErr      error
	discovery    *mockDiscoveryService
	discoveryErr error
	checkErr     error

	initCreated bool
	initErr     error

	checked       int
	reloads       int
	builtSettings *domain.Settings
	configPath    string
}

func (m *mockBuilder) LoadSettings(path, _ string) (*domain.Settings, error) {
	m.configPath = path
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	s := *m.settings
	return &s, nil
}

func (m *mockBuilder) Discovery(settings *domain.Settings, _ logger.Logger) (driving.DiscoveryService, error) {
	m.builtSettings = settings
	if m.discoveryErr != nil {
		return nil, m.discoveryErr
	}
	return m.discovery, nil
}

func (m *mockBuilder) CheckLLM(_ context.Context, _ *domain.Settings) error {
	m.checked++
	return m.checkErr
}

func (m *mockBuilder) InitConfig(path string) (string, bool, error) {
	m.configPath = path
	if m.initErr != nil {
		return "", false, m.initErr
	}
	if path == "" {
		path = "/home/test/.staffscout/config.toml"
	}
	return path, m.initCreated, nil
}

func (m *mockBuilder) ReloadPrompts() {
	m.reloads++
}

// validSettings returns settings that pass Validate.
func validSettings() *domain.Settings {
	s := domain.DefaultSettings()
	s.Fetcher.APIKey = "scrapfly-key"
	s.LLM.APIKey = "openai-key"
	return s
}

// setupTestServices installs mocks and returns a cleanup func restoring state.
func setupTestServices(b *mockBuilder) func() {
	oldTitles, oldBuilder := titleService, builder
	SetServices(&mockTitleService{
		vocabulary: []string{"Head of School", "Principal"},
		matches:    map[string]string{"Interim Head of Upper School": "Head of Upper School"},
	}, b)
	return func() {
		titleService, builder = oldTitles, oldBuilder
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout.
func execute(args ...string) (string, error) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}
