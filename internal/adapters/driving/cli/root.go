// Package cli provides the staffscout command-line interface.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
	"github.com/custodia-labs/staffscout/internal/logger"
)

var version = "dev"

var (
	configPath string
	envFile    string
	verbose    bool
)

// Builder assembles run-time services once settings are known.
type Builder interface {
	// LoadSettings reads settings from the config file and the environment.
	LoadSettings(configPath, envFile string) (*domain.Settings, error)

	// Discovery builds the pipeline for the given settings. An empty
	// settings.Output means no sink is attached.
	Discovery(settings *domain.Settings, log logger.Logger) (driving.DiscoveryService, error)

	// CheckLLM pings the configured LLM provider.
	CheckLLM(ctx context.Context, settings *domain.Settings) error

	// InitConfig writes a default settings file unless one exists. It returns
	// the resolved path and whether the file was created.
	InitConfig(configPath string) (string, bool, error)

	// ReloadPrompts drops cached prompt templates so edits on disk apply to
	// the next extraction.
	ReloadPrompts()
}

var (
	titleService driving.TitleService
	builder      Builder
)

var rootCmd = &cobra.Command{
	Use:   "staffscout",
	Short: "Discover school leadership contacts from a directory listing",
	Long: `staffscout crawls a school directory listing, visits each school's website,
extracts leadership contacts and keeps those whose title matches the
controlled title vocabulary.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.staffscout/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with API keys (default .env)")
}

// SetServices injects the services used by commands.
func SetServices(titles driving.TitleService, b Builder) {
	titleService = titles
	builder = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadSettings() (*domain.Settings, error) {
	if builder == nil {
		return nil, errors.New("discovery not configured")
	}
	return builder.LoadSettings(configPath, envFile)
}

func newLogger(settings *domain.Settings, out io.Writer) logger.Logger {
	level := settings.LogLevel
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{
		Level:       level,
		Development: verbose,
		Output:      out,
	})
}
