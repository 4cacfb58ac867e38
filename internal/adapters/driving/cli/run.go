package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

var (
	runMax         int
	runOutput      string
	runConcurrency int
	runCheck       bool
)

var runCmd = &cobra.Command{
	Use:   "run [search-url]",
	Short: "Discover contacts from a directory listing",
	Long: `Crawls the directory search page, resolves each school's profile, reads the
school's staff and contact pages and extracts leadership contacts.

Only a directory listing failure aborts the run. Schools whose profile, website
or extraction fails are counted in the summary and skipped.

The output target's extension selects the format: .xlsx writes a workbook,
anything else writes CSV.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiscovery,
}

func init() {
	runCmd.Flags().IntVarP(&runMax, "max", "n", domain.DefaultMaxOrganizations, "maximum number of organizations to process")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output file (default output/contacts-<timestamp>.csv)")
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", domain.DefaultConcurrency, "organizations processed at once")
	runCmd.Flags().BoolVar(&runCheck, "check", false, "ping the LLM provider before crawling")
	rootCmd.AddCommand(runCmd)
}

func runDiscovery(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	applyRunFlags(cmd, args, settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	log := newLogger(settings, cmd.ErrOrStderr())
	defer log.Sync() //nolint:errcheck

	if runCheck {
		if err := builder.CheckLLM(ctx, settings); err != nil {
			return fmt.Errorf("LLM check failed: %w", err)
		}
		cmd.Printf("LLM provider %s reachable.\n", settings.LLM.Provider.Description())
	}

	discovery, err := builder.Discovery(settings, log)
	if err != nil {
		return err
	}

	report, err := discovery.Run(ctx, domain.RunOptions{
		SearchURL:        settings.SearchURL,
		MaxOrganizations: settings.MaxOrganizations,
		Concurrency:      settings.Concurrency,
	})
	if report != nil {
		cmd.Println(renderSummary(report))
	}
	if err != nil {
		if errors.Is(err, domain.ErrListingRetrieval) {
			return fmt.Errorf("run aborted: %w", err)
		}
		return err
	}
	return nil
}

// applyRunFlags layers explicitly set flags over loaded settings.
func applyRunFlags(cmd *cobra.Command, args []string, settings *domain.Settings) {
	if len(args) > 0 {
		settings.SearchURL = args[0]
	}
	if cmd.Flags().Changed("max") {
		settings.MaxOrganizations = runMax
	}
	if cmd.Flags().Changed("concurrency") {
		settings.Concurrency = runConcurrency
	}
	if cmd.Flags().Changed("output") {
		settings.Output = runOutput
	}
	if settings.Output == "" {
		settings.Output = domain.DefaultOutput(time.Now())
	}
}
