package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Settings file commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Long: `Write a settings file populated with default values.

The file is written to --config, or ~/.staffscout/config.toml when unset.
An existing file is never overwritten. API keys are best kept in the
environment or a .env file rather than in the settings file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if builder == nil {
		return errors.New("discovery not configured")
	}

	path, created, err := builder.InitConfig(configPath)
	if err != nil {
		return err
	}

	if created {
		cmd.Printf("Wrote default settings to %s\n", path)
	} else {
		cmd.Printf("Settings file already exists at %s\n", path)
	}
	return nil
}
