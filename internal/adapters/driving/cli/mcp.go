package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/adapters/driving/mcp"
	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC. Use --port to
start an HTTP server instead.

Tools:
  standardise_title  - match a raw job title against the vocabulary
  discover_contacts  - run discovery and return the collected contacts

discover_contacts is only available when the fetcher and LLM provider are
configured; title matching always works.

Examples:
  staffscout mcp serve
  staffscout mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if titleService == nil {
		return errors.New("title service not configured")
	}

	ports := &mcp.Ports{Titles: titleService}

	settings, loadErr := loadSettings()
	logSettings := settings
	if loadErr != nil {
		logSettings = domain.DefaultSettings()
	}
	// stdout carries the stdio transport, so logs go to stderr.
	log := newLogger(logSettings, cmd.ErrOrStderr())
	defer log.Sync() //nolint:errcheck

	if loadErr != nil {
		log.Warn("discovery disabled", zap.Error(loadErr))
	} else {
		// Results are returned to the caller, not written to a file.
		settings.Output = ""
		if verr := settings.Validate(); verr != nil {
			log.Warn("discovery disabled", zap.Error(verr))
		} else if discovery, derr := builder.Discovery(settings, log); derr != nil {
			log.Warn("discovery disabled", zap.Error(derr))
		} else {
			ports.Discovery = &reloadingDiscovery{DiscoveryService: discovery, reload: builder.ReloadPrompts}
			ports.Defaults = domain.RunOptions{
				SearchURL:        settings.SearchURL,
				MaxOrganizations: settings.MaxOrganizations,
				Concurrency:      settings.Concurrency,
			}
		}
	}

	server, err := mcp.NewServer(ports, log)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// reloadingDiscovery rereads prompt templates before each run, so a
// long-lived server picks up edits to the prompt directory.
type reloadingDiscovery struct {
	driving.DiscoveryService
	reload func()
}

func (d *reloadingDiscovery) Run(ctx context.Context, opts domain.RunOptions) (*domain.RunReport, error) {
	d.reload()
	return d.DiscoveryService.Run(ctx, opts)
}
