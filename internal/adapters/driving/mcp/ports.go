package mcp

import (
	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Titles matches raw job titles against the controlled vocabulary.
	Titles driving.TitleService

	// Discovery runs the directory pipeline. Optional: without it the
	// discover_contacts tool reports that discovery is not configured.
	Discovery driving.DiscoveryService

	// Defaults fill in discover_contacts arguments the caller leaves out.
	Defaults domain.RunOptions
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Titles == nil {
		return ErrMissingTitleService
	}
	return nil
}
