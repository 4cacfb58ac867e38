package driving

import (
	"context"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// DiscoveryService runs the directory-to-contacts pipeline.
type DiscoveryService interface {
	// Run discovers organizations from opts.SearchURL and collects their contacts.
	// Only a directory listing failure aborts the run; per-organization failures
	// are counted in the report.
	Run(ctx context.Context, opts domain.RunOptions) (*domain.RunReport, error)
}
