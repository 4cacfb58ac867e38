package driven

import (
	"context"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// ContactExtractor is the structured extraction collaborator.
// It returns the raw response document; validation happens in core.
type ContactExtractor interface {
	// Extract asks for the contacts found in req.Corpus and returns the response text,
	// expected to be a JSON object with contacts, schoolPhone and schoolState.
	Extract(ctx context.Context, req domain.ExtractionRequest) (string, error)
}
