package driven

import (
	"context"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// ContactStore is the append-only output collection of a run.
// Entries are never reordered or mutated after insertion.
type ContactStore interface {
	// Append adds contacts at the end of the collection.
	Append(ctx context.Context, contacts ...domain.EnrichedContact) error

	// List returns the collection in insertion order.
	List(ctx context.Context) ([]domain.EnrichedContact, error)
}

// ContactSink consumes the final ordered collection.
type ContactSink interface {
	// Write persists the contacts and returns where they were written.
	Write(ctx context.Context, contacts []domain.EnrichedContact) (string, error)
}
