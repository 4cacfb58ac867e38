package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an append-only, in-memory collection of accepted contacts.
// It lives for a single run.
type ContactStore struct {
	mu       sync.RWMutex
	contacts []domain.EnrichedContact
}

// NewContactStore creates an empty contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{}
}

// Append adds contacts to the end of the collection.
func (s *ContactStore) Append(_ context.Context, contacts ...domain.EnrichedContact) error {
	if len(contacts) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, contacts...)
	return nil
}

// List returns a copy of the collection in append order.
func (s *ContactStore) List(_ context.Context) ([]domain.EnrichedContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.EnrichedContact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}
