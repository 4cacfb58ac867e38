package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// ContactAggregator filters extracted candidates and accumulates accepted contacts.
//
// Filter is safe to call from several goroutines. Accept must be called from a
// single goroutine: it restores organization order before appending to the store.
type ContactAggregator struct {
	store driven.ContactStore
	log   logger.Logger

	next    int
	pending map[int][]domain.EnrichedContact
}

// NewContactAggregator creates an aggregator that appends to store.
func NewContactAggregator(store driven.ContactStore, log logger.Logger) *ContactAggregator {
	if log == nil {
		log = logger.NewNop()
	}
	return &ContactAggregator{
		store:   store,
		log:     log,
		pending: make(map[int][]domain.EnrichedContact),
	}
}

// Filter rejects candidates without a first name or email and candidates whose title
// has no vocabulary match, then merges the owning organization's metadata onto the rest.
// Output order follows the extraction response.
func (a *ContactAggregator) Filter(
	profile domain.OrganizationProfile,
	result *domain.ExtractionResult,
) ([]domain.EnrichedContact, error) {
	if result == nil || len(result.Contacts) == 0 {
		return nil, nil
	}

	orgDomain, err := domain.DomainFromWebsite(profile.Website)
	if err != nil {
		return nil, err
	}

	accepted := make([]domain.EnrichedContact, 0, len(result.Contacts))
	for _, c := range result.Contacts {
		if !c.HasRequiredFields() {
			a.log.Debug("contact rejected",
				zap.String("organization", profile.Name),
				zap.String("reason", "missing first name or email"),
			)
			continue
		}

		canonical, ok := domain.StandardiseTitle(c.JobTitle)
		if !ok {
			a.log.Info("contact rejected",
				zap.String("organization", profile.Name),
				zap.String("reason", "title not approved"),
				zap.String("title", c.JobTitle),
			)
			continue
		}

		normalized := domain.NormalizedContact{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			JobTitle:  canonical,
			Email:     c.Email,
			Phone:     c.Phone,
		}
		accepted = append(accepted, normalized.Enrich(profile.Name, orgDomain, result))
	}

	return accepted, nil
}

// Accept records the contacts of the organization at position index and appends every
// contiguous run of completed organizations to the store, so the collection always
// follows organization order regardless of completion order.
// Every index in [0, n) must be accepted exactly once.
func (a *ContactAggregator) Accept(ctx context.Context, index int, contacts []domain.EnrichedContact) error {
	if index < a.next {
		return fmt.Errorf("%w: organization %d already accepted", domain.ErrInvalidInput, index)
	}
	if _, dup := a.pending[index]; dup {
		return fmt.Errorf("%w: organization %d already accepted", domain.ErrInvalidInput, index)
	}
	if contacts == nil {
		contacts = []domain.EnrichedContact{}
	}
	a.pending[index] = contacts

	for {
		ready, ok := a.pending[a.next]
		if !ok {
			return nil
		}
		delete(a.pending, a.next)
		a.next++
		if len(ready) == 0 {
			continue
		}
		if err := a.store.Append(ctx, ready...); err != nil {
			return fmt.Errorf("append contacts: %w", err)
		}
	}
}
