package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// Ensure DiscoveryService implements the interface.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// StoreFactory creates the output collection for one run.
type StoreFactory func() driven.ContactStore

// DiscoveryService runs the directory-to-contacts pipeline.
//
// Organizations are handed to a bounded pool of workers. Each worker sends its
// outcome over a channel to a single aggregator, which owns the output collection
// and appends in directory order. With a concurrency of 1 the run is strictly
// sequential.
type DiscoveryService struct {
	listing    *ListingCrawler
	profiles   *ProfileResolver
	sites      *SiteCrawler
	extraction *ExtractionService
	newStore   StoreFactory
	sink       driven.ContactSink
	log        logger.Logger
}

// NewDiscoveryService creates a discovery service.
// The sink is optional; when nil the collection is only returned in the report.
func NewDiscoveryService(
	listing *ListingCrawler,
	profiles *ProfileResolver,
	sites *SiteCrawler,
	extraction *ExtractionService,
	newStore StoreFactory,
	sink driven.ContactSink,
	log logger.Logger,
) *DiscoveryService {
	if log == nil {
		log = logger.NewNop()
	}
	return &DiscoveryService{
		listing:    listing,
		profiles:   profiles,
		sites:      sites,
		extraction: extraction,
		newStore:   newStore,
		sink:       sink,
		log:        log,
	}
}

// organizationOutcome is what a worker reports for one organization.
type organizationOutcome struct {
	index    int
	status   domain.OrganizationStatus
	contacts []domain.EnrichedContact
}

// Run executes one discovery run.
func (s *DiscoveryService) Run(ctx context.Context, opts domain.RunOptions) (*domain.RunReport, error) {
	if s.newStore == nil {
		return nil, fmt.Errorf("%w: contact store not configured", domain.ErrInvalidInput)
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = domain.DefaultConcurrency
	}

	report := &domain.RunReport{RunID: uuid.New().String()}
	log := s.log.With(zap.String("run_id", report.RunID))

	entries, err := s.listing.Crawl(ctx, opts.SearchURL)
	if err != nil {
		log.Error("listing failed", zap.String("url", opts.SearchURL), zap.Error(err))
		return nil, err
	}
	report.OrganizationsFound = len(entries)

	if opts.MaxOrganizations > 0 && len(entries) > opts.MaxOrganizations {
		entries = entries[:opts.MaxOrganizations]
	}
	report.OrganizationsAttempted = len(entries)

	store := s.newStore()
	aggregator := NewContactAggregator(store, log)
	outcomes := make(chan organizationOutcome)

	go func() {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for i, entry := range entries {
			g.Go(func() error {
				outcomes <- s.processOrganization(ctx, log, aggregator, i, len(entries), entry)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	var acceptErr error
	for outcome := range outcomes {
		switch outcome.status {
		case domain.OrganizationProcessed:
			report.OrganizationsProcessed++
		case domain.OrganizationSkipped:
			report.OrganizationsSkipped++
		default:
			report.OrganizationsFailed++
		}
		if acceptErr != nil {
			continue
		}
		acceptErr = aggregator.Accept(ctx, outcome.index, outcome.contacts)
	}
	if acceptErr != nil {
		return nil, acceptErr
	}

	report.Contacts, err = store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	if s.sink != nil {
		location, err := s.sink.Write(ctx, report.Contacts)
		if err != nil {
			return report, fmt.Errorf("write contacts: %w", err)
		}
		report.OutputLocation = location
	}

	log.Info("run complete",
		zap.Int("organizations", report.OrganizationsAttempted),
		zap.Int("processed", report.OrganizationsProcessed),
		zap.Int("skipped", report.OrganizationsSkipped),
		zap.Int("failed", report.OrganizationsFailed),
		zap.Int("contacts", report.ContactsCollected()),
	)
	return report, nil
}

// processOrganization runs profile resolution, site crawl, extraction and filtering
// for one organization. Every error, and any panic, ends at this boundary.
func (s *DiscoveryService) processOrganization(
	ctx context.Context,
	log logger.Logger,
	aggregator *ContactAggregator,
	index, total int,
	entry domain.DirectoryEntry,
) (outcome organizationOutcome) {
	outcome = organizationOutcome{index: index, status: domain.OrganizationFailed}
	log = log.With(zap.Int("organization", index+1), zap.Int("of", total), zap.String("profile", entry.URL))

	defer func() {
		if r := recover(); r != nil {
			log.Error("organization failed", zap.Error(fmt.Errorf("panic: %v", r)))
			outcome = organizationOutcome{index: index, status: domain.OrganizationFailed}
		}
	}()

	if err := ctx.Err(); err != nil {
		log.Warn("organization failed", zap.Error(err))
		return outcome
	}

	profile, err := s.profiles.Resolve(ctx, entry.URL)
	if err != nil {
		log.Warn("profile unavailable", zap.Error(err))
		outcome.status = domain.OrganizationSkipped
		return outcome
	}
	if !profile.HasWebsite() {
		log.Info("organization skipped", zap.String("name", profile.Name), zap.Error(domain.ErrMissingWebsite))
		outcome.status = domain.OrganizationSkipped
		return outcome
	}

	contacts, err := s.collect(ctx, aggregator, *profile)
	if err != nil {
		log.Error("organization failed", zap.String("name", profile.Name), zap.Error(err))
		return outcome
	}

	log.Info("organization processed",
		zap.String("name", profile.Name),
		zap.String("website", profile.Website),
		zap.Int("contacts", len(contacts)),
	)
	outcome.status = domain.OrganizationProcessed
	outcome.contacts = contacts
	return outcome
}

func (s *DiscoveryService) collect(
	ctx context.Context,
	aggregator *ContactAggregator,
	profile domain.OrganizationProfile,
) ([]domain.EnrichedContact, error) {
	corpus, err := s.sites.Crawl(ctx, profile.Website)
	if err != nil {
		return nil, err
	}

	result, err := s.extraction.Extract(ctx, profile, corpus)
	if err != nil {
		return nil, err
	}

	contacts, err := aggregator.Filter(profile, result)
	if err != nil {
		return nil, fmt.Errorf("filter contacts: %w", err)
	}
	return contacts, nil
}
