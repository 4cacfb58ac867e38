package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// ProfileResolver reads an organization's directory profile page.
type ProfileResolver struct {
	fetcher   driven.PageFetcher
	selectors domain.Selectors
	log       logger.Logger
}

// NewProfileResolver creates a profile resolver.
func NewProfileResolver(fetcher driven.PageFetcher, selectors domain.Selectors, log logger.Logger) *ProfileResolver {
	if log == nil {
		log = logger.NewNop()
	}
	return &ProfileResolver{fetcher: fetcher, selectors: selectors, log: log}
}

// Resolve fetches and parses one profile. Failures wrap domain.ErrProfileRetrieval;
// callers treat them as a reason to skip the organization.
// A profile without a website is returned as-is; deciding to skip it is up to the caller.
func (r *ProfileResolver) Resolve(ctx context.Context, profileURL string) (*domain.OrganizationProfile, error) {
	page, err := r.fetcher.Fetch(ctx, profileURL, driven.FetchOptions{
		RenderJS:        true,
		BypassAntiBot:   true,
		WaitForSelector: r.selectors.ProfileHeading,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfileRetrieval, err)
	}

	profile, err := parseProfile(page, r.selectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfileRetrieval, err)
	}
	profile.ProfileURL = profileURL

	r.log.Debug("profile resolved",
		zap.String("url", profileURL),
		zap.String("name", profile.Name),
		zap.String("website", profile.Website),
		zap.String("state", profile.State),
	)
	return profile, nil
}

func parseProfile(page string, sel domain.Selectors) (*domain.OrganizationProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	address := domain.CollapseWhitespace(doc.Find(sel.ProfileAddress).Text())
	website, _ := doc.Find(sel.ProfileWebsite).First().Attr("href")

	return &domain.OrganizationProfile{
		Name:    domain.CollapseWhitespace(doc.Find(sel.ProfileHeading).First().Text()),
		Phone:   strings.TrimSpace(doc.Find(sel.ProfilePhone).Text()),
		Address: address,
		State:   domain.StateFromAddress(address),
		Website: strings.TrimSpace(website),
	}, nil
}
