package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// ListingCrawler turns a directory search page into organization profile links.
type ListingCrawler struct {
	fetcher   driven.PageFetcher
	selectors domain.Selectors
	log       logger.Logger
}

// NewListingCrawler creates a listing crawler.
func NewListingCrawler(fetcher driven.PageFetcher, selectors domain.Selectors, log logger.Logger) *ListingCrawler {
	if log == nil {
		log = logger.NewNop()
	}
	return &ListingCrawler{fetcher: fetcher, selectors: selectors, log: log}
}

// Crawl fetches the rendered listing and returns unique profile links in first-seen order.
// Any failure wraps domain.ErrListingRetrieval.
func (c *ListingCrawler) Crawl(ctx context.Context, searchURL string) ([]domain.DirectoryEntry, error) {
	base, err := url.Parse(searchURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid search URL %q", domain.ErrListingRetrieval, searchURL)
	}

	page, err := c.fetcher.Fetch(ctx, searchURL, driven.FetchOptions{
		RenderJS:        true,
		BypassAntiBot:   true,
		WaitForSelector: c.selectors.ListingCard,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrListingRetrieval, err)
	}

	entries, err := parseListing(page, base, c.selectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrListingRetrieval, err)
	}

	c.log.Info("listing fetched", zap.String("url", searchURL), zap.Int("organizations", len(entries)))
	return entries, nil
}

// parseListing reads the primary link of every listing card. Relative links resolve
// against the directory's own origin.
func parseListing(page string, base *url.URL, sel domain.Selectors) ([]domain.DirectoryEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	seen := make(map[string]struct{})
	var entries []domain.DirectoryEntry

	doc.Find(sel.ListingCard).Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find(sel.ListingLink).First().Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		full := origin.ResolveReference(ref).String()

		if _, dup := seen[full]; dup {
			return
		}
		seen[full] = struct{}{}
		entries = append(entries, domain.DirectoryEntry{URL: full})
	})

	return entries, nil
}
