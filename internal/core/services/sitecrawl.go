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

// PageSeparator is inserted between consecutive page bodies in a site corpus.
// It is plain text so it survives content reduction.
const PageSeparator = "\n---PAGE_SEPARATOR---\n"

// contactKeywords mark an anchor as a likely staff or contact page.
var contactKeywords = []string{
	"contact", "about", "staff", "directory", "faculty",
	"team", "administration", "leadership", "people",
}

// SiteCrawler fetches an organization's website root and its likely staff pages.
type SiteCrawler struct {
	fetcher  driven.PageFetcher
	maxPages int
	log      logger.Logger
}

// NewSiteCrawler creates a site crawler that follows at most maxPages candidate links.
func NewSiteCrawler(fetcher driven.PageFetcher, maxPages int, log logger.Logger) *SiteCrawler {
	if maxPages < 0 {
		maxPages = domain.DefaultMaxContactPages
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &SiteCrawler{fetcher: fetcher, maxPages: maxPages, log: log}
}

// Crawl returns the root page followed by every successfully fetched candidate page,
// joined with PageSeparator. A root fetch failure is returned; candidate failures are
// logged and skipped.
func (c *SiteCrawler) Crawl(ctx context.Context, rootURL string) (string, error) {
	root, err := url.Parse(rootURL)
	if err != nil {
		return "", fmt.Errorf("parse website %q: %w", rootURL, err)
	}

	opts := driven.FetchOptions{RenderJS: true, BypassAntiBot: true}

	page, err := c.fetcher.Fetch(ctx, rootURL, opts)
	if err != nil {
		return "", fmt.Errorf("fetch website root: %w", err)
	}

	links := discoverContactLinks(page, root, c.maxPages)
	c.log.Debug("contact pages discovered", zap.String("website", rootURL), zap.Int("count", len(links)))

	var corpus strings.Builder
	corpus.WriteString(page)

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		body, err := c.fetcher.Fetch(ctx, link, opts)
		if err != nil {
			c.log.Warn("contact page failed",
				zap.String("url", link),
				zap.Error(fmt.Errorf("%w: %w", domain.ErrContactPageRetrieval, err)),
			)
			continue
		}
		corpus.WriteString(PageSeparator)
		corpus.WriteString(body)
		c.log.Debug("contact page fetched", zap.String("url", link))
	}

	return corpus.String(), nil
}

// discoverContactLinks scans anchors in document order and returns up to limit unique,
// resolved http(s) URLs whose text or href mentions a contact keyword.
// Scanning stops as soon as the limit is reached.
func discoverContactLinks(page string, root *url.URL, limit int) []string {
	if limit == 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if !isContactCandidate(a.Text(), href) || href == "" {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		resolved := root.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return true
		}

		full := resolved.String()
		if _, dup := seen[full]; dup {
			return true
		}
		seen[full] = struct{}{}
		links = append(links, full)

		return len(links) < limit
	})

	return links
}

func isContactCandidate(text, href string) bool {
	text = strings.ToLower(text)
	href = strings.ToLower(href)
	for _, kw := range contactKeywords {
		if strings.Contains(text, kw) || strings.Contains(href, kw) {
			return true
		}
	}
	return false
}
