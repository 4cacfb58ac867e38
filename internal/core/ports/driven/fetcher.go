package driven

import "context"

// PageFetcher retrieves the HTML of a page.
// Implementations own their timeout and retry behaviour.
type PageFetcher interface {
	// Fetch returns the raw HTML at url.
	Fetch(ctx context.Context, url string, opts FetchOptions) (string, error)
}

// FetchOptions configures a single retrieval.
type FetchOptions struct {
	// RenderJS requests JavaScript rendering before the HTML is captured.
	RenderJS bool

	// BypassAntiBot requests anti-bot protection bypass where supported.
	BypassAntiBot bool

	// WaitForSelector delays capture until an element matching the selector exists.
	// Empty means no readiness wait.
	WaitForSelector string
}
