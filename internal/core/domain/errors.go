package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrListingRetrieval indicates the directory listing could not be fetched or parsed.
	// It is the only error that aborts a run.
	ErrListingRetrieval = errors.New("directory listing unavailable")

	// ErrProfileRetrieval indicates an organization profile page could not be fetched or parsed.
	ErrProfileRetrieval = errors.New("organization profile unavailable")

	// ErrMissingWebsite indicates a resolved profile has no official website.
	ErrMissingWebsite = errors.New("organization has no website")

	// ErrInvalidWebsite indicates a website URL has no usable hostname.
	ErrInvalidWebsite = errors.New("invalid organization website")

	// ErrContactPageRetrieval indicates a single candidate contact page could not be fetched.
	ErrContactPageRetrieval = errors.New("contact page unavailable")

	// ErrExtractionResponse indicates the extraction response was not the expected JSON shape.
	ErrExtractionResponse = errors.New("malformed extraction response")

	// ErrLLMUnavailable indicates the LLM service is not configured or unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrFetcherUnavailable indicates the page fetcher is not configured.
	ErrFetcherUnavailable = errors.New("page fetcher unavailable")

	// ErrRateLimited indicates a remote API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
