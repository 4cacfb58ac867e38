// Package fetch provides PageFetcher implementations.
//
// The Scrapfly fetcher renders pages through the Scrapfly scraping API and is used
// for the directory site, which requires JavaScript rendering and anti-bot bypass.
// The direct fetcher issues plain HTTP GETs and ignores rendering options.
// Both share a token-bucket rate limiter and retry transient failures.
package fetch
