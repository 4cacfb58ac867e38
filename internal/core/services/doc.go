// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The discovery pipeline is built from small services, leaf first:
// ListingCrawler, ProfileResolver, SiteCrawler, ExtractionService and
// ContactAggregator, composed by DiscoveryService.
package services
