// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PageFetcher: Retrieves rendered HTML for a URL
//   - ContactExtractor: Turns an organization corpus into a structured JSON response
//   - ContactStore: Append-only collection of accepted contacts for one run
//
// # Optional Interfaces
//
//   - ContactSink: Writes the final collection somewhere. Without it, results are only returned.
//   - LLMService: Language model used by the LLM-backed ContactExtractor.
//   - PromptStore: User-customisable prompt templates.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
