// Package domain defines the core business entities for staffscout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DirectoryEntry: A profile link discovered on a directory listing
//   - OrganizationProfile: The resolved profile of one organization
//   - ContactCandidate: A raw person record returned by extraction
//   - EnrichedContact: An accepted contact merged with organization metadata
//   - ControlledVocabulary: The ordered list of approved canonical job titles
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
