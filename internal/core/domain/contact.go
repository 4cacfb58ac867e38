package domain

import "strings"

// ContactCandidate is one raw person record produced by the extraction collaborator.
type ContactCandidate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// JobTitle is the title exactly as it appeared on the website.
	JobTitle string `json:"jobTitle"`

	Email string `json:"email"`

	// Phone is nil when the extraction reported no direct number.
	Phone *string `json:"phone"`
}

// HasRequiredFields reports whether the candidate has both a first name and an email.
func (c ContactCandidate) HasRequiredFields() bool {
	return strings.TrimSpace(c.FirstName) != "" && strings.TrimSpace(c.Email) != ""
}

// ExtractionResult is the parsed response of the structured extraction collaborator.
type ExtractionResult struct {
	Contacts []ContactCandidate `json:"contacts"`

	// SchoolPhone is the organization's main phone number, nil when not found.
	SchoolPhone *string `json:"schoolPhone"`

	// SchoolState is the organization's two-letter state code, nil when not found.
	SchoolState *string `json:"schoolState"`
}

// EmptyExtractionResult is the result used when a response cannot be parsed.
func EmptyExtractionResult() *ExtractionResult {
	return &ExtractionResult{Contacts: []ContactCandidate{}}
}

// ExtractionRequest is what the extraction collaborator receives for one organization.
type ExtractionRequest struct {
	// OrganizationName names the organization whose pages are in Corpus.
	OrganizationName string

	// Corpus is the reduced page text, already truncated to the character budget.
	Corpus string

	// Vocabulary is the controlled title vocabulary, used as extraction guidance.
	Vocabulary []string
}

// NormalizedContact is a candidate whose job title was replaced by its canonical form.
type NormalizedContact struct {
	FirstName string
	LastName  string
	JobTitle  string
	Email     string
	Phone     *string
}

// EnrichedContact is an accepted contact merged with its organization's metadata.
type EnrichedContact struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	JobTitle  string  `json:"jobTitle"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`

	OrganizationName   string  `json:"organizationName"`
	OrganizationDomain string  `json:"organizationDomain"`
	OrganizationPhone  *string `json:"organizationPhone,omitempty"`
	OrganizationState  *string `json:"organizationState,omitempty"`
}

// Enrich merges the contact with organization metadata.
// Phone and state come from the extraction response, never from the profile.
func (c NormalizedContact) Enrich(orgName, orgDomain string, result *ExtractionResult) EnrichedContact {
	ec := EnrichedContact{
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		JobTitle:           c.JobTitle,
		Email:              c.Email,
		Phone:              c.Phone,
		OrganizationName:   orgName,
		OrganizationDomain: orgDomain,
	}
	if result != nil {
		ec.OrganizationPhone = result.SchoolPhone
		ec.OrganizationState = result.SchoolState
	}
	return ec
}

// NullableString returns nil for blank strings and a pointer to s otherwise.
func NullableString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// ValueOrEmpty dereferences s, returning "" for nil.
func ValueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
