package domain

// RunOptions are the per-run inputs to discovery.
type RunOptions struct {
	// SearchURL is the directory search page.
	SearchURL string

	// MaxOrganizations truncates the directory entries, in discovery order.
	MaxOrganizations int

	// Concurrency bounds how many organizations are processed at once.
	Concurrency int
}

// OrganizationStatus is the outcome of processing one organization.
type OrganizationStatus string

// Organization outcomes.
const (
	OrganizationProcessed OrganizationStatus = "processed"
	OrganizationSkipped   OrganizationStatus = "skipped"
	OrganizationFailed    OrganizationStatus = "failed"
)

// RunReport summarises a completed run.
type RunReport struct {
	RunID string

	// OrganizationsFound is the number of unique directory entries.
	OrganizationsFound int

	// OrganizationsAttempted is the number of entries after truncation.
	OrganizationsAttempted int

	OrganizationsProcessed int
	OrganizationsSkipped   int
	OrganizationsFailed    int

	// Contacts is the final ordered collection.
	Contacts []EnrichedContact

	// OutputLocation is where the sink wrote the collection, if a sink was used.
	OutputLocation string
}

// ContactsCollected returns the number of contacts in the final collection.
func (r *RunReport) ContactsCollected() int {
	return len(r.Contacts)
}
