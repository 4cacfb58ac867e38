package driving

// TitleService exposes the controlled job-title vocabulary.
type TitleService interface {
	// Vocabulary returns the canonical titles in precedence order.
	Vocabulary() []string

	// Standardise returns the canonical title for raw, or false when none matches.
	Standardise(raw string) (string, bool)
}
