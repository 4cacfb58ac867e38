package driven

// PromptStore provides access to LLM prompt templates.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptContactExtraction is the system prompt for contact extraction.
	// TitlesPlaceholder in the template is replaced with the approved title list.
	PromptContactExtraction = "contact_extraction"
)

// TitlesPlaceholder marks where the approved titles go in a prompt template.
// Everything else in the template, including any % signs, is sent verbatim.
const TitlesPlaceholder = "{{titles}}"
