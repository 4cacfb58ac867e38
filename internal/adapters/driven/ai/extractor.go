package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// Ensure LLMExtractor implements the interface.
var _ driven.ContactExtractor = (*LLMExtractor)(nil)

// DefaultContactExtractionPrompt is the system prompt used when no override exists.
// driven.TitlesPlaceholder receives the approved titles, one per line.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const DefaultContactExtractionPrompt = `You are a data extraction specialist. Extract faculty and staff contact information from school websites.

IMPORTANT: Only extract contacts whose job title matches or is similar to one of these approved titles:
- {{titles}}

If a person's job title does not match any of these, DO NOT include them.

Return a JSON object with this structure:
{
  "contacts": [
    {
      "firstName": "First Name",
      "lastName": "Last Name",
      "jobTitle": "Their exact job title from the website",
      "email": "email@school.edu",
      "phone": "phone number or null if not available"
    }
  ],
  "schoolPhone": "main school phone if found, otherwise null",
  "schoolState": "two-letter state code if found, otherwise null"
}

Rules:
- Only include contacts with at least a first name AND an email
- Job title MUST match or be very similar to one of the approved titles above
- Extract the EXACT job title as shown on the website
- If no matching contacts are found, return an empty contacts array`

// DefaultPrompts returns the built-in prompt templates keyed by prompt name.
func DefaultPrompts() map[string]string {
	return map[string]string{
		driven.PromptContactExtraction: DefaultContactExtractionPrompt,
	}
}

// LLMExtractor asks a language model for the contacts in an organization's pages.
type LLMExtractor struct {
	llm         driven.LLMService
	prompts     driven.PromptStore
	temperature float64
}

// NewLLMExtractor creates an extractor. The prompt store is optional.
func NewLLMExtractor(llm driven.LLMService, prompts driven.PromptStore, temperature float64) *LLMExtractor {
	return &LLMExtractor{llm: llm, prompts: prompts, temperature: temperature}
}

// Extract sends the corpus to the model in JSON mode and returns the raw reply.
func (e *LLMExtractor) Extract(ctx context.Context, req domain.ExtractionRequest) (string, error) {
	if e.llm == nil {
		return "", fmt.Errorf("%w: no LLM service configured", domain.ErrLLMUnavailable)
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: e.systemPrompt(req.Vocabulary)},
		{Role: "user", Content: UserPrompt(req)},
	}

	reply, err := e.llm.Chat(ctx, messages, driven.ChatOptions{
		Temperature:  e.temperature,
		JSONResponse: true,
	})
	if err != nil {
		return "", fmt.Errorf("extract contacts for %s: %w", req.OrganizationName, err)
	}
	return reply, nil
}

// UserPrompt builds the user message for one organization.
func UserPrompt(req domain.ExtractionRequest) string {
	return fmt.Sprintf("Extract faculty contacts from %s website content:\n\n%s", req.OrganizationName, req.Corpus)
}

func (e *LLMExtractor) systemPrompt(vocabulary []string) string {
	template := e.loadPrompt(driven.PromptContactExtraction, DefaultContactExtractionPrompt)
	return strings.ReplaceAll(template, driven.TitlesPlaceholder, strings.Join(vocabulary, "\n- "))
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (e *LLMExtractor) loadPrompt(name, fallback string) string {
	if e.prompts == nil {
		return fallback
	}
	prompt, err := e.prompts.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}
