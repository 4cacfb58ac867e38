package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	reply    string
	err      error
	messages []driven.ChatMessage
	opts     driven.ChatOptions
}

func (m *mockLLMService) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.messages = messages
	m.opts = opts
	return m.reply, m.err
}

func (m *mockLLMService) ModelName() string           { return "mock" }
func (m *mockLLMService) Ping(_ context.Context) error { return nil }
func (m *mockLLMService) Close() error                 { return nil }

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	p, ok := m.prompts[name]
	if !ok {
		return "", errors.New("not found")
	}
	return p, nil
}

func (m *mockPromptStore) Reload() {}

func testRequest() domain.ExtractionRequest {
	return domain.ExtractionRequest{
		OrganizationName: "Riverside Academy",
		Corpus:           "Jane Doe Head of School jane@riverside.edu",
		Vocabulary:       []string{"Head of School", "Principal"},
	}
}

func TestLLMExtractor_Extract(t *testing.T) {
	llm := &mockLLMService{reply: `{"contacts":[]}`}
	extractor := NewLLMExtractor(llm, nil, domain.DefaultLLMTemperature)

	reply, err := extractor.Extract(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, `{"contacts":[]}`, reply)
	assert.True(t, llm.opts.JSONResponse)
	assert.InDelta(t, 0.1, llm.opts.Temperature, 1e-9)

	require.Len(t, llm.messages, 2)
	assert.Equal(t, "system", llm.messages[0].Role)
	assert.Contains(t, llm.messages[0].Content, "- Head of School\n- Principal")
	assert.NotContains(t, llm.messages[0].Content, driven.TitlesPlaceholder)
	assert.Equal(t, "user", llm.messages[1].Role)
	assert.Equal(t,
		"Extract faculty contacts from Riverside Academy website content:\n\nJane Doe Head of School jane@riverside.edu",
		llm.messages[1].Content)
}

func TestLLMExtractor_Extract_PromptOverride(t *testing.T) {
	llm := &mockLLMService{reply: "{}"}
	prompts := &mockPromptStore{prompts: map[string]string{
		driven.PromptContactExtraction: "Titles:\n- {{titles}}",
	}}
	extractor := NewLLMExtractor(llm, prompts, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Titles:\n- Head of School\n- Principal", llm.messages[0].Content)
}

func TestLLMExtractor_Extract_OverrideWithoutPlaceholder(t *testing.T) {
	llm := &mockLLMService{reply: "{}"}
	prompts := &mockPromptStore{prompts: map[string]string{
		driven.PromptContactExtraction: "Return contacts as JSON.",
	}}
	extractor := NewLLMExtractor(llm, prompts, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Return contacts as JSON.", llm.messages[0].Content)
}

func TestLLMExtractor_Extract_MissingPromptFallsBack(t *testing.T) {
	llm := &mockLLMService{reply: "{}"}
	extractor := NewLLMExtractor(llm, &mockPromptStore{}, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(llm.messages[0].Content, "You are a data extraction specialist."))
}

func TestLLMExtractor_Extract_Error(t *testing.T) {
	llm := &mockLLMService{err: domain.ErrLLMUnavailable}
	extractor := NewLLMExtractor(llm, nil, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Contains(t, err.Error(), "Riverside Academy")
}

func TestLLMExtractor_Extract_NoLLM(t *testing.T) {
	extractor := NewLLMExtractor(nil, nil, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestDefaultPrompts(t *testing.T) {
	prompts := DefaultPrompts()

	require.Contains(t, prompts, driven.PromptContactExtraction)
	assert.Equal(t, 1, strings.Count(prompts[driven.PromptContactExtraction], driven.TitlesPlaceholder))
	assert.NotContains(t, prompts[driven.PromptContactExtraction], "%s")
}

func TestLLMExtractor_Extract_PercentSignsSentVerbatim(t *testing.T) {
	llm := &mockLLMService{reply: "{}"}
	prompts := &mockPromptStore{prompts: map[string]string{
		driven.PromptContactExtraction: "Be 100% accurate, 0%d guessing. Titles: {{titles}}. Literal %s stays.",
	}}
	extractor := NewLLMExtractor(llm, prompts, 0)

	_, err := extractor.Extract(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t,
		"Be 100% accurate, 0%d guessing. Titles: Head of School\n- Principal. Literal %s stays.",
		llm.messages[0].Content)
	assert.NotContains(t, llm.messages[0].Content, "%!")
}
