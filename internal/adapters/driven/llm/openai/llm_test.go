package openai

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

func newTestService(t *testing.T) *LLMService {
	t.Helper()
	svc, err := NewLLMService(LLMConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.NoError(t, svc.Close())
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(LLMConfig{})
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestLLMService_Chat_JSONMode(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultBaseURL).
		Post("/chat/completions").
		MatchHeader("Authorization", "Bearer sk-test").
		MatchType("json").
		JSON(map[string]any{
			"model": "gpt-4o",
			"messages": []map[string]string{
				{"role": "system", "content": "extract"},
				{"role": "user", "content": "corpus"},
			},
			"temperature":     0.1,
			"response_format": map[string]string{"type": "json_object"},
		}).
		Reply(200).
		JSON(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": `{"contacts":[]}`}, "finish_reason": "stop"},
			},
		})

	svc := newTestService(t)
	reply, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "extract"},
		{Role: "user", Content: "corpus"},
	}, driven.ChatOptions{Temperature: 0.1, JSONResponse: true})

	require.NoError(t, err)
	assert.Equal(t, `{"contacts":[]}`, reply)
	assert.True(t, gock.IsDone())
}

func TestLLMService_Chat_APIError(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultBaseURL).
		Post("/chat/completions").
		Reply(429).
		JSON(map[string]any{"error": map[string]string{"message": "rate limited", "type": "requests"}})

	svc := newTestService(t)
	_, err := svc.Chat(context.Background(), []driven.ChatMessage{{Role: "user", Content: "hi"}}, driven.ChatOptions{})

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestLLMService_Chat_NoChoices(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultBaseURL).
		Post("/chat/completions").
		Reply(200).
		JSON(map[string]any{"choices": []any{}})

	svc := newTestService(t)
	_, err := svc.Chat(context.Background(), []driven.ChatMessage{{Role: "user", Content: "hi"}}, driven.ChatOptions{})

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestLLMService_Ping(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultBaseURL).Get("/models").Reply(200).JSON(map[string]any{"data": []any{}})
	gock.New(DefaultBaseURL).Get("/models").Reply(401).BodyString("bad key")

	svc := newTestService(t)
	require.NoError(t, svc.Ping(context.Background()))

	err := svc.Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Contains(t, err.Error(), "401")
}
