package mcp

import (
	"context"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// mockTitleService is a mock implementation of driving.TitleService.
type mockTitleService struct {
	vocabulary []string
	matches    map[string]string
}

func (m *mockTitleService) Vocabulary() []string {
	return m.vocabulary
}

func (m *mockTitleService) Standardise(raw string) (string, bool) {
	canonical, ok := m.matches[raw]
	return canonical, ok
}

// mockDiscoveryService is a mock implementation of driving.DiscoveryService.
type mockDiscoveryService struct {
	report *domain.RunReport
	err    error
	opts   []domain.RunOptions
}

func (m *mockDiscoveryService) Run(_ context.Context, opts domain.RunOptions) (*domain.RunReport, error) {
	m.opts = append(m.opts, opts)
	return m.report, m.err
}
