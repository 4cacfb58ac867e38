package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
)

// --- Mock implementations ---

var errPageNotFound = errors.New("page not found")

// mockPageFetcher implements driven.PageFetcher over a fixed set of pages.
type mockPageFetcher struct {
	mu     sync.Mutex
	pages  map[string]string
	errs   map[string]error
	delays map[string]time.Duration
	calls  []string
	opts   map[string]driven.FetchOptions
}

func newMockPageFetcher() *mockPageFetcher {
	return &mockPageFetcher{
		pages:  make(map[string]string),
		errs:   make(map[string]error),
		delays: make(map[string]time.Duration),
		opts:   make(map[string]driven.FetchOptions),
	}
}

func (m *mockPageFetcher) Fetch(ctx context.Context, url string, opts driven.FetchOptions) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.opts[url] = opts
	delay := m.delays[url]
	page, ok := m.pages[url]
	err := m.errs[url]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errPageNotFound
	}
	return page, nil
}

func (m *mockPageFetcher) called(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == url {
			return true
		}
	}
	return false
}

func (m *mockPageFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockContactExtractor implements driven.ContactExtractor with a per-request function.
type mockContactExtractor struct {
	mu       sync.Mutex
	fn       func(req domain.ExtractionRequest) (string, error)
	requests []domain.ExtractionRequest
}

func (m *mockContactExtractor) Extract(_ context.Context, req domain.ExtractionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.fn(req)
}

// mockContactStore implements driven.ContactStore and can fail on append.
type mockContactStore struct {
	contacts  []domain.EnrichedContact
	appendErr error
	appends   int
}

func (m *mockContactStore) Append(_ context.Context, contacts ...domain.EnrichedContact) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.contacts = append(m.contacts, contacts...)
	return nil
}

func (m *mockContactStore) List(_ context.Context) ([]domain.EnrichedContact, error) {
	return m.contacts, nil
}

// mockContactSink implements driven.ContactSink.
type mockContactSink struct {
	written  []domain.EnrichedContact
	calls    int
	location string
	err      error
}

func (m *mockContactSink) Write(_ context.Context, contacts []domain.EnrichedContact) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	m.written = contacts
	return m.location, nil
}

func newObservedLogger() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core)), logs
}

func strPtr(s string) *string {
	return &s
}
