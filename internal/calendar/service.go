package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultMaxResults caps how many events one fetch returns.
const DefaultMaxResults = 10

// cacheTTL bounds how stale served events may be between refreshes.
const cacheTTL = 5 * time.Minute

// Service fetches events through a real provider when one is authenticated,
// falls back to mock data when the provider fails, and caches the result.
type Service struct {
	provider Provider
	mock     *MockProvider

	mu        sync.Mutex
	cached    []Event
	source    string
	fetchedAt time.Time
}

// NewService creates a calendar service. A nil or unauthenticated provider
// means every fetch serves mock data.
func NewService(provider Provider) *Service {
	return &Service{provider: provider, mock: &MockProvider{}}
}

// SetProvider swaps the upstream provider and invalidates the cache, so the
// next read fetches through the new credentials.
func (s *Service) SetProvider(provider Provider) {
	s.mu.Lock()
	s.provider = provider
	s.cached = nil
	s.mu.Unlock()
}

// Events returns the current event set and its source tag ("google" or
// "mock"), serving from cache while it is fresh.
func (s *Service) Events(ctx context.Context) ([]Event, string, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < cacheTTL {
		events, source := s.cached, s.source
		s.mu.Unlock()
		return events, source, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh bypasses the cache and refetches from the provider. Provider
// failures fall back to mock data rather than surfacing an error; the
// dashboard always has something to show.
func (s *Service) Refresh(ctx context.Context) ([]Event, string, error) {
	events, source := s.fetch(ctx)

	s.mu.Lock()
	s.cached = events
	s.source = source
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return events, source, nil
}

func (s *Service) fetch(ctx context.Context) ([]Event, string) {
	s.mu.Lock()
	provider := s.provider
	s.mu.Unlock()

	if provider != nil && provider.IsAuthenticated() {
		events, err := provider.Events(ctx, DefaultMaxResults)
		if err == nil {
			return events, "google"
		}
		slog.Warn("calendar provider failed, serving mock events", "error", err)
	}

	events, _ := s.mock.Events(ctx, DefaultMaxResults)
	return events, "mock"
}

// Response assembles the full wire response for the events endpoint.
func (s *Service) Response(ctx context.Context) (EventsResponse, error) {
	events, source, err := s.Events(ctx)
	if err != nil {
		return EventsResponse{}, err
	}
	return EventsResponse{
		Success: true,
		Events:  events,
		Grouped: GroupByDate(events),
		Total:   len(events),
		Source:  source,
	}, nil
}
