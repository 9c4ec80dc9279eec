package football

import (
	"context"
	"sync"
	"time"
)

// cacheTTL bounds staleness between background refreshes.
const cacheTTL = 5 * time.Minute

// Service caches the aggregated football data in front of the client.
type Service struct {
	client *Client

	mu        sync.Mutex
	cached    *Data
	fetchedAt time.Time
}

// NewService creates a caching service around a football client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// SetClient swaps the upstream client and invalidates the cache, so the next
// read fetches with the new settings.
func (s *Service) SetClient(client *Client) {
	s.mu.Lock()
	s.client = client
	s.cached = nil
	s.mu.Unlock()
}

// Data returns the aggregate, serving from cache while it is fresh.
func (s *Service) Data(ctx context.Context) Data {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < cacheTTL {
		data := *s.cached
		s.mu.Unlock()
		return data
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh bypasses the cache and refetches everything.
func (s *Service) Refresh(ctx context.Context) Data {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	data := client.All(ctx)

	s.mu.Lock()
	s.cached = &data
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return data
}
