package calendar

import (
	"context"
	"time"
)

// MockProvider serves a fixed set of events relative to its clock. It backs
// the calendar widget when no Google API key is configured.
type MockProvider struct {
	// Now lets tests pin the clock; nil means time.Now
	Now func() time.Time
}

// IsAuthenticated always reports false for the mock.
func (p *MockProvider) IsAuthenticated() bool { return false }

// Events returns the deterministic mock schedule: a standup and a review
// today, a client meeting tomorrow and a code review in three days.
func (p *MockProvider) Events(ctx context.Context, maxResults int) ([]Event, error) {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	at := func(daysAhead, hour, minute int) time.Time {
		day := now.AddDate(0, 0, daysAhead)
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	}

	events := []Event{
		{
			ID:          "mock-0-1",
			Title:       "Team Standup",
			Description: "Daily team synchronization meeting",
			Start:       at(0, 9, 0),
			End:         at(0, 9, 30),
			Location:    "Conference Room A",
			Status:      "confirmed",
		},
		{
			ID:          "mock-0-2",
			Title:       "Project Review",
			Description: "Review progress on dashboard project",
			Start:       at(0, 14, 0),
			End:         at(0, 15, 0),
			Location:    "Online",
			Status:      "confirmed",
		},
		{
			ID:          "mock-1-1",
			Title:       "Client Meeting",
			Description: "Discuss project requirements and timeline",
			Start:       at(1, 10, 0),
			End:         at(1, 11, 0),
			Location:    "Client Office",
			Status:      "confirmed",
		},
		{
			ID:          "mock-3-1",
			Title:       "Code Review Session",
			Description: "Review recent code changes and improvements",
			Start:       at(3, 16, 0),
			End:         at(3, 17, 0),
			Location:    "Development Lab",
			Status:      "confirmed",
		},
	}

	if maxResults > 0 && len(events) > maxResults {
		events = events[:maxResults]
	}
	return events, nil
}
