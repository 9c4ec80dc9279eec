// Package calendar serves upcoming events, from the Google Calendar API when
// credentials are configured and from deterministic mock data otherwise.
package calendar

import "time"

// Event is one calendar entry, shared between the HTTP API and the client.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	AllDay      bool      `json:"allDay,omitempty"`
}

// EventsResponse is the wire form of GET /api/calendar/events.
type EventsResponse struct {
	Success bool               `json:"success"`
	Events  []Event            `json:"events"`
	Grouped map[string][]Event `json:"groupedEvents"`
	Total   int                `json:"total"`
	Source  string             `json:"source"`
}

// GroupByDate buckets events under their start date (YYYY-MM-DD).
func GroupByDate(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)
	for _, e := range events {
		day := e.Start.Format("2006-01-02")
		grouped[day] = append(grouped[day], e)
	}
	return grouped
}
