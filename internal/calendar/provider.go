package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Provider fetches upcoming events from some backing source.
type Provider interface {
	// IsAuthenticated reports whether the provider has real credentials.
	IsAuthenticated() bool
	// Events returns up to maxResults upcoming events, soonest first.
	Events(ctx context.Context, maxResults int) ([]Event, error)
}

const googleAPIBase = "https://www.googleapis.com/calendar/v3"

// GoogleProvider reads events from the Google Calendar API using an API key.
type GoogleProvider struct {
	apiKey     string
	calendarID string
	baseURL    string
	client     *http.Client
}

// NewGoogleProvider creates a provider for the given calendar. An empty
// calendarID defaults to "primary".
func NewGoogleProvider(apiKey, calendarID string) *GoogleProvider {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleProvider{
		apiKey:     apiKey,
		calendarID: calendarID,
		baseURL:    googleAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsAuthenticated reports whether an API key is configured.
func (p *GoogleProvider) IsAuthenticated() bool {
	return p.apiKey != ""
}

// googleEventList mirrors the fields we use from the events.list response.
type googleEventList struct {
	Items []struct {
		ID          string `json:"id"`
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Status      string `json:"status"`
		Start       struct {
			DateTime time.Time `json:"dateTime"`
			Date     string    `json:"date"`
		} `json:"start"`
		End struct {
			DateTime time.Time `json:"dateTime"`
			Date     string    `json:"date"`
		} `json:"end"`
	} `json:"items"`
}

// Events lists upcoming events for the next 30 days, starting from midnight
// today so that running all-day events are included.
func (p *GoogleProvider) Events(ctx context.Context, maxResults int) ([]Event, error) {
	if !p.IsAuthenticated() {
		return nil, fmt.Errorf("google calendar: no API key configured")
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("timeMin", dayStart.Format(time.RFC3339))
	params.Set("timeMax", dayStart.AddDate(0, 0, 30).Format(time.RFC3339))
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s",
		p.baseURL, url.PathEscape(p.calendarID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google calendar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google calendar: unexpected status %d", resp.StatusCode)
	}

	var list googleEventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding google calendar response: %w", err)
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		e := Event{
			ID:          item.ID,
			Title:       item.Summary,
			Description: item.Description,
			Location:    item.Location,
			Status:      item.Status,
			Start:       item.Start.DateTime,
			End:         item.End.DateTime,
		}
		// All-day events carry a date instead of a dateTime
		if e.Start.IsZero() && item.Start.Date != "" {
			if day, err := time.ParseInLocation("2006-01-02", item.Start.Date, now.Location()); err == nil {
				e.Start = day
				e.AllDay = true
			}
		}
		if e.End.IsZero() && item.End.Date != "" {
			if day, err := time.ParseInLocation("2006-01-02", item.End.Date, now.Location()); err == nil {
				e.End = day
			}
		}
		events = append(events, e)
	}
	return events, nil
}
