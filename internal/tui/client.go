package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dashgrid/internal/api"
	"dashgrid/internal/calendar"
	"dashgrid/internal/football"
)

// Client talks to the dashboard HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFrom(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFrom extracts the API's error message from a non-200 response.
func (c *Client) errorFrom(resp *http.Response) error {
	var apiErr api.ErrorResponse
	if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// GetPanels fetches the stored layout.
func (c *Client) GetPanels(ctx context.Context) (api.Layout, error) {
	var out api.PanelsResponse
	if err := c.getJSON(ctx, "/api/panels", &out); err != nil {
		return nil, fmt.Errorf("fetching panels: %w", err)
	}
	return out.Panels, nil
}

// SavePanels posts the full layout snapshot.
func (c *Client) SavePanels(ctx context.Context, layout api.Layout) error {
	body, err := json.Marshal(api.SavePanelsRequest{Panels: layout})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/panels", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("saving panels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("saving panels: %w", c.errorFrom(resp))
	}
	return nil
}

// GetNotes fetches every note, newest first.
func (c *Client) GetNotes(ctx context.Context) ([]api.Note, error) {
	var out []api.Note
	if err := c.getJSON(ctx, "/api/notes", &out); err != nil {
		return nil, fmt.Errorf("fetching notes: %w", err)
	}
	return out, nil
}

// CalendarEvents fetches the calendar widget's data.
func (c *Client) CalendarEvents(ctx context.Context) (calendar.EventsResponse, error) {
	var out calendar.EventsResponse
	if err := c.getJSON(ctx, "/api/calendar/events", &out); err != nil {
		return calendar.EventsResponse{}, fmt.Errorf("fetching calendar events: %w", err)
	}
	return out, nil
}

// Football fetches the football widget's data.
func (c *Client) Football(ctx context.Context) (football.Data, error) {
	var out football.Data
	if err := c.getJSON(ctx, "/api/football", &out); err != nil {
		return football.Data{}, fmt.Errorf("fetching football data: %w", err)
	}
	return out, nil
}

// Health checks that the server is reachable.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]string
	if err := c.getJSON(ctx, "/api/health", &out); err != nil {
		return err
	}
	if out["status"] != "ok" {
		return fmt.Errorf("server unhealthy: %s", out["status"])
	}
	return nil
}
