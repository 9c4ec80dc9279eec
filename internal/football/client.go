package football

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dashgrid/internal/config"
)

const defaultBaseURL = "https://v3.football.api-sports.io"

// Client fetches football data for one tracked team, league and player.
// Every endpoint falls back to mock data when no API key is configured or
// the upstream request fails.
type Client struct {
	apiKey   string
	baseURL  string
	teamID   int
	leagueID int
	playerID int
	season   int
	client   *http.Client
}

// NewClient creates a football client from config.
func NewClient(cfg config.FootballConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  defaultBaseURL,
		teamID:   cfg.TeamID,
		leagueID: cfg.LeagueID,
		playerID: cfg.PlayerID,
		season:   cfg.Season,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// hasKey reports whether real API calls are possible.
func (c *Client) hasKey() bool { return c.apiKey != "" }

// get performs one API request and decodes the "response" envelope into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", "v3.football.api-sports.io")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("football API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("football API: unexpected status %d", resp.StatusCode)
	}

	envelope := struct {
		Response json.RawMessage `json:"response"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding football API response: %w", err)
	}
	return json.Unmarshal(envelope.Response, out)
}

// TeamInfo returns the tracked team's profile.
func (c *Client) TeamInfo(ctx context.Context) TeamInfo {
	if c.hasKey() {
		var infos []TeamInfo
		err := c.get(ctx, fmt.Sprintf("/teams?id=%d", c.teamID), &infos)
		if err == nil && len(infos) > 0 {
			return infos[0]
		}
		slog.Warn("team info fetch failed, serving mock data", "error", err)
	}
	return mockTeamInfo(c.teamID)
}

// Fixtures returns the next n scheduled matches.
func (c *Client) Fixtures(ctx context.Context, next int) []Fixture {
	if c.hasKey() {
		var fixtures []Fixture
		err := c.get(ctx, fmt.Sprintf("/fixtures?team=%d&next=%d", c.teamID, next), &fixtures)
		if err == nil && len(fixtures) > 0 {
			return fixtures
		}
		slog.Warn("fixtures fetch failed, serving mock data", "error", err)
	}
	return mockFixtures(c.teamID, time.Now())
}

// Results returns the last n played matches.
func (c *Client) Results(ctx context.Context, last int) []Fixture {
	if c.hasKey() {
		var results []Fixture
		err := c.get(ctx, fmt.Sprintf("/fixtures?team=%d&last=%d", c.teamID, last), &results)
		if err == nil && len(results) > 0 {
			return results
		}
		slog.Warn("results fetch failed, serving mock data", "error", err)
	}
	return mockResults(c.teamID, time.Now())
}

// standingsEnvelope mirrors the deeply nested /standings response.
type standingsEnvelope struct {
	League struct {
		Standings [][]struct {
			Rank   int  `json:"rank"`
			Points int  `json:"points"`
			Team   Team `json:"team"`
			All    struct {
				Played int `json:"played"`
				Win    int `json:"win"`
				Draw   int `json:"draw"`
				Lose   int `json:"lose"`
			} `json:"all"`
		} `json:"standings"`
	} `json:"league"`
}

// Standings returns the tracked team's league table line.
func (c *Client) Standings(ctx context.Context) Standing {
	if c.hasKey() {
		var envelopes []standingsEnvelope
		err := c.get(ctx,
			fmt.Sprintf("/standings?league=%d&season=%d", c.leagueID, c.season), &envelopes)
		if err == nil && len(envelopes) > 0 && len(envelopes[0].League.Standings) > 0 {
			for _, line := range envelopes[0].League.Standings[0] {
				if line.Team.ID == c.teamID {
					return Standing{
						Position: line.Rank,
						Points:   line.Points,
						Played:   line.All.Played,
						Wins:     line.All.Win,
						Draws:    line.All.Draw,
						Losses:   line.All.Lose,
					}
				}
			}
		}
		slog.Warn("standings fetch failed, serving mock data", "error", err)
	}
	return mockStanding()
}

// PlayerStats returns the tracked player's season line.
func (c *Client) PlayerStats(ctx context.Context) PlayerStats {
	if c.hasKey() {
		var stats []PlayerStats
		err := c.get(ctx,
			fmt.Sprintf("/players?id=%d&season=%d", c.playerID, c.season), &stats)
		if err == nil && len(stats) > 0 {
			return stats[0]
		}
		slog.Warn("player stats fetch failed, serving mock data", "error", err)
	}
	return mockPlayerStats(c.playerID)
}

// All fetches every widget section in one call.
func (c *Client) All(ctx context.Context) Data {
	source := "mock"
	if c.hasKey() {
		source = "api"
	}
	return Data{
		TeamInfo:    c.TeamInfo(ctx),
		Standings:   c.Standings(ctx),
		Fixtures:    c.Fixtures(ctx, 3),
		Results:     c.Results(ctx, 3),
		PlayerStats: c.PlayerStats(ctx),
		Source:      source,
	}
}
