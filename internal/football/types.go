// Package football serves team, fixture and player data from the
// api-sports.io football API, with mock fallbacks when no key is configured
// or the upstream fails.
package football

import "time"

// Team identifies one club.
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Country string `json:"country,omitempty"`
	Founded int    `json:"founded,omitempty"`
	Logo    string `json:"logo"`
}

// Venue is a club's home ground.
type Venue struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// TeamInfo is the /teams response entry.
type TeamInfo struct {
	Team  Team  `json:"team"`
	Venue Venue `json:"venue"`
}

// FixtureMeta carries the schedule part of a fixture.
type FixtureMeta struct {
	ID     int       `json:"id"`
	Date   time.Time `json:"date"`
	Status struct {
		Short string `json:"short"`
	} `json:"status"`
}

// Fixture is one match, upcoming or played.
type Fixture struct {
	Fixture FixtureMeta `json:"fixture"`
	Teams   struct {
		Home Team `json:"home"`
		Away Team `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	League struct {
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"league"`
}

// Standing is the tracked team's league table line.
type Standing struct {
	Position int `json:"position"`
	Points   int `json:"points"`
	Played   int `json:"played"`
	Wins     int `json:"wins"`
	Draws    int `json:"draws"`
	Losses   int `json:"losses"`
}

// Player identifies one player.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

// PlayerSeasonStats is one season line for a player.
type PlayerSeasonStats struct {
	Games struct {
		Appearances int    `json:"appearances"`
		Minutes     int    `json:"minutes"`
		Position    string `json:"position"`
	} `json:"games"`
	Goals struct {
		Total   int `json:"total"`
		Assists int `json:"assists"`
	} `json:"goals"`
}

// PlayerStats is the /players response entry.
type PlayerStats struct {
	Player     Player              `json:"player"`
	Statistics []PlayerSeasonStats `json:"statistics"`
}

// Data aggregates everything the football widget shows.
type Data struct {
	TeamInfo    TeamInfo    `json:"teamInfo"`
	Standings   Standing    `json:"standings"`
	Fixtures    []Fixture   `json:"fixtures"`
	Results     []Fixture   `json:"results"`
	PlayerStats PlayerStats `json:"playerStats"`
	Source      string      `json:"source"`
}
