package football

import "time"

// Mock data mirrors the real API's shapes so the widget renders identically
// with or without credentials.

func mockTeamInfo(teamID int) TeamInfo {
	return TeamInfo{
		Team: Team{
			ID:      teamID,
			Name:    "Barcelona",
			Code:    "BAR",
			Country: "Spain",
			Founded: 1899,
			Logo:    "https://media.api-sports.io/football/teams/529.png",
		},
		Venue: Venue{
			ID:       1492,
			Name:     "Camp Nou",
			City:     "Barcelona",
			Capacity: 99354,
		},
	}
}

func mockFixtures(teamID int, now time.Time) []Fixture {
	barca := Team{ID: teamID, Name: "Barcelona", Logo: "https://media.api-sports.io/football/teams/529.png"}

	clasico := Fixture{}
	clasico.Fixture.ID = 1001
	clasico.Fixture.Date = now.AddDate(0, 0, 3)
	clasico.Fixture.Status.Short = "NS"
	clasico.Teams.Home = barca
	clasico.Teams.Away = Team{ID: 541, Name: "Real Madrid", Logo: "https://media.api-sports.io/football/teams/541.png"}
	clasico.League.Name = "La Liga"
	clasico.League.Logo = "https://media.api-sports.io/football/leagues/140.png"

	derbi := Fixture{}
	derbi.Fixture.ID = 1002
	derbi.Fixture.Date = now.AddDate(0, 0, 7)
	derbi.Fixture.Status.Short = "NS"
	derbi.Teams.Home = Team{ID: 530, Name: "Atletico Madrid", Logo: "https://media.api-sports.io/football/teams/530.png"}
	derbi.Teams.Away = barca
	derbi.League.Name = "La Liga"
	derbi.League.Logo = "https://media.api-sports.io/football/leagues/140.png"

	return []Fixture{clasico, derbi}
}

func mockResults(teamID int, now time.Time) []Fixture {
	home, away := 3, 1

	result := Fixture{}
	result.Fixture.ID = 1003
	result.Fixture.Date = now.AddDate(0, 0, -3)
	result.Fixture.Status.Short = "FT"
	result.Teams.Home = Team{ID: teamID, Name: "Barcelona", Logo: "https://media.api-sports.io/football/teams/529.png"}
	result.Teams.Away = Team{ID: 532, Name: "Valencia", Logo: "https://media.api-sports.io/football/teams/532.png"}
	result.Goals.Home = &home
	result.Goals.Away = &away
	result.League.Name = "La Liga"
	result.League.Logo = "https://media.api-sports.io/football/leagues/140.png"

	return []Fixture{result}
}

func mockPlayerStats(playerID int) PlayerStats {
	stats := PlayerStats{
		Player: Player{
			ID:          playerID,
			Name:        "Lamine Yamal",
			Age:         17,
			Nationality: "Spain",
			Photo:       "https://media.api-sports.io/football/players/276158.png",
		},
	}
	line := PlayerSeasonStats{}
	line.Games.Appearances = 25
	line.Games.Minutes = 1980
	line.Games.Position = "Attacker"
	line.Goals.Total = 8
	line.Goals.Assists = 12
	stats.Statistics = []PlayerSeasonStats{line}
	return stats
}

func mockStanding() Standing {
	return Standing{
		Position: 2,
		Points:   72,
		Played:   28,
		Wins:     22,
		Draws:    6,
		Losses:   0,
	}
}
