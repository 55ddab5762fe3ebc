package usecase

import (
	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/repository/memory"
)

func year(v int) *int { return &v }

func fixtureSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Manifest: snapshot.Manifest{RunID: "run-fixture", PlayerCount: 5, StatCount: 7},
		Players: []player.Player{
			{ID: 1, Name: "SR Tendulkar", Country: "INDIA", PrimaryRole: player.RoleAllRounder},
			{ID: 2, Name: "RT Ponting", Country: "AUS", PrimaryRole: player.RoleBatsman},
			{ID: 3, Name: "SK Warne", Country: "AUS", PrimaryRole: player.RoleBowler},
			{ID: 4, Name: "MS Dhoni", Country: "INDIA", PrimaryRole: player.RoleWicketKeeper},
			{ID: 5, Name: "Shahid Afridi", Country: "PAK", PrimaryRole: player.RoleAllRounder},
		},
		Stats: []playerstats.FormatStat{
			{PlayerID: 1, PlayerName: "SR Tendulkar", PlayerCountry: "INDIA", Format: playerstats.FormatODI, SpanStart: year(1989), Matches: 463, Runs: 18426, Average: 44.83, StrikeRate: 86.23, Hundreds: 49, Fifties: 96, Fours: 2016, Sixes: 195, Wickets: 154, BowlingAverage: 44.48},
			{PlayerID: 1, PlayerName: "SR Tendulkar", PlayerCountry: "INDIA", Format: playerstats.FormatTest, SpanStart: year(1989), Matches: 200, Runs: 15921, Average: 53.78, Wickets: 46},
			{PlayerID: 2, PlayerName: "RT Ponting", PlayerCountry: "AUS", Format: playerstats.FormatODI, SpanStart: year(1995), Matches: 375, Runs: 13704, Average: 42.03, StrikeRate: 80.39, Hundreds: 30, Fifties: 82, Fours: 1231, Sixes: 162},
			{PlayerID: 3, PlayerName: "SK Warne", PlayerCountry: "AUS", Format: playerstats.FormatODI, SpanStart: year(1993), Matches: 194, Runs: 1018, Average: 13.05, StrikeRate: 72.04, Wickets: 293, BowlingAverage: 25.73},
			{PlayerID: 4, PlayerName: "MS Dhoni", PlayerCountry: "INDIA", Format: playerstats.FormatODI, SpanStart: year(2004), Matches: 350, Runs: 10773, Average: 50.57, StrikeRate: 87.56, Hundreds: 10, Fifties: 73, Fours: 826, Sixes: 229, Catches: 321, Stumpings: 123},
			{PlayerID: 4, PlayerName: "MS Dhoni", PlayerCountry: "INDIA", Format: playerstats.FormatT20, SpanStart: year(2006), Matches: 98, Runs: 1617, Average: 37.6, StrikeRate: 126.13},
			{PlayerID: 5, PlayerName: "Shahid Afridi", PlayerCountry: "PAK", Format: playerstats.FormatODI, Matches: 398, Runs: 8064, Average: 23.57, StrikeRate: 117.0, Fours: 682, Sixes: 351, Wickets: 395, BowlingAverage: 34.51},
		},
	}
}

func fixtureRepos() (*memory.Catalog, *memory.PlayerRepository, *memory.StatRepository) {
	catalog := memory.NewCatalog(fixtureSnapshot())
	return catalog, memory.NewPlayerRepository(catalog), memory.NewStatRepository(catalog)
}
