package snapshotstore

import (
	"time"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
)

type playerRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	PrimaryRole string `json:"primary_role,omitempty"`
}

type statRecord struct {
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	PlayerCountry string `json:"player_country"`
	Format        string `json:"format"`
	SpanStart     *int   `json:"span_start"`
	SpanEnd       *int   `json:"span_end"`

	Matches    int     `json:"matches"`
	Innings    int     `json:"innings"`
	NotOut     int     `json:"not_out"`
	Runs       int     `json:"runs"`
	Highest    string  `json:"highest"`
	Average    float64 `json:"average"`
	BallsFaced int     `json:"balls_faced"`
	StrikeRate float64 `json:"strike_rate"`
	Hundreds   int     `json:"hundreds"`
	Fifties    int     `json:"fifties"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`

	Wickets           int     `json:"wickets"`
	BowlingAverage    float64 `json:"bowling_average"`
	BowlingEconomy    float64 `json:"bowling_economy"`
	BowlingStrikeRate float64 `json:"bowling_strike_rate"`
	BestBowling       string  `json:"best_bowling"`
	FiveWickets       int     `json:"five_wickets"`
	TenWickets        int     `json:"ten_wickets"`

	Catches   int `json:"catches"`
	Stumpings int `json:"stumpings"`
}

type manifestRecord struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Players     int            `json:"players"`
	Stats       int            `json:"stats"`
	Sources     []sourceRecord `json:"sources"`
}

type sourceRecord struct {
	Domain  string `json:"domain"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func toPlayerRecords(players []player.Player) []playerRecord {
	out := make([]playerRecord, 0, len(players))
	for _, p := range players {
		out = append(out, playerRecord{
			ID:          p.ID,
			Name:        p.Name,
			Country:     p.Country,
			PrimaryRole: string(p.PrimaryRole),
		})
	}
	return out
}

func fromPlayerRecords(records []playerRecord) []player.Player {
	out := make([]player.Player, 0, len(records))
	for _, r := range records {
		out = append(out, player.Player{
			ID:          r.ID,
			Name:        r.Name,
			Country:     r.Country,
			PrimaryRole: player.Role(r.PrimaryRole),
		})
	}
	return out
}

func toStatRecords(stats []playerstats.FormatStat) []statRecord {
	out := make([]statRecord, 0, len(stats))
	for _, s := range stats {
		out = append(out, statRecord{
			PlayerID:          s.PlayerID,
			PlayerName:        s.PlayerName,
			PlayerCountry:     s.PlayerCountry,
			Format:            string(s.Format),
			SpanStart:         s.SpanStart,
			SpanEnd:           s.SpanEnd,
			Matches:           s.Matches,
			Innings:           s.Innings,
			NotOut:            s.NotOut,
			Runs:              s.Runs,
			Highest:           s.Highest,
			Average:           s.Average,
			BallsFaced:        s.BallsFaced,
			StrikeRate:        s.StrikeRate,
			Hundreds:          s.Hundreds,
			Fifties:           s.Fifties,
			Fours:             s.Fours,
			Sixes:             s.Sixes,
			Wickets:           s.Wickets,
			BowlingAverage:    s.BowlingAverage,
			BowlingEconomy:    s.BowlingEconomy,
			BowlingStrikeRate: s.BowlingStrikeRate,
			BestBowling:       s.BestBowling,
			FiveWickets:       s.FiveWickets,
			TenWickets:        s.TenWickets,
			Catches:           s.Catches,
			Stumpings:         s.Stumpings,
		})
	}
	return out
}

func fromStatRecords(records []statRecord) []playerstats.FormatStat {
	out := make([]playerstats.FormatStat, 0, len(records))
	for _, r := range records {
		out = append(out, playerstats.FormatStat{
			PlayerID:          r.PlayerID,
			PlayerName:        r.PlayerName,
			PlayerCountry:     r.PlayerCountry,
			Format:            playerstats.Format(r.Format),
			SpanStart:         r.SpanStart,
			SpanEnd:           r.SpanEnd,
			Matches:           r.Matches,
			Innings:           r.Innings,
			NotOut:            r.NotOut,
			Runs:              r.Runs,
			Highest:           r.Highest,
			Average:           r.Average,
			BallsFaced:        r.BallsFaced,
			StrikeRate:        r.StrikeRate,
			Hundreds:          r.Hundreds,
			Fifties:           r.Fifties,
			Fours:             r.Fours,
			Sixes:             r.Sixes,
			Wickets:           r.Wickets,
			BowlingAverage:    r.BowlingAverage,
			BowlingEconomy:    r.BowlingEconomy,
			BowlingStrikeRate: r.BowlingStrikeRate,
			BestBowling:       r.BestBowling,
			FiveWickets:       r.FiveWickets,
			TenWickets:        r.TenWickets,
			Catches:           r.Catches,
			Stumpings:         r.Stumpings,
		})
	}
	return out
}

func toManifestRecord(m snapshot.Manifest) manifestRecord {
	sources := make([]sourceRecord, 0, len(m.Sources))
	for _, s := range m.Sources {
		sources = append(sources, sourceRecord(s))
	}
	return manifestRecord{
		RunID:       m.RunID,
		GeneratedAt: m.GeneratedAt.UTC(),
		Players:     m.PlayerCount,
		Stats:       m.StatCount,
		Sources:     sources,
	}
}

func fromManifestRecord(r manifestRecord) snapshot.Manifest {
	sources := make([]snapshot.SourceStatus, 0, len(r.Sources))
	for _, s := range r.Sources {
		sources = append(sources, snapshot.SourceStatus(s))
	}
	return snapshot.Manifest{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt,
		PlayerCount: r.Players,
		StatCount:   r.Stats,
		Sources:     sources,
	}
}
