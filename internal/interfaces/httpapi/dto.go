package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	PrimaryRole string `json:"primary_role"`
}

type playerWithStatsDTO struct {
	playerDTO
	Stats []formatStatDTO `json:"stats"`
}

type playerPageDTO struct {
	Data       []playerWithStatsDTO `json:"data"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
}

type formatStatDTO struct {
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

type comparisonDTO struct {
	playerDTO
	Stats map[string]map[string]float64 `json:"stats"`
}

type eraBucketDTO struct {
	Decade string  `json:"decade"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

type countryContributionDTO struct {
	Country       string  `json:"country"`
	PlayerCount   int     `json:"player_count"`
	TotalRuns     int     `json:"total_runs"`
	TotalWickets  int     `json:"total_wickets"`
	AvgBattingAvg float64 `json:"avg_batting_avg"`
	AvgBowlingAvg float64 `json:"avg_bowling_avg"`
}

type boundaryHitterDTO struct {
	Name            string `json:"name"`
	Country         string `json:"country"`
	Fours           int    `json:"fours"`
	Sixes           int    `json:"sixes"`
	TotalBoundaries int    `json:"total_boundaries"`
	Runs            int    `json:"runs"`
	Matches         int    `json:"matches"`
}

type scatterPointDTO struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
	Runs       int     `json:"runs"`
	Matches    int     `json:"matches"`
}

type dashboardSummaryDTO struct {
	TotalPlayers   int `json:"totalPlayers"`
	TotalStats     int `json:"totalStats"`
	TotalRuns      int `json:"totalRuns"`
	TotalWickets   int `json:"totalWickets"`
	TotalMatches   int `json:"totalMatches"`
	TotalCenturies int `json:"totalCenturies"`
	TotalFifties   int `json:"totalFifties"`
}

type dashboardCountryDTO struct {
	Country      string `json:"country"`
	PlayerCount  int    `json:"playerCount"`
	TotalRuns    int    `json:"totalRuns"`
	TotalWickets int    `json:"totalWickets"`
}

type dashboardDTO struct {
	Format          string                `json:"format"`
	Summary         dashboardSummaryDTO   `json:"summary"`
	TopRunScorers   []formatStatDTO       `json:"topRunScorers"`
	TopWicketTakers []formatStatDTO       `json:"topWicketTakers"`
	TopAverages     []formatStatDTO       `json:"topAverages"`
	TopCountries    []dashboardCountryDTO `json:"topCountries"`
}

type healthDTO struct {
	Status      string         `json:"status"`
	Players     int            `json:"players"`
	Stats       int            `json:"stats"`
	RunID       string         `json:"run_id,omitempty"`
	GeneratedAt string         `json:"generated_at,omitempty"`
	Cache       *cacheStatsDTO `json:"cache,omitempty"`
}

type cacheStatsDTO struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Loads   int64 `json:"loads"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Country:     v.Country,
		PrimaryRole: string(v.PrimaryRole),
	}
}

func playerWithStatsToDTO(ctx context.Context, v usecase.PlayerWithStats) playerWithStatsDTO {
	ctx, span := startSpan(ctx, "httpapi.playerWithStatsToDTO")
	defer span.End()

	return playerWithStatsDTO{
		playerDTO: playerToDTO(v.Player),
		Stats:     statsToDTO(ctx, v.Stats),
	}
}

func statsToDTO(ctx context.Context, stats []playerstats.FormatStat) []formatStatDTO {
	_, span := startSpan(ctx, "httpapi.statsToDTO")
	defer span.End()

	out := make([]formatStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, formatStatDTO{
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

func comparisonToDTO(v usecase.PlayerComparison) comparisonDTO {
	stats := make(map[string]map[string]float64, len(v.Formats))
	for format, metrics := range v.Formats {
		values := make(map[string]float64, len(metrics))
		for metric, value := range metrics {
			values[string(metric)] = value
		}
		stats[string(format)] = values
	}
	return comparisonDTO{
		playerDTO: playerToDTO(v.Player),
		Stats:     stats,
	}
}

func dashboardToDTO(ctx context.Context, v usecase.Dashboard) dashboardDTO {
	ctx, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	countries := make([]dashboardCountryDTO, 0, len(v.TopCountries))
	for _, c := range v.TopCountries {
		countries = append(countries, dashboardCountryDTO{
			Country:      c.Country,
			PlayerCount:  c.PlayerCount,
			TotalRuns:    c.TotalRuns,
			TotalWickets: c.TotalWickets,
		})
	}

	return dashboardDTO{
		Format: string(v.Format),
		Summary: dashboardSummaryDTO{
			TotalPlayers:   v.Summary.TotalPlayers,
			TotalStats:     v.Summary.TotalStats,
			TotalRuns:      v.Summary.TotalRuns,
			TotalWickets:   v.Summary.TotalWickets,
			TotalMatches:   v.Summary.TotalMatches,
			TotalCenturies: v.Summary.TotalCenturies,
			TotalFifties:   v.Summary.TotalFifties,
		},
		TopRunScorers:   statsToDTO(ctx, v.TopRunScorers),
		TopWicketTakers: statsToDTO(ctx, v.TopWicketTakers),
		TopAverages:     statsToDTO(ctx, v.TopAverages),
		TopCountries:    countries,
	}
}

func healthToDTO(v usecase.Health) healthDTO {
	out := healthDTO{
		Status:  v.Status,
		Players: v.Players,
		Stats:   v.Stats,
		RunID:   v.RunID,
	}
	if !v.GeneratedAt.IsZero() {
		out.GeneratedAt = v.GeneratedAt.UTC().Format(time.RFC3339)
	}
	if v.Cache != nil {
		out.Cache = &cacheStatsDTO{
			Entries: v.Cache.Entries,
			Hits:    v.Cache.Hits,
			Misses:  v.Cache.Misses,
			Loads:   v.Cache.Loads,
		}
	}
	return out
}
