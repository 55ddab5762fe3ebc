package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

const (
	dashboardTopPerformers    = 5
	dashboardTopCountries     = 10
	dashboardMinRunsOnAverage = 1000
)

type DashboardSummary struct {
	TotalPlayers   int
	TotalStats     int
	TotalRuns      int
	TotalWickets   int
	TotalMatches   int
	TotalCenturies int
	TotalFifties   int
}

type DashboardCountry struct {
	Country      string
	PlayerCount  int
	TotalRuns    int
	TotalWickets int
}

type Dashboard struct {
	Format          playerstats.Format
	Summary         DashboardSummary
	TopRunScorers   []playerstats.FormatStat
	TopWicketTakers []playerstats.FormatStat
	TopAverages     []playerstats.FormatStat
	TopCountries    []DashboardCountry
}

type DashboardService struct {
	playerRepo player.Repository
	statRepo   playerstats.Repository
}

func NewDashboardService(playerRepo player.Repository, statRepo playerstats.Repository) *DashboardService {
	return &DashboardService{
		playerRepo: playerRepo,
		statRepo:   statRepo,
	}
}

// Get builds the dashboard for one format. TotalPlayers and TotalStats cover
// the whole snapshot; everything else is scoped to the format.
func (s *DashboardService) Get(ctx context.Context, rawFormat string) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get", attribute.String("format", rawFormat))
	defer span.End()

	format, err := parseFormatInput(rawFormat)
	if err != nil {
		return Dashboard{}, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list players: %w", err)
	}
	allStats, err := s.statRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list player stats: %w", err)
	}
	stats, err := s.statRepo.ListByFormat(ctx, format)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list stats by format: %w", err)
	}

	summary := DashboardSummary{
		TotalPlayers: len(players),
		TotalStats:   len(allStats),
	}
	for _, stat := range stats {
		summary.TotalRuns += stat.Runs
		summary.TotalWickets += stat.Wickets
		summary.TotalMatches += stat.Matches
		summary.TotalCenturies += stat.Hundreds
		summary.TotalFifties += stat.Fifties
	}

	countries := aggregateCountries(stats)
	if len(countries) > dashboardTopCountries {
		countries = countries[:dashboardTopCountries]
	}
	topCountries := make([]DashboardCountry, 0, len(countries))
	for _, c := range countries {
		topCountries = append(topCountries, DashboardCountry{
			Country:      c.country,
			PlayerCount:  len(c.players),
			TotalRuns:    c.runs,
			TotalWickets: c.wickets,
		})
	}

	topAverages := rankByMetric(stats, playerstats.MetricAverage, dashboardTopPerformers, func(stat playerstats.FormatStat) bool {
		return stat.Runs > dashboardMinRunsOnAverage
	})

	return Dashboard{
		Format:          format,
		Summary:         summary,
		TopRunScorers:   rankByMetric(stats, playerstats.MetricRuns, dashboardTopPerformers, nil),
		TopWicketTakers: rankByMetric(stats, playerstats.MetricWickets, dashboardTopPerformers, nil),
		TopAverages:     topAverages,
		TopCountries:    topCountries,
	}, nil
}
