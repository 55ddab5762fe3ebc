package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

const (
	DefaultBoundaryLimit  = 20
	DefaultScatterMinRuns = 1000
)

// EraBucket summarizes one decade of span_start values for a metric.
type EraBucket struct {
	Decade      string
	DecadeStart int
	Min         float64
	Q1          float64
	Median      float64
	Q3          float64
	Max         float64
	Mean        float64
	Count       int
}

type CountryContribution struct {
	Country       string
	PlayerCount   int
	TotalRuns     int
	TotalWickets  int
	AvgBattingAvg float64
	AvgBowlingAvg float64
}

type BoundaryHitter struct {
	Name            string
	Country         string
	Fours           int
	Sixes           int
	TotalBoundaries int
	Runs            int
	Matches         int
}

type ScatterPoint struct {
	Name       string
	Country    string
	Average    float64
	StrikeRate float64
	Runs       int
	Matches    int
}

type AnalyticsService struct {
	statRepo playerstats.Repository
}

func NewAnalyticsService(statRepo playerstats.Repository) *AnalyticsService {
	return &AnalyticsService{statRepo: statRepo}
}

func (s *AnalyticsService) statsForFormat(ctx context.Context, rawFormat string) ([]playerstats.FormatStat, error) {
	format, err := parseFormatInput(rawFormat)
	if err != nil {
		return nil, err
	}
	stats, err := s.statRepo.ListByFormat(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("list stats by format: %w", err)
	}
	return stats, nil
}

// EraDistribution buckets records by the decade of span_start, ascending.
// Records without a span start, or with a non-positive metric, are ignored.
func (s *AnalyticsService) EraDistribution(ctx context.Context, rawFormat, rawMetric string) ([]EraBucket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.EraDistribution",
		attribute.String("format", rawFormat),
		attribute.String("metric", rawMetric),
	)
	defer span.End()

	metric, err := parseMetricInput(rawMetric, playerstats.MetricAverage)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsForFormat(ctx, rawFormat)
	if err != nil {
		return nil, err
	}

	byDecade := make(map[int][]float64)
	for _, stat := range stats {
		value := metric.Value(stat)
		if !isPositiveFinite(value) {
			continue
		}
		if stat.SpanStart == nil || *stat.SpanStart == 0 {
			continue
		}
		decade := floorDecade(*stat.SpanStart)
		byDecade[decade] = append(byDecade[decade], value)
	}

	decades := make([]int, 0, len(byDecade))
	for decade := range byDecade {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	out := make([]EraBucket, 0, len(decades))
	for _, decade := range decades {
		out = append(out, summarize(decade, byDecade[decade]))
	}
	return out, nil
}

func floorDecade(year int) int {
	decade := (year / 10) * 10
	if year < 0 && year%10 != 0 {
		decade -= 10
	}
	return decade
}

// summarize computes positional quartiles without interpolation: the value at
// index floor(n*f) of the sorted sample.
func summarize(decade int, values []float64) EraBucket {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return EraBucket{
		Decade:      strconv.Itoa(decade) + "s",
		DecadeStart: decade,
		Min:         sorted[0],
		Q1:          sorted[quantileIndex(n, 0.25)],
		Median:      sorted[quantileIndex(n, 0.5)],
		Q3:          sorted[quantileIndex(n, 0.75)],
		Max:         sorted[n-1],
		Mean:        sum / float64(n),
		Count:       n,
	}
}

func quantileIndex(n int, fraction float64) int {
	idx := int(float64(n) * fraction)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// CountryContribution counts records, not distinct players, per country.
func (s *AnalyticsService) CountryContribution(ctx context.Context, rawFormat string) ([]CountryContribution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.CountryContribution")
	defer span.End()

	stats, err := s.statsForFormat(ctx, rawFormat)
	if err != nil {
		return nil, err
	}

	totals := aggregateCountries(stats)
	out := make([]CountryContribution, 0, len(totals))
	for _, t := range totals {
		out = append(out, CountryContribution{
			Country:       t.country,
			PlayerCount:   t.records,
			TotalRuns:     t.runs,
			TotalWickets:  t.wickets,
			AvgBattingAvg: mean(t.battingAvgSum, t.battingAvgN),
			AvgBowlingAvg: mean(t.bowlingAvgSum, t.bowlingAvgN),
		})
	}
	return out, nil
}

func (s *AnalyticsService) TopBoundaryHitters(ctx context.Context, rawFormat string, limit int) ([]BoundaryHitter, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TopBoundaryHitters")
	defer span.End()

	if limit == 0 {
		limit = DefaultBoundaryLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	stats, err := s.statsForFormat(ctx, rawFormat)
	if err != nil {
		return nil, err
	}

	out := make([]BoundaryHitter, 0, len(stats))
	for _, stat := range stats {
		if stat.Fours <= 0 && stat.Sixes <= 0 {
			continue
		}
		out = append(out, BoundaryHitter{
			Name:            stat.PlayerName,
			Country:         stat.PlayerCountry,
			Fours:           stat.Fours,
			Sixes:           stat.Sixes,
			TotalBoundaries: stat.Fours + stat.Sixes,
			Runs:            stat.Runs,
			Matches:         stat.Matches,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalBoundaries > out[j].TotalBoundaries
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// StrikeRateVsAverage projects every record at or above minRuns that has both a
// positive average and strike rate. Nothing is aggregated or truncated.
func (s *AnalyticsService) StrikeRateVsAverage(ctx context.Context, rawFormat string, minRuns int) ([]ScatterPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.StrikeRateVsAverage", attribute.Int("min_runs", minRuns))
	defer span.End()

	if minRuns < 0 {
		return nil, fmt.Errorf("%w: minRuns must not be negative", ErrInvalidInput)
	}
	stats, err := s.statsForFormat(ctx, rawFormat)
	if err != nil {
		return nil, err
	}

	out := make([]ScatterPoint, 0, len(stats))
	for _, stat := range stats {
		if stat.Runs < minRuns || !isPositiveFinite(stat.Average) || !isPositiveFinite(stat.StrikeRate) {
			continue
		}
		out = append(out, ScatterPoint{
			Name:       stat.PlayerName,
			Country:    stat.PlayerCountry,
			Average:    stat.Average,
			StrikeRate: stat.StrikeRate,
			Runs:       stat.Runs,
			Matches:    stat.Matches,
		})
	}
	return out, nil
}
