package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// rankByMetric keeps records whose metric is a positive finite number and that
// pass keep, sorts them descending with input order breaking ties, and
// truncates to limit. A limit <= 0 keeps everything.
func rankByMetric(stats []playerstats.FormatStat, metric playerstats.Metric, limit int, keep func(playerstats.FormatStat) bool) []playerstats.FormatStat {
	out := make([]playerstats.FormatStat, 0, len(stats))
	for _, stat := range stats {
		if !isPositiveFinite(metric.Value(stat)) {
			continue
		}
		if keep != nil && !keep(stat) {
			continue
		}
		out = append(out, stat)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return metric.Value(out[i]) > metric.Value(out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// countryTotals is the per-country aggregate shared by the contribution view
// and the dashboard.
type countryTotals struct {
	country       string
	records       int
	players       map[string]struct{}
	runs          int
	wickets       int
	battingAvgSum float64
	battingAvgN   int
	bowlingAvgSum float64
	bowlingAvgN   int
}

// aggregateCountries groups records by their denormalized country, keeping
// first-seen order, then sorts descending by summed runs.
func aggregateCountries(stats []playerstats.FormatStat) []*countryTotals {
	index := make(map[string]*countryTotals)
	order := make([]*countryTotals, 0)
	for _, stat := range stats {
		totals, ok := index[stat.PlayerCountry]
		if !ok {
			totals = &countryTotals{country: stat.PlayerCountry, players: make(map[string]struct{})}
			index[stat.PlayerCountry] = totals
			order = append(order, totals)
		}
		totals.records++
		totals.players[stat.PlayerName] = struct{}{}
		totals.runs += stat.Runs
		totals.wickets += stat.Wickets
		if stat.Average > 0 {
			totals.battingAvgSum += stat.Average
			totals.battingAvgN++
		}
		if stat.BowlingAverage > 0 {
			totals.bowlingAvgSum += stat.BowlingAverage
			totals.bowlingAvgN++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].runs > order[j].runs
	})
	return order
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func parseFormatInput(v string) (playerstats.Format, error) {
	if v == "" {
		return playerstats.DefaultFormat, nil
	}
	format, err := playerstats.ParseFormat(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return format, nil
}

func parseMetricInput(v string, fallback playerstats.Metric) (playerstats.Metric, error) {
	if v == "" {
		return fallback, nil
	}
	metric, err := playerstats.ParseMetric(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return metric, nil
}
