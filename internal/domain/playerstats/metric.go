package playerstats

import (
	"fmt"
	"sort"
	"strings"
)

// Metric names a numeric FormatStat field that can be ranked, compared or
// distributed.
type Metric string

const (
	MetricMatches           Metric = "matches"
	MetricInnings           Metric = "innings"
	MetricNotOut            Metric = "not_out"
	MetricRuns              Metric = "runs"
	MetricAverage           Metric = "average"
	MetricBallsFaced        Metric = "balls_faced"
	MetricStrikeRate        Metric = "strike_rate"
	MetricHundreds          Metric = "hundreds"
	MetricFifties           Metric = "fifties"
	MetricFours             Metric = "fours"
	MetricSixes             Metric = "sixes"
	MetricWickets           Metric = "wickets"
	MetricBowlingAverage    Metric = "bowling_average"
	MetricBowlingEconomy    Metric = "bowling_economy"
	MetricBowlingStrikeRate Metric = "bowling_strike_rate"
	MetricFiveWickets       Metric = "five_wickets"
	MetricTenWickets        Metric = "ten_wickets"
	MetricCatches           Metric = "catches"
	MetricStumpings         Metric = "stumpings"
)

var metricAccessors = map[Metric]func(FormatStat) float64{
	MetricMatches:           func(s FormatStat) float64 { return float64(s.Matches) },
	MetricInnings:           func(s FormatStat) float64 { return float64(s.Innings) },
	MetricNotOut:            func(s FormatStat) float64 { return float64(s.NotOut) },
	MetricRuns:              func(s FormatStat) float64 { return float64(s.Runs) },
	MetricAverage:           func(s FormatStat) float64 { return s.Average },
	MetricBallsFaced:        func(s FormatStat) float64 { return float64(s.BallsFaced) },
	MetricStrikeRate:        func(s FormatStat) float64 { return s.StrikeRate },
	MetricHundreds:          func(s FormatStat) float64 { return float64(s.Hundreds) },
	MetricFifties:           func(s FormatStat) float64 { return float64(s.Fifties) },
	MetricFours:             func(s FormatStat) float64 { return float64(s.Fours) },
	MetricSixes:             func(s FormatStat) float64 { return float64(s.Sixes) },
	MetricWickets:           func(s FormatStat) float64 { return float64(s.Wickets) },
	MetricBowlingAverage:    func(s FormatStat) float64 { return s.BowlingAverage },
	MetricBowlingEconomy:    func(s FormatStat) float64 { return s.BowlingEconomy },
	MetricBowlingStrikeRate: func(s FormatStat) float64 { return s.BowlingStrikeRate },
	MetricFiveWickets:       func(s FormatStat) float64 { return float64(s.FiveWickets) },
	MetricTenWickets:        func(s FormatStat) float64 { return float64(s.TenWickets) },
	MetricCatches:           func(s FormatStat) float64 { return float64(s.Catches) },
	MetricStumpings:         func(s FormatStat) float64 { return float64(s.Stumpings) },
}

// ParseMetric rejects names outside the accessor table.
func ParseMetric(v string) (Metric, error) {
	metric := Metric(strings.TrimSpace(v))
	if _, ok := metricAccessors[metric]; !ok {
		return "", fmt.Errorf("unknown metric %q", v)
	}
	return metric, nil
}

// ParseMetricList parses a comma separated list, skipping empty items.
func ParseMetricList(v string) ([]Metric, error) {
	parts := strings.Split(v, ",")
	out := make([]Metric, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		metric, err := ParseMetric(part)
		if err != nil {
			return nil, err
		}
		out = append(out, metric)
	}
	return out, nil
}

// Value reads the metric from s. Callers must pass a parsed Metric.
func (m Metric) Value(s FormatStat) float64 {
	accessor, ok := metricAccessors[m]
	if !ok {
		return 0
	}
	return accessor(s)
}

func AllMetrics() []Metric {
	out := make([]Metric, 0, len(metricAccessors))
	for m := range metricAccessors {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
