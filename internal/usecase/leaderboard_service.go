package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

const DefaultLeaderboardLimit = 50

type LeaderboardQuery struct {
	Format string
	Metric string
	Limit  int
}

type LeaderboardService struct {
	statRepo playerstats.Repository
}

func NewLeaderboardService(statRepo playerstats.Repository) *LeaderboardService {
	return &LeaderboardService{statRepo: statRepo}
}

// Top ranks one format's records by a metric. Records whose metric is not a
// positive finite number are left out.
func (s *LeaderboardService) Top(ctx context.Context, query LeaderboardQuery) ([]playerstats.FormatStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Top",
		attribute.String("format", query.Format),
		attribute.String("metric", query.Metric),
	)
	defer span.End()

	format, err := parseFormatInput(query.Format)
	if err != nil {
		return nil, err
	}
	metric, err := parseMetricInput(query.Metric, playerstats.MetricRuns)
	if err != nil {
		return nil, err
	}
	limit := query.Limit
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}

	stats, err := s.statRepo.ListByFormat(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("list stats by format: %w", err)
	}
	return rankByMetric(stats, metric, limit, nil), nil
}
