package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	limit, err := queryInt(query, "limit", usecase.DefaultLeaderboardLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := leaderboardRequest{
		Format: queryString(query, "format"),
		Type:   queryString(query, "type"),
		Limit:  limit,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.leaderboardService.Top(ctx, usecase.LeaderboardQuery{
		Format: req.Format,
		Metric: req.Type,
		Limit:  req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard failed", "format", req.Format, "type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statsToDTO(ctx, stats))
}

func (h *Handler) GetEraDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEraDistribution", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	format := queryString(query, "format")
	metric := queryString(query, "metric")

	buckets, err := h.analyticsService.EraDistribution(ctx, format, metric)
	if err != nil {
		h.logger.WarnContext(ctx, "era distribution failed", "format", format, "metric", metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eraBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, eraBucketDTO{
			Decade: b.Decade,
			Min:    b.Min,
			Q1:     b.Q1,
			Median: b.Median,
			Q3:     b.Q3,
			Max:    b.Max,
			Mean:   b.Mean,
			Count:  b.Count,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCountryContribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountryContribution", queryAttributes(r.URL.Query())...)
	defer span.End()

	format := queryString(r.URL.Query(), "format")
	rows, err := h.analyticsService.CountryContribution(ctx, format)
	if err != nil {
		h.logger.WarnContext(ctx, "country contribution failed", "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]countryContributionDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, countryContributionDTO{
			Country:       row.Country,
			PlayerCount:   row.PlayerCount,
			TotalRuns:     row.TotalRuns,
			TotalWickets:  row.TotalWickets,
			AvgBattingAvg: row.AvgBattingAvg,
			AvgBowlingAvg: row.AvgBowlingAvg,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTopBoundaryHitters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopBoundaryHitters", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	limit, err := queryInt(query, "limit", usecase.DefaultBoundaryLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := boundaryHittersRequest{Format: queryString(query, "format"), Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	hitters, err := h.analyticsService.TopBoundaryHitters(ctx, req.Format, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top boundary hitters failed", "format", req.Format, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]boundaryHitterDTO, 0, len(hitters))
	for _, v := range hitters {
		items = append(items, boundaryHitterDTO{
			Name:            v.Name,
			Country:         v.Country,
			Fours:           v.Fours,
			Sixes:           v.Sixes,
			TotalBoundaries: v.TotalBoundaries,
			Runs:            v.Runs,
			Matches:         v.Matches,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStrikeRateVsAverage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStrikeRateVsAverage", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	minRuns, err := queryInt(query, "minRuns", usecase.DefaultScatterMinRuns)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := scatterRequest{Format: queryString(query, "format"), MinRuns: minRuns}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.analyticsService.StrikeRateVsAverage(ctx, req.Format, req.MinRuns)
	if err != nil {
		h.logger.WarnContext(ctx, "strike rate vs average failed", "format", req.Format, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scatterPointDTO, 0, len(points))
	for _, p := range points {
		items = append(items, scatterPointDTO{
			Name:       p.Name,
			Country:    p.Country,
			Average:    p.Average,
			StrikeRate: p.StrikeRate,
			Runs:       p.Runs,
			Matches:    p.Matches,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardStats", queryAttributes(r.URL.Query())...)
	defer span.End()

	format := queryString(r.URL.Query(), "format")
	dashboard, err := h.dashboardService.Get(ctx, format)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, dashboard))
}
