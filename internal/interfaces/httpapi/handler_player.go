package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	page, err := queryInt(query, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(query, "limit", usecase.DefaultPageLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := listPlayersRequest{
		Search:  queryString(query, "search"),
		Country: queryString(query, "country"),
		Role:    queryString(query, "role"),
		Format:  queryString(query, "format"),
		Page:    page,
		Limit:   limit,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.List(ctx, usecase.PlayerFilter{
		Search:  req.Search,
		Country: req.Country,
		Role:    req.Role,
		Format:  req.Format,
		Page:    req.Page,
		Limit:   req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerWithStatsDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, playerWithStatsToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageDTO{
		Data:       items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer", queryAttributes(r.URL.Query())...)
	defer span.End()

	rawID := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player %q not found", usecase.ErrNotFound, rawID))
		return
	}

	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerWithStatsToDTO(ctx, item))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers", queryAttributes(r.URL.Query())...)
	defer span.End()

	query := r.URL.Query()
	ids, err := parseIDList(query.Get("players"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := compareRequest{Players: ids, Metrics: queryString(query, "metrics")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	metrics, err := playerstats.ParseMetricList(req.Metrics)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	comparisons, err := h.playerService.Compare(ctx, req.Players, metrics)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "player_ids", req.Players, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]comparisonDTO, 0, len(comparisons))
	for _, c := range comparisons {
		items = append(items, comparisonToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries", queryAttributes(r.URL.Query())...)
	defer span.End()

	countries, err := h.playerService.Countries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countries)
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoles", queryAttributes(r.URL.Query())...)
	defer span.End()

	roles, err := h.playerService.Roles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list roles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]string, 0, len(roles))
	for _, role := range roles {
		items = append(items, string(role))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormats", queryAttributes(r.URL.Query())...)
	defer span.End()

	formats := h.playerService.Formats()
	items := make([]string, 0, len(formats))
	for _, format := range formats {
		items = append(items, string(format))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
