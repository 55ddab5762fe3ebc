package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

type Handler struct {
	playerService      *usecase.PlayerService
	leaderboardService *usecase.LeaderboardService
	analyticsService   *usecase.AnalyticsService
	dashboardService   *usecase.DashboardService
	healthService      *usecase.HealthService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	leaderboardService *usecase.LeaderboardService,
	analyticsService *usecase.AnalyticsService,
	dashboardService *usecase.DashboardService,
	healthService *usecase.HealthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      playerService,
		leaderboardService: leaderboardService,
		analyticsService:   analyticsService,
		dashboardService:   dashboardService,
		healthService:      healthService,
		logger:             logger,
		validator:          newQueryValidator(),
	}
}

// newQueryValidator reports fields by their query parameter name.
func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt returns fallback when the parameter is absent or blank.
func queryInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func queryString(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, part)
		}
		out = append(out, id)
	}
	return out, nil
}
