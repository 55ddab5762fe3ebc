package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

const DefaultPageLimit = 20

var defaultCompareMetrics = []playerstats.Metric{
	playerstats.MetricRuns,
	playerstats.MetricAverage,
	playerstats.MetricStrikeRate,
}

type PlayerFilter struct {
	Search  string
	Country string
	Role    string
	Format  string
	Page    int
	Limit   int
}

type PlayerWithStats struct {
	Player player.Player
	Stats  []playerstats.FormatStat
}

type PlayerPage struct {
	Items      []PlayerWithStats
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// PlayerComparison projects the selected metrics of one player per format.
type PlayerComparison struct {
	Player  player.Player
	Metrics []playerstats.Metric
	Formats map[playerstats.Format]map[playerstats.Metric]float64
}

type PlayerService struct {
	playerRepo player.Repository
	statRepo   playerstats.Repository
}

func NewPlayerService(playerRepo player.Repository, statRepo playerstats.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		statRepo:   statRepo,
	}
}

func (s *PlayerService) List(ctx context.Context, filter PlayerFilter) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Page < 1 || filter.Limit < 1 {
		return PlayerPage{}, fmt.Errorf("%w: page and limit must be positive", ErrInvalidInput)
	}

	var role player.Role
	if filter.Role != "" {
		parsed, err := player.ParseRole(filter.Role)
		if err != nil {
			return PlayerPage{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		role = parsed
	}
	var format playerstats.Format
	if filter.Format != "" {
		parsed, err := playerstats.ParseFormat(filter.Format)
		if err != nil {
			return PlayerPage{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		format = parsed
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list players: %w", err)
	}
	stats, err := s.statRepo.List(ctx)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list player stats: %w", err)
	}
	statsByName := groupStatsByName(stats)

	folder := cases.Fold()
	search := folder.String(filter.Search)

	matched := make([]PlayerWithStats, 0, len(players))
	for _, p := range players {
		if search != "" && !strings.Contains(folder.String(p.Name), search) {
			continue
		}
		if filter.Country != "" && p.Country != filter.Country {
			continue
		}
		if role != "" && p.PrimaryRole != role {
			continue
		}

		playerStats := statsByName[p.Name]
		if format != "" && !hasFormat(playerStats, format) {
			continue
		}
		matched = append(matched, PlayerWithStats{Player: p, Stats: playerStats})
	}

	return paginate(matched, filter.Page, filter.Limit), nil
}

func paginate(items []PlayerWithStats, page, limit int) PlayerPage {
	total := len(items)
	out := PlayerPage{
		Items:      []PlayerWithStats{},
		Total:      total,
		Page:       page,
		Limit:      limit,
	}
	out.TotalPages = total / limit
	if total%limit != 0 {
		out.TotalPages++
	}

	// Compare page numbers before multiplying so a huge page cannot wrap.
	if page < 1 || page-1 >= out.TotalPages {
		return out
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	out.Items = items[start:end]
	return out
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (PlayerWithStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	p, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return PlayerWithStats{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerWithStats{}, fmt.Errorf("%w: player %d not found", ErrNotFound, id)
	}

	stats, err := s.statRepo.ListByPlayerName(ctx, p.Name)
	if err != nil {
		return PlayerWithStats{}, fmt.Errorf("list player stats: %w", err)
	}
	return PlayerWithStats{Player: p, Stats: stats}, nil
}

// Compare drops ids that do not resolve to a player. An empty metric list means
// runs, average and strike rate.
func (s *PlayerService) Compare(ctx context.Context, ids []int64, metrics []playerstats.Metric) ([]PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Compare")
	defer span.End()

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}
	if len(metrics) == 0 {
		metrics = defaultCompareMetrics
	}

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}

	out := make([]PlayerComparison, 0, len(players))
	for _, p := range players {
		stats, err := s.statRepo.ListByPlayerName(ctx, p.Name)
		if err != nil {
			return nil, fmt.Errorf("list player stats: %w", err)
		}

		formats := make(map[playerstats.Format]map[playerstats.Metric]float64, len(stats))
		for _, stat := range stats {
			values := make(map[playerstats.Metric]float64, len(metrics))
			for _, m := range metrics {
				values[m] = m.Value(stat)
			}
			formats[stat.Format] = values
		}
		out = append(out, PlayerComparison{
			Player:  p,
			Metrics: append([]playerstats.Metric(nil), metrics...),
			Formats: formats,
		})
	}
	return out, nil
}

func (s *PlayerService) Countries(ctx context.Context) ([]string, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range players {
		if _, ok := seen[p.Country]; ok {
			continue
		}
		seen[p.Country] = struct{}{}
		out = append(out, p.Country)
	}
	sort.Strings(out)
	return out, nil
}

func (s *PlayerService) Roles(ctx context.Context) ([]player.Role, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	seen := make(map[player.Role]struct{})
	out := make([]player.Role, 0, len(player.AllRoles))
	for _, p := range players {
		if p.PrimaryRole == "" {
			continue
		}
		if _, ok := seen[p.PrimaryRole]; ok {
			continue
		}
		seen[p.PrimaryRole] = struct{}{}
		out = append(out, p.PrimaryRole)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (s *PlayerService) Formats() []playerstats.Format {
	return append([]playerstats.Format(nil), playerstats.AllFormats...)
}

func groupStatsByName(stats []playerstats.FormatStat) map[string][]playerstats.FormatStat {
	out := make(map[string][]playerstats.FormatStat)
	for _, stat := range stats {
		out[stat.PlayerName] = append(out[stat.PlayerName], stat)
	}
	return out
}

func hasFormat(stats []playerstats.FormatStat, format playerstats.Format) bool {
	for _, stat := range stats {
		if stat.Format == format {
			return true
		}
	}
	return false
}
