package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/rawdata"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-insights/internal/platform/id"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

type IngestionInput struct {
	// DryRun merges and classifies but does not publish.
	DryRun bool
}

type IngestionResult struct {
	RunID       string
	Players     int
	Stats       int
	RowsMerged  int
	RowsSkipped int
	Sources     []snapshot.SourceStatus
	Published   bool
	Duration    time.Duration
}

// IngestionService runs the batting, bowling and fielding merge passes over the
// loaded sources, classifies roles and publishes the resulting snapshot.
type IngestionService struct {
	loader     rawdata.Loader
	store      snapshot.Repository
	newBuilder func() snapshot.Builder
	ids        id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewIngestionService(
	loader rawdata.Loader,
	store snapshot.Repository,
	newBuilder func() snapshot.Builder,
	ids id.Generator,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		loader:     loader,
		store:      store,
		newBuilder: newBuilder,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *IngestionService) Run(ctx context.Context, input IngestionInput) (IngestionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run", attribute.Bool("dry_run", input.DryRun))
	defer span.End()

	startedAt := s.now()
	runID, err := s.ids.NewID()
	if err != nil {
		return IngestionResult{}, fmt.Errorf("generate run id: %w", err)
	}
	span.SetAttributes(attribute.String("run_id", runID))
	logger := s.logger.With("run_id", runID)

	loaded, err := s.loader.Load(ctx)
	if err != nil {
		return IngestionResult{}, recordSpanError(span, fmt.Errorf("load sources: %w", err))
	}

	registry := s.newBuilder()
	sources := make([]snapshot.SourceStatus, 0, len(loaded.Batches)+len(loaded.Skipped))
	result := IngestionResult{RunID: runID}

	for _, domain := range rawdata.Domains {
		for _, batch := range loaded.BatchesFor(domain) {
			if err := ctx.Err(); err != nil {
				return IngestionResult{}, err
			}

			merged, skipped, err := mergeBatch(registry, batch)
			if err != nil {
				return IngestionResult{}, recordSpanError(span, err)
			}
			result.RowsMerged += merged
			result.RowsSkipped += skipped
			sources = append(sources, snapshot.SourceStatus{
				Domain: string(batch.Domain),
				Label:  batch.Label,
				Path:   batch.Path,
				Rows:   merged,
			})
			logger.InfoContext(ctx, "source merged",
				"domain", batch.Domain,
				"label", batch.Label,
				"rows", merged,
				"skipped_rows", skipped,
			)
		}
	}
	for _, missing := range loaded.Skipped {
		sources = append(sources, snapshot.SourceStatus{
			Domain:  string(missing.Domain),
			Label:   missing.Label,
			Path:    missing.Path,
			Skipped: true,
			Reason:  missing.Reason,
		})
	}

	classifyRoles(registry)

	players := registry.Players()
	stats := registry.Stats()
	snap := snapshot.Snapshot{
		Manifest: snapshot.Manifest{
			RunID:       runID,
			GeneratedAt: s.now().UTC(),
			PlayerCount: len(players),
			StatCount:   len(stats),
			Sources:     sources,
		},
		Players: players,
		Stats:   stats,
	}

	result.Players = len(players)
	result.Stats = len(stats)
	result.Sources = sources

	if !input.DryRun {
		if err := s.store.Publish(ctx, snap); err != nil {
			return IngestionResult{}, recordSpanError(span, fmt.Errorf("publish snapshot: %w", err))
		}
		result.Published = true
	}
	result.Duration = s.now().Sub(startedAt)

	logger.InfoContext(ctx, "ingestion finished",
		"players", result.Players,
		"stats", result.Stats,
		"rows_merged", result.RowsMerged,
		"rows_skipped", result.RowsSkipped,
		"sources_missing", len(loaded.Skipped),
		"published", result.Published,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// mergeBatch folds one source file into the registry. Rows with a blank
// player cell are counted as skipped.
func mergeBatch(registry snapshot.Builder, batch rawdata.Batch) (int, int, error) {
	format, err := rawdata.FormatFromLabel(batch.Label)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownSource, err)
	}
	seed := rawdata.SeedRole(batch.Domain)

	merged := 0
	skipped := 0
	for _, row := range batch.Rows {
		raw := row.Text(rawdata.ColPlayer)
		if strings.TrimSpace(raw) == "" {
			skipped++
			continue
		}

		name, country := player.ParseIdentity(raw)
		owner, _ := registry.Resolve(name, country, seed)
		key := playerstats.Key{PlayerName: owner.Name, Format: format}

		switch batch.Domain {
		case rawdata.DomainBatting:
			fields := row.Batting()
			registry.MergeStat(key, func(existing *playerstats.FormatStat) playerstats.FormatStat {
				return playerstats.MergeBatting(existing, owner, format, fields)
			})
		case rawdata.DomainBowling:
			fields := row.Bowling()
			registry.MergeStat(key, func(existing *playerstats.FormatStat) playerstats.FormatStat {
				return playerstats.MergeBowling(existing, owner, format, fields)
			})
		case rawdata.DomainFielding:
			fields := row.Fielding()
			registry.MergeStat(key, func(existing *playerstats.FormatStat) playerstats.FormatStat {
				return playerstats.MergeFielding(existing, owner, format, fields)
			})
		default:
			return merged, skipped, fmt.Errorf("%w: domain %q", ErrUnknownSource, batch.Domain)
		}
		merged++
	}
	return merged, skipped, nil
}

// classifyRoles replaces every provisional role with the classifier's verdict
// over the player's merged records.
func classifyRoles(registry snapshot.Builder) {
	signals := make(map[int64]player.RoleSignals)
	for _, stat := range registry.Stats() {
		signals[stat.PlayerID] = signals[stat.PlayerID].ObserveRecord(stat.Runs, stat.Wickets, stat.Stumpings)
	}
	for _, p := range registry.Players() {
		registry.SetRole(p.ID, signals[p.ID].Classify())
	}
}
