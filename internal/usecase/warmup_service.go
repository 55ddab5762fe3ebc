package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

const defaultWarmupWorkers = 4

type taskPool interface {
	Submit(task func()) error
	Release()
}

func newAntsPool(size int) (taskPool, error) {
	return ants.NewPool(size)
}

type WarmupResult struct {
	Tasks    int
	Failed   int
	Duration time.Duration
}

// WarmupService preloads the read paths served through the cache decorators so
// the first requests after startup do not pay the filter cost.
type WarmupService struct {
	playerRepo player.Repository
	statRepo   playerstats.Repository
	workers    int
	newPool    func(size int) (taskPool, error)
	logger     *logging.Logger
}

func NewWarmupService(playerRepo player.Repository, statRepo playerstats.Repository, workers int, logger *logging.Logger) *WarmupService {
	if workers <= 0 {
		workers = defaultWarmupWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		playerRepo: playerRepo,
		statRepo:   statRepo,
		workers:    workers,
		newPool:    newAntsPool,
		logger:     logger,
	}
}

type warmupTask struct {
	name string
	run  func(ctx context.Context) error
}

func (s *WarmupService) Warm(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Warm")
	defer span.End()

	tasks := []warmupTask{
		{name: "players", run: func(ctx context.Context) error {
			_, err := s.playerRepo.List(ctx)
			return err
		}},
		{name: "stats", run: func(ctx context.Context) error {
			_, err := s.statRepo.List(ctx)
			return err
		}},
	}
	for _, format := range playerstats.AllFormats {
		tasks = append(tasks, warmupTask{name: "stats:" + string(format), run: func(ctx context.Context) error {
			_, err := s.statRepo.ListByFormat(ctx, format)
			return err
		}})
	}

	pool, err := s.newPool(s.workers)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := task.run(ctx); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "cache warmup task failed", "task", task.name, "error", err)
			}
		}); err != nil {
			workers.Done()
			// Tasks already running still use ctx and the pool.
			workers.Wait()
			return WarmupResult{}, recordSpanError(span, fmt.Errorf("submit %s to worker pool: %w", task.name, err))
		}
	}
	workers.Wait()

	result := WarmupResult{
		Tasks:    len(tasks),
		Failed:   int(failed.Load()),
		Duration: time.Since(start),
	}
	s.logger.InfoContext(ctx, "cache warmup finished",
		"tasks", result.Tasks,
		"failed", result.Failed,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}
