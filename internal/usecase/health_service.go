package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-insights/internal/platform/cache"
)

type manifestReader interface {
	Manifest(ctx context.Context) (snapshot.Manifest, error)
}

type cacheStatsReader interface {
	Stats() cache.Stats
}

type Health struct {
	Status      string
	Players     int
	Stats       int
	RunID       string
	GeneratedAt time.Time
	Cache       *cache.Stats
}

type HealthService struct {
	playerRepo player.Repository
	statRepo   playerstats.Repository
	manifests  manifestReader
	cache      cacheStatsReader
}

func NewHealthService(playerRepo player.Repository, statRepo playerstats.Repository, manifests manifestReader) *HealthService {
	return &HealthService{
		playerRepo: playerRepo,
		statRepo:   statRepo,
		manifests:  manifests,
	}
}

// WithCache reports the read cache counters alongside the snapshot counts.
func (s *HealthService) WithCache(c cacheStatsReader) *HealthService {
	s.cache = c
	return s
}

func (s *HealthService) Check(ctx context.Context) (Health, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Health{}, fmt.Errorf("%w: list players: %v", ErrDependencyUnavailable, err)
	}
	stats, err := s.statRepo.List(ctx)
	if err != nil {
		return Health{}, fmt.Errorf("%w: list player stats: %v", ErrDependencyUnavailable, err)
	}

	out := Health{
		Status:  "OK",
		Players: len(players),
		Stats:   len(stats),
	}
	if s.manifests != nil {
		manifest, err := s.manifests.Manifest(ctx)
		if err != nil {
			return Health{}, fmt.Errorf("%w: read manifest: %v", ErrDependencyUnavailable, err)
		}
		out.RunID = manifest.RunID
		out.GeneratedAt = manifest.GeneratedAt
	}
	if s.cache != nil {
		stats := s.cache.Stats()
		out.Cache = &stats
	}
	return out, nil
}
