package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	playermock "github.com/riskibarqy/cricket-insights/internal/mocks/domain/player"
	playerstatsmock "github.com/riskibarqy/cricket-insights/internal/mocks/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/platform/cache"
)

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	catalog, players, stats := fixtureRepos()
	got, err := NewHealthService(players, stats, catalog).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", got.Status)
	assert.Equal(t, 5, got.Players)
	assert.Equal(t, 7, got.Stats)
	assert.Equal(t, "run-fixture", got.RunID)
	assert.Nil(t, got.Cache)
}

type fixedCacheStats cache.Stats

func (f fixedCacheStats) Stats() cache.Stats { return cache.Stats(f) }

func TestHealthService_Check_ReportsCacheStats(t *testing.T) {
	t.Parallel()

	catalog, players, stats := fixtureRepos()
	svc := NewHealthService(players, stats, catalog).WithCache(fixedCacheStats{Entries: 3, Hits: 10, Misses: 4, Loads: 3})

	got, err := svc.Check(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.Cache)
	assert.Equal(t, cache.Stats{Entries: 3, Hits: 10, Misses: 4, Loads: 3}, *got.Cache)
}

func TestHealthService_Check_DependencyFailureUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	statRepo := playerstatsmock.NewRepository(t)
	playerRepo.On("List", mock.Anything).Return(nil, errors.New("gone")).Once()

	_, err := NewHealthService(playerRepo, statRepo, nil).Check(context.Background())
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
