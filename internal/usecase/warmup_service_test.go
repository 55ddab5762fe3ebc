package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/repository/cache"
	playermock "github.com/riskibarqy/cricket-insights/internal/mocks/domain/player"
	playerstatsmock "github.com/riskibarqy/cricket-insights/internal/mocks/domain/playerstats"
	basecache "github.com/riskibarqy/cricket-insights/internal/platform/cache"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

func TestWarmupService_Warm_PopulatesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	statRepo := playerstatsmock.NewRepository(t)

	playerRepo.On("List", mock.Anything).Return([]player.Player{{ID: 1}}, nil).Once()
	statRepo.On("List", mock.Anything).Return([]playerstats.FormatStat{{PlayerID: 1}}, nil).Once()
	for _, format := range playerstats.AllFormats {
		statRepo.On("ListByFormat", mock.Anything, format).Return([]playerstats.FormatStat{{Format: format}}, nil).Once()
	}

	store := basecache.NewStore(time.Minute)
	cachedPlayers := cache.NewPlayerRepository(playerRepo, store)
	cachedStats := cache.NewStatRepository(statRepo, store)

	result, err := NewWarmupService(cachedPlayers, cachedStats, 2, nil).Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Tasks)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 5, store.Len())

	// Served from cache: the mocks only allow one call each.
	_, err = cachedStats.ListByFormat(ctx, playerstats.FormatODI)
	require.NoError(t, err)
}

func TestWarmupService_Warm_CountsFailures(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	statRepo := playerstatsmock.NewRepository(t)
	boom := errors.New("boom")

	playerRepo.On("List", mock.Anything).Return(nil, boom).Once()
	statRepo.On("List", mock.Anything).Return(nil, nil).Once()
	statRepo.On("ListByFormat", mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	core, logs := observer.New(zap.WarnLevel)
	result, err := NewWarmupService(playerRepo, statRepo, 1, logging.FromZap(zap.New(core))).Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, logs.FilterMessage("cache warmup task failed").Len())
}

type overloadAfterPool struct {
	accept    int
	submitted int
}

func (p *overloadAfterPool) Submit(task func()) error {
	if p.submitted >= p.accept {
		return ants.ErrPoolOverload
	}
	p.submitted++
	go task()
	return nil
}

func (p *overloadAfterPool) Release() {}

func TestWarmupService_Warm_SubmitFailureWaitsForRunningTasks(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	statRepo := playerstatsmock.NewRepository(t)
	var finished atomic.Bool
	playerRepo.On("List", mock.Anything).Run(func(mock.Arguments) {
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	}).Return(nil, nil).Once()

	svc := NewWarmupService(playerRepo, statRepo, 2, nil)
	svc.newPool = func(int) (taskPool, error) { return &overloadAfterPool{accept: 1}, nil }

	_, err := svc.Warm(context.Background())
	require.ErrorIs(t, err, ants.ErrPoolOverload)
	assert.Contains(t, err.Error(), "submit stats to worker pool")
	assert.True(t, finished.Load(), "Warm returned before the running task finished")
}
