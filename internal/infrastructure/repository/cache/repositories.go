package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	basecache "github.com/riskibarqy/cricket-insights/internal/platform/cache"
)

// Key prefixes, exported so a snapshot reload can drop them.
const (
	PlayerKeyPrefix = "player:"
	StatKeyPrefix   = "stat:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, PlayerKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := PlayerKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	key := PlayerKeyPrefix + "ids:" + strings.Join(parts, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

type StatRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewStatRepository(next playerstats.Repository, cache *basecache.Store) *StatRepository {
	return &StatRepository{next: next, cache: cache}
}

func (r *StatRepository) List(ctx context.Context) ([]playerstats.FormatStat, error) {
	return r.load(ctx, StatKeyPrefix+"list", r.next.List)
}

func (r *StatRepository) ListByFormat(ctx context.Context, format playerstats.Format) ([]playerstats.FormatStat, error) {
	return r.load(ctx, StatKeyPrefix+"format:"+string(format), func(ctx context.Context) ([]playerstats.FormatStat, error) {
		return r.next.ListByFormat(ctx, format)
	})
}

func (r *StatRepository) ListByPlayerName(ctx context.Context, playerName string) ([]playerstats.FormatStat, error) {
	return r.load(ctx, StatKeyPrefix+"player:"+playerName, func(ctx context.Context) ([]playerstats.FormatStat, error) {
		return r.next.ListByPlayerName(ctx, playerName)
	})
}

func (r *StatRepository) load(ctx context.Context, key string, loader func(context.Context) ([]playerstats.FormatStat, error)) ([]playerstats.FormatStat, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.FormatStat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.FormatStat)
	return append([]playerstats.FormatStat(nil), items...), nil
}
