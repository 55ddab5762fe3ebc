package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
)

// Catalog holds the published snapshot the API reads from, plus the indexes
// the read repositories need. Replace swaps the whole snapshot at once.
type Catalog struct {
	mu sync.RWMutex

	manifest      snapshot.Manifest
	players       []player.Player
	playerIndex   map[int64]int
	stats         []playerstats.FormatStat
	statsByFormat map[playerstats.Format][]int
	statsByName   map[string][]int
}

func NewCatalog(snap snapshot.Snapshot) *Catalog {
	c := &Catalog{}
	c.Replace(snap)
	return c
}

func (c *Catalog) Replace(snap snapshot.Snapshot) {
	players := append([]player.Player(nil), snap.Players...)
	stats := append([]playerstats.FormatStat(nil), snap.Stats...)

	playerIndex := make(map[int64]int, len(players))
	for i, p := range players {
		playerIndex[p.ID] = i
	}

	statsByFormat := make(map[playerstats.Format][]int, len(playerstats.AllFormats))
	statsByName := make(map[string][]int, len(players))
	for i, s := range stats {
		statsByFormat[s.Format] = append(statsByFormat[s.Format], i)
		statsByName[s.PlayerName] = append(statsByName[s.PlayerName], i)
	}

	c.mu.Lock()
	c.manifest = snap.Manifest
	c.players = players
	c.playerIndex = playerIndex
	c.stats = stats
	c.statsByFormat = statsByFormat
	c.statsByName = statsByName
	c.mu.Unlock()
}

func (c *Catalog) Manifest(_ context.Context) (snapshot.Manifest, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.manifest, nil
}

func (c *Catalog) pickStats(indexes []int) []playerstats.FormatStat {
	out := make([]playerstats.FormatStat, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, c.stats[idx])
	}
	return out
}

// PlayerRepository serves players from a Catalog.
type PlayerRepository struct {
	catalog *Catalog
}

func NewPlayerRepository(catalog *Catalog) *PlayerRepository {
	return &PlayerRepository{catalog: catalog}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	return append([]player.Player(nil), r.catalog.players...), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	idx, ok := r.catalog.playerIndex[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.catalog.players[idx], true, nil
}

// GetByIDs returns the players that exist, in snapshot order.
func (r *PlayerRepository) GetByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]player.Player, 0, len(want))
	for _, p := range r.catalog.players {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// StatRepository serves format records from a Catalog.
type StatRepository struct {
	catalog *Catalog
}

func NewStatRepository(catalog *Catalog) *StatRepository {
	return &StatRepository{catalog: catalog}
}

func (r *StatRepository) List(_ context.Context) ([]playerstats.FormatStat, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	return append([]playerstats.FormatStat(nil), r.catalog.stats...), nil
}

func (r *StatRepository) ListByFormat(_ context.Context, format playerstats.Format) ([]playerstats.FormatStat, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	return r.catalog.pickStats(r.catalog.statsByFormat[format]), nil
}

func (r *StatRepository) ListByPlayerName(_ context.Context, playerName string) ([]playerstats.FormatStat, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	return r.catalog.pickStats(r.catalog.statsByName[playerName]), nil
}
