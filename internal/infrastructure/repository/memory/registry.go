package memory

import (
	"sync"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// Registry is the write side of one pipeline run: the name -> Player identity
// table and the (name, format) -> FormatStat record table. Every method is
// safe for concurrent use; id allocation and each per-key merge happen under
// a single lock.
type Registry struct {
	mu sync.Mutex

	players []player.Player
	byName  map[string]int

	stats     []playerstats.FormatStat
	statIndex map[playerstats.Key]int
}

func NewRegistry() *Registry {
	return &Registry{
		byName:    make(map[string]int),
		statIndex: make(map[playerstats.Key]int),
	}
}

// Resolve returns the Player registered under name, creating it with the next
// id when name is new. Country and seed only apply on creation.
func (r *Registry) Resolve(name, country string, seed player.Role) (player.Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byName[name]; ok {
		return r.players[idx], false
	}

	if country == "" {
		country = player.UnknownCountry
	}
	p := player.Player{
		ID:          int64(len(r.players) + 1),
		Name:        name,
		Country:     country,
		PrimaryRole: seed,
	}
	r.byName[name] = len(r.players)
	r.players = append(r.players, p)
	return p, true
}

// MergeStat applies merge to the record stored under key, passing nil when no
// record exists yet, and stores the result.
func (r *Registry) MergeStat(key playerstats.Key, merge func(existing *playerstats.FormatStat) playerstats.FormatStat) (playerstats.FormatStat, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.statIndex[key]
	var existing *playerstats.FormatStat
	if exists {
		current := r.stats[idx]
		existing = &current
	}

	merged := merge(existing)
	if exists {
		r.stats[idx] = merged
		return merged, false
	}

	r.statIndex[key] = len(r.stats)
	r.stats = append(r.stats, merged)
	return merged, true
}

// SetRole overwrites the role of a registered player.
func (r *Registry) SetRole(id int64, role player.Role) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := int(id - 1)
	if idx < 0 || idx >= len(r.players) {
		return false
	}
	r.players[idx].PrimaryRole = role
	return true
}

// Players returns a copy of every player in id order.
func (r *Registry) Players() []player.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]player.Player(nil), r.players...)
}

// Stats returns a copy of every record in creation order.
func (r *Registry) Stats() []playerstats.FormatStat {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]playerstats.FormatStat(nil), r.stats...)
}
