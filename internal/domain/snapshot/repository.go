package snapshot

import (
	"context"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// Repository persists and restores snapshots. Publish must be all or nothing.
type Repository interface {
	Publish(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (Snapshot, bool, error)
}

// Builder accumulates the identities and records of one pipeline run.
type Builder interface {
	Resolve(name, country string, seed player.Role) (player.Player, bool)
	MergeStat(key playerstats.Key, merge func(existing *playerstats.FormatStat) playerstats.FormatStat) (playerstats.FormatStat, bool)
	SetRole(id int64, role player.Role) bool
	Players() []player.Player
	Stats() []playerstats.FormatStat
}
