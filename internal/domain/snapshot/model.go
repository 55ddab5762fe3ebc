package snapshot

import (
	"time"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// Snapshot is the published output of one pipeline run. It is never mutated
// after publication.
type Snapshot struct {
	Manifest Manifest
	Players  []player.Player
	Stats    []playerstats.FormatStat
}

type Manifest struct {
	RunID       string
	GeneratedAt time.Time
	PlayerCount int
	StatCount   int
	Sources     []SourceStatus
}

type SourceStatus struct {
	Domain  string
	Label   string
	Path    string
	Rows    int
	Skipped bool
	Reason  string
}
