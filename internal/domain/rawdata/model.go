package rawdata

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// Domain is the statistic family a source file belongs to.
type Domain string

const (
	DomainBatting  Domain = "batting"
	DomainBowling  Domain = "bowling"
	DomainFielding Domain = "fielding"
)

// Domains is the pass order of the merge pipeline. Identity seeding is first
// writer wins, so this order decides which domain seeds a player's country and
// provisional role.
var Domains = []Domain{DomainBatting, DomainBowling, DomainFielding}

func ParseDomain(v string) (Domain, error) {
	domain := Domain(strings.ToLower(strings.TrimSpace(v)))
	switch domain {
	case DomainBatting, DomainBowling, DomainFielding:
		return domain, nil
	default:
		return "", fmt.Errorf("invalid source domain %q", v)
	}
}

// SeedRole is the provisional role a player gets when first seen in a row of
// this domain. The role classifier replaces it once every pass has run; it only
// survives in the snapshot if classification is skipped.
func SeedRole(d Domain) player.Role {
	switch d {
	case DomainBowling:
		return player.RoleBowler
	case DomainFielding:
		return player.RoleWicketKeeper
	default:
		return player.RoleBatsman
	}
}

// FormatFromLabel derives the format from a source label such as "ODI data",
// "Bowling_t20" or "Fielding_test".
func FormatFromLabel(label string) (playerstats.Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.TrimSuffix(normalized, " data")
	normalized = strings.TrimPrefix(normalized, "bowling_")
	normalized = strings.TrimPrefix(normalized, "fielding_")
	format, err := playerstats.ParseFormat(normalized)
	if err != nil {
		return "", fmt.Errorf("source label %q: %w", label, err)
	}
	return format, nil
}

// Batch is the ordered row stream of one source file.
type Batch struct {
	Domain Domain
	Label  string
	Path   string
	Rows   []Row
}

// SkippedSource records a source that was configured but not available.
type SkippedSource struct {
	Domain Domain
	Label  string
	Path   string
	Reason string
}

// LoadResult is everything the loader hands to the pipeline. Batches are in
// processing order within each domain.
type LoadResult struct {
	Batches []Batch
	Skipped []SkippedSource
}

// BatchesFor returns the batches of one domain in load order.
func (r LoadResult) BatchesFor(d Domain) []Batch {
	out := make([]Batch, 0, len(r.Batches))
	for _, b := range r.Batches {
		if b.Domain == d {
			out = append(out, b)
		}
	}
	return out
}
