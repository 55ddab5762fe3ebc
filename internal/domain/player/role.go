package player

// RoleSignals are the aggregated facts the classifier needs from a player's
// merged format records.
type RoleSignals struct {
	HasBowling  bool
	HasBatting  bool
	HasFielding bool
}

// battingRunsThreshold is the per-format run count above which a player is
// considered a genuine batter for classification.
const battingRunsThreshold = 1000

// ObserveRecord folds one format record into the signals.
func (s RoleSignals) ObserveRecord(runs, wickets, stumpings int) RoleSignals {
	if wickets > 0 {
		s.HasBowling = true
	}
	if runs > battingRunsThreshold {
		s.HasBatting = true
	}
	if stumpings > 0 {
		s.HasFielding = true
	}
	return s
}

// Classify evaluates in fixed priority: all-rounder, bowler, wicket-keeper, batsman.
func (s RoleSignals) Classify() Role {
	switch {
	case s.HasBowling && s.HasBatting:
		return RoleAllRounder
	case s.HasBowling:
		return RoleBowler
	case s.HasFielding:
		return RoleWicketKeeper
	default:
		return RoleBatsman
	}
}
