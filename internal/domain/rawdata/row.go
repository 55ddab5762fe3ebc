package rawdata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

// Source column names.
const (
	ColPlayer      = "Player"
	ColSpan        = "Span"
	ColMatches     = "Mat"
	ColInnings     = "Inns"
	ColNotOut      = "NO"
	ColRuns        = "Runs"
	ColHighest     = "HS"
	ColAverage     = "Ave"
	ColBallsFaced  = "BF"
	ColStrikeRate  = "SR"
	ColHundreds    = "100"
	ColFifties     = "50"
	ColFours       = "4s"
	ColSixes       = "6s"
	ColWickets     = "Wkts"
	ColEconomy     = "Econ"
	ColBestBowling = "BBI"
	ColFiveWickets = "5"
	ColTenWickets  = "10"
	ColCatches     = "Ct"
	ColStumpings   = "St"
)

// Row is one source record keyed by column header.
type Row map[string]string

var (
	leadingIntPattern   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

func (r Row) Text(col string) string {
	return r[col]
}

// Int parses the leading integer of the column ("183*" is 183). Anything
// unparseable is 0.
func (r Row) Int(col string) int {
	m := leadingIntPattern.FindString(strings.TrimSpace(r[col]))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// Float parses the leading decimal of the column. Anything unparseable is 0.
func (r Row) Float(col string) float64 {
	m := leadingFloatPattern.FindString(strings.TrimSpace(r[col]))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func (r Row) Batting() playerstats.BattingFields {
	return playerstats.BattingFields{
		Span:       playerstats.ParseSpan(r.Text(ColSpan)),
		Matches:    r.Int(ColMatches),
		Innings:    r.Int(ColInnings),
		NotOut:     r.Int(ColNotOut),
		Runs:       r.Int(ColRuns),
		Highest:    r.Text(ColHighest),
		Average:    r.Float(ColAverage),
		BallsFaced: r.Int(ColBallsFaced),
		StrikeRate: r.Float(ColStrikeRate),
		Hundreds:   r.Int(ColHundreds),
		Fifties:    r.Int(ColFifties),
		Fours:      r.Int(ColFours),
		Sixes:      r.Int(ColSixes),
	}
}

func (r Row) Bowling() playerstats.BowlingFields {
	return playerstats.BowlingFields{
		Span:              playerstats.ParseSpan(r.Text(ColSpan)),
		Matches:           r.Int(ColMatches),
		Innings:           r.Int(ColInnings),
		Wickets:           r.Int(ColWickets),
		BowlingAverage:    r.Float(ColAverage),
		BowlingEconomy:    r.Float(ColEconomy),
		BowlingStrikeRate: r.Float(ColStrikeRate),
		BestBowling:       r.Text(ColBestBowling),
		FiveWickets:       r.Int(ColFiveWickets),
		TenWickets:        r.Int(ColTenWickets),
	}
}

func (r Row) Fielding() playerstats.FieldingFields {
	return playerstats.FieldingFields{
		Matches:   r.Int(ColMatches),
		Innings:   r.Int(ColInnings),
		Catches:   r.Int(ColCatches),
		Stumpings: r.Int(ColStumpings),
	}
}
