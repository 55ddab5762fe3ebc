package playerstats

import (
	"fmt"
	"strings"
)

// Format is a competition format.
type Format string

const (
	FormatTest Format = "test"
	FormatODI  Format = "odi"
	FormatT20  Format = "t20"
)

// DefaultFormat is used by read operations when the caller gives none.
const DefaultFormat = FormatODI

// AllFormats lists formats in their published order.
var AllFormats = []Format{FormatTest, FormatODI, FormatT20}

func ParseFormat(v string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(v)))
	switch format {
	case FormatTest, FormatODI, FormatT20:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: valid values are %s, %s, %s", v, FormatTest, FormatODI, FormatT20)
	}
}

// Key identifies a FormatStat. At most one record exists per key.
type Key struct {
	PlayerName string
	Format     Format
}

// FormatStat is the merged batting, bowling and fielding record of one player in
// one format. PlayerID, PlayerName and PlayerCountry are denormalized copies of
// the owning player.
type FormatStat struct {
	PlayerID      int64
	PlayerName    string
	PlayerCountry string
	Format        Format
	SpanStart     *int
	SpanEnd       *int

	Matches    int
	Innings    int
	NotOut     int
	Runs       int
	Highest    string
	Average    float64
	BallsFaced int
	StrikeRate float64
	Hundreds   int
	Fifties    int
	Fours      int
	Sixes      int

	Wickets           int
	BowlingAverage    float64
	BowlingEconomy    float64
	BowlingStrikeRate float64
	BestBowling       string
	FiveWickets       int
	TenWickets        int

	Catches   int
	Stumpings int
}

func (s FormatStat) Key() Key {
	return Key{PlayerName: s.PlayerName, Format: s.Format}
}

func (s FormatStat) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("stat player id must be greater than zero")
	}
	if s.PlayerName == "" {
		return fmt.Errorf("stat player name is required")
	}
	if _, err := ParseFormat(string(s.Format)); err != nil {
		return err
	}
	return nil
}
