package playerstats

import "github.com/riskibarqy/cricket-insights/internal/domain/player"

// BattingFields are the values a batting row owns.
type BattingFields struct {
	Span       Span
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
}

// BowlingFields are the values a bowling row owns. Span, Matches and Innings
// only seed a record the bowling pass creates.
type BowlingFields struct {
	Span              Span
	Matches           int
	Innings           int
	Wickets           int
	BowlingAverage    float64
	BowlingEconomy    float64
	BowlingStrikeRate float64
	BestBowling       string
	FiveWickets       int
	TenWickets        int
}

// FieldingFields are the values a fielding row owns. Matches and Innings only
// seed a record the fielding pass creates; fielding rows never carry a span.
type FieldingFields struct {
	Matches   int
	Innings   int
	Catches   int
	Stumpings int
}

// MergeBatting returns existing with its batting fields replaced, or a new record
// when existing is nil. Bowling and fielding fields are never touched.
func MergeBatting(existing *FormatStat, owner player.Player, format Format, f BattingFields) FormatStat {
	out := baseRecord(existing, owner, format)
	out.SpanStart = f.Span.Start
	out.SpanEnd = f.Span.End
	out.Matches = f.Matches
	out.Innings = f.Innings
	out.NotOut = f.NotOut
	out.Runs = f.Runs
	out.Highest = f.Highest
	out.Average = f.Average
	out.BallsFaced = f.BallsFaced
	out.StrikeRate = f.StrikeRate
	out.Hundreds = f.Hundreds
	out.Fifties = f.Fifties
	out.Fours = f.Fours
	out.Sixes = f.Sixes
	return out
}

// MergeBowling returns existing with its bowling fields replaced, or a new record
// seeded with the row's span, matches and innings when existing is nil.
func MergeBowling(existing *FormatStat, owner player.Player, format Format, f BowlingFields) FormatStat {
	out := baseRecord(existing, owner, format)
	if existing == nil {
		out.SpanStart = f.Span.Start
		out.SpanEnd = f.Span.End
		out.Matches = f.Matches
		out.Innings = f.Innings
	}
	out.Wickets = f.Wickets
	out.BowlingAverage = f.BowlingAverage
	out.BowlingEconomy = f.BowlingEconomy
	out.BowlingStrikeRate = f.BowlingStrikeRate
	out.BestBowling = f.BestBowling
	out.FiveWickets = f.FiveWickets
	out.TenWickets = f.TenWickets
	return out
}

// MergeFielding returns existing with catches and stumpings replaced, or a new
// record seeded with matches and innings when existing is nil.
func MergeFielding(existing *FormatStat, owner player.Player, format Format, f FieldingFields) FormatStat {
	out := baseRecord(existing, owner, format)
	if existing == nil {
		out.Matches = f.Matches
		out.Innings = f.Innings
	}
	out.Catches = f.Catches
	out.Stumpings = f.Stumpings
	return out
}

func baseRecord(existing *FormatStat, owner player.Player, format Format) FormatStat {
	if existing != nil {
		return *existing
	}
	return FormatStat{
		PlayerID:      owner.ID,
		PlayerName:    owner.Name,
		PlayerCountry: owner.Country,
		Format:        format,
	}
}
