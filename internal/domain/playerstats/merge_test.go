package playerstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
)

var sachin = player.Player{ID: 1, Name: "Sachin Tendulkar", Country: "IND", PrimaryRole: player.RoleBatsman}

func TestMergeBatting_CreatesRecordWithForeignFieldsZeroed(t *testing.T) {
	t.Parallel()

	got := MergeBatting(nil, sachin, FormatODI, BattingFields{
		Span:    ParseSpan("1989-2012"),
		Matches: 463,
		Runs:    18426,
		Highest: "200*",
		Average: 44.83,
	})

	require.Equal(t, int64(1), got.PlayerID)
	assert.Equal(t, "Sachin Tendulkar", got.PlayerName)
	assert.Equal(t, "IND", got.PlayerCountry)
	assert.Equal(t, FormatODI, got.Format)
	assert.Equal(t, 18426, got.Runs)
	assert.Equal(t, 44.83, got.Average)
	assert.Equal(t, "200*", got.Highest)
	require.NotNil(t, got.SpanStart)
	assert.Equal(t, 1989, *got.SpanStart)
	assert.Zero(t, got.Wickets)
	assert.Empty(t, got.BestBowling)
	assert.Zero(t, got.Catches)
}

func TestMergeBowling_PreservesBattingFields(t *testing.T) {
	t.Parallel()

	batting := MergeBatting(nil, sachin, FormatODI, BattingFields{Span: ParseSpan("1989-2012"), Matches: 463, Innings: 452, Runs: 18426, Average: 44.83})
	merged := MergeBowling(&batting, sachin, FormatODI, BowlingFields{
		Span:           ParseSpan("1990-2011"),
		Matches:        999,
		Wickets:        154,
		BowlingAverage: 44.48,
		BestBowling:    "5/32",
		FiveWickets:    2,
	})

	assert.Equal(t, 18426, merged.Runs)
	assert.Equal(t, 44.83, merged.Average)
	assert.Equal(t, 463, merged.Matches, "bowling update must not overwrite matches")
	assert.Equal(t, 452, merged.Innings)
	require.NotNil(t, merged.SpanStart)
	assert.Equal(t, 1989, *merged.SpanStart, "bowling update must not overwrite span")
	assert.Equal(t, 154, merged.Wickets)
	assert.Equal(t, "5/32", merged.BestBowling)
	assert.Equal(t, 2, merged.FiveWickets)

	assert.Equal(t, 0, batting.Wickets, "merge must not mutate its input")
}

func TestMergeBowling_CreatesRecordWithSpanAndMatches(t *testing.T) {
	t.Parallel()

	bowler := player.Player{ID: 7, Name: "M Muralidaran", Country: "SL", PrimaryRole: player.RoleBowler}
	got := MergeBowling(nil, bowler, FormatTest, BowlingFields{Span: ParseSpan("1992-2010"), Matches: 133, Innings: 230, Wickets: 800})

	require.NotNil(t, got.SpanStart)
	assert.Equal(t, 1992, *got.SpanStart)
	assert.Equal(t, 133, got.Matches)
	assert.Equal(t, 230, got.Innings)
	assert.Equal(t, 800, got.Wickets)
	assert.Zero(t, got.Runs)
	assert.Empty(t, got.Highest)
}

func TestMergeFielding_CreatesRecordWithoutSpan(t *testing.T) {
	t.Parallel()

	keeper := player.Player{ID: 3, Name: "AC Gilchrist", Country: "AUS", PrimaryRole: player.RoleWicketKeeper}
	got := MergeFielding(nil, keeper, FormatODI, FieldingFields{Matches: 287, Innings: 279, Catches: 417, Stumpings: 55})

	assert.Nil(t, got.SpanStart)
	assert.Nil(t, got.SpanEnd)
	assert.Equal(t, 287, got.Matches)
	assert.Equal(t, 417, got.Catches)
	assert.Equal(t, 55, got.Stumpings)
}

func TestMerge_DisjointDomainsCommute(t *testing.T) {
	t.Parallel()

	bat := BattingFields{Span: ParseSpan("1989-2012"), Matches: 10, Innings: 9, Runs: 500}
	bowl := BowlingFields{Wickets: 12, BowlingEconomy: 4.5}
	field := FieldingFields{Catches: 4, Stumpings: 1}

	a := MergeBatting(nil, sachin, FormatT20, bat)
	a = MergeBowling(&a, sachin, FormatT20, bowl)
	a = MergeFielding(&a, sachin, FormatT20, field)

	b := MergeBatting(nil, sachin, FormatT20, bat)
	b = MergeFielding(&b, sachin, FormatT20, field)
	b = MergeBowling(&b, sachin, FormatT20, bowl)

	assert.Equal(t, a, b)
}
