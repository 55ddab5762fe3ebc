package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
)

var (
	_ player.Repository      = (*PlayerRepository)(nil)
	_ playerstats.Repository = (*StatRepository)(nil)
)

func testSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Manifest: snapshot.Manifest{RunID: "run-1", PlayerCount: 3, StatCount: 4},
		Players: []player.Player{
			{ID: 1, Name: "SR Tendulkar", Country: "INDIA", PrimaryRole: player.RoleAllRounder},
			{ID: 2, Name: "SK Warne", Country: "AUS", PrimaryRole: player.RoleBowler},
			{ID: 3, Name: "MS Dhoni", Country: "INDIA", PrimaryRole: player.RoleWicketKeeper},
		},
		Stats: []playerstats.FormatStat{
			{PlayerID: 1, PlayerName: "SR Tendulkar", Format: playerstats.FormatODI, Runs: 18426},
			{PlayerID: 1, PlayerName: "SR Tendulkar", Format: playerstats.FormatTest, Runs: 15921},
			{PlayerID: 2, PlayerName: "SK Warne", Format: playerstats.FormatTest, Wickets: 708},
			{PlayerID: 3, PlayerName: "MS Dhoni", Format: playerstats.FormatODI, Runs: 10773},
		},
	}
}

func TestCatalog_ReadRepositories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := NewCatalog(testSnapshot())
	players := NewPlayerRepository(catalog)
	stats := NewStatRepository(catalog)

	all, err := players.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	p, ok, err := players.GetByID(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "SK Warne", p.Name)

	_, ok, err = players.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	picked, err := players.GetByIDs(ctx, []int64{3, 99, 1})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, int64(1), picked[0].ID, "snapshot order, not request order")
	assert.Equal(t, int64(3), picked[1].ID)

	odi, err := stats.ListByFormat(ctx, playerstats.FormatODI)
	require.NoError(t, err)
	require.Len(t, odi, 2)
	assert.Equal(t, "SR Tendulkar", odi[0].PlayerName)

	t20, err := stats.ListByFormat(ctx, playerstats.FormatT20)
	require.NoError(t, err)
	assert.Empty(t, t20)

	sachin, err := stats.ListByPlayerName(ctx, "SR Tendulkar")
	require.NoError(t, err)
	assert.Len(t, sachin, 2)

	manifest, err := catalog.Manifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", manifest.RunID)
}

func TestCatalog_ReplaceSwapsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := NewCatalog(testSnapshot())
	stats := NewStatRepository(catalog)

	catalog.Replace(snapshot.Snapshot{})

	all, err := stats.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	_, ok, err := NewPlayerRepository(catalog).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := NewCatalog(testSnapshot())
	stats := NewStatRepository(catalog)

	first, err := stats.ListByFormat(ctx, playerstats.FormatODI)
	require.NoError(t, err)
	first[0].Runs = -1

	second, err := stats.ListByFormat(ctx, playerstats.FormatODI)
	require.NoError(t, err)
	assert.Equal(t, 18426, second[0].Runs)
}
