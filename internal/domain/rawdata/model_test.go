package rawdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
)

func TestFormatFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  playerstats.Format
	}{
		{label: "ODI data", want: playerstats.FormatODI},
		{label: "t20", want: playerstats.FormatT20},
		{label: "test", want: playerstats.FormatTest},
		{label: "Bowling_ODI", want: playerstats.FormatODI},
		{label: "Bowling_t20", want: playerstats.FormatT20},
		{label: "Fielding_test", want: playerstats.FormatTest},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := FormatFromLabel(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromLabel_RejectsUnknownLabel(t *testing.T) {
	_, err := FormatFromLabel("Batting_first_class")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Batting_first_class")
}

func TestSeedRole(t *testing.T) {
	assert.Equal(t, player.RoleBatsman, SeedRole(DomainBatting))
	assert.Equal(t, player.RoleBowler, SeedRole(DomainBowling))
	assert.Equal(t, player.RoleWicketKeeper, SeedRole(DomainFielding))
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain(" Bowling ")
	require.NoError(t, err)
	assert.Equal(t, DomainBowling, d)

	_, err = ParseDomain("keeping")
	require.Error(t, err)
}

func TestLoadResultBatchesFor(t *testing.T) {
	result := LoadResult{Batches: []Batch{
		{Domain: DomainBatting, Label: "ODI data"},
		{Domain: DomainBowling, Label: "Bowling_ODI"},
		{Domain: DomainBatting, Label: "t20"},
	}}

	got := result.BatchesFor(DomainBatting)
	require.Len(t, got, 2)
	assert.Equal(t, "ODI data", got[0].Label)
	assert.Equal(t, "t20", got[1].Label)
	assert.Empty(t, result.BatchesFor(DomainFielding))
}
