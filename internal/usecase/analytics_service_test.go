package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	playerstatsmock "github.com/riskibarqy/cricket-insights/internal/mocks/domain/playerstats"
)

func TestSummarize_PositionalQuartiles(t *testing.T) {
	t.Parallel()

	got := summarize(1990, []float64{40, 10, 30, 20})

	assert.Equal(t, "1990s", got.Decade)
	assert.Equal(t, 10.0, got.Min)
	assert.Equal(t, 20.0, got.Q1)
	assert.Equal(t, 30.0, got.Median)
	assert.Equal(t, 40.0, got.Q3)
	assert.Equal(t, 40.0, got.Max)
	assert.Equal(t, 25.0, got.Mean)
	assert.Equal(t, 4, got.Count)
}

func TestSummarize_SingleValue(t *testing.T) {
	t.Parallel()

	got := summarize(2000, []float64{7})
	assert.Equal(t, EraBucket{Decade: "2000s", DecadeStart: 2000, Min: 7, Q1: 7, Median: 7, Q3: 7, Max: 7, Mean: 7, Count: 1}, got)
}

func TestFloorDecade(t *testing.T) {
	t.Parallel()

	for year, want := range map[int]int{1989: 1980, 1990: 1990, 2004: 2000, 2019: 2010} {
		if got := floorDecade(year); got != want {
			t.Fatalf("floorDecade(%d)=%d want=%d", year, got, want)
		}
	}
}

func TestAnalyticsService_EraDistribution(t *testing.T) {
	t.Parallel()

	_, _, stats := fixtureRepos()
	got, err := NewAnalyticsService(stats).EraDistribution(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, got, 3, "record without span_start is excluded")
	assert.Equal(t, "1980s", got[0].Decade)
	assert.Equal(t, "1990s", got[1].Decade)
	assert.Equal(t, "2000s", got[2].Decade)

	nineties := got[1]
	assert.Equal(t, 2, nineties.Count)
	assert.Equal(t, 13.05, nineties.Min)
	assert.Equal(t, 13.05, nineties.Q1)
	assert.Equal(t, 42.03, nineties.Median)
	assert.Equal(t, 42.03, nineties.Max)
	assert.InDelta(t, 27.54, nineties.Mean, 1e-9)
}

func TestAnalyticsService_EraDistribution_InvalidMetric(t *testing.T) {
	t.Parallel()

	_, _, stats := fixtureRepos()
	_, err := NewAnalyticsService(stats).EraDistribution(context.Background(), "odi", "player_country")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyticsService_CountryContribution(t *testing.T) {
	t.Parallel()

	_, _, stats := fixtureRepos()
	got, err := NewAnalyticsService(stats).CountryContribution(context.Background(), "odi")
	require.NoError(t, err)
	require.Len(t, got, 3)

	india := got[0]
	assert.Equal(t, "INDIA", india.Country)
	assert.Equal(t, 2, india.PlayerCount)
	assert.Equal(t, 29199, india.TotalRuns)
	assert.Equal(t, 154, india.TotalWickets)
	assert.InDelta(t, 47.7, india.AvgBattingAvg, 1e-9)
	assert.InDelta(t, 44.48, india.AvgBowlingAvg, 1e-9, "only records with a bowling average count")

	assert.Equal(t, "AUS", got[1].Country)
	assert.Equal(t, "PAK", got[2].Country)
}

func TestAnalyticsService_CountryContribution_SumsRecordsUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playerstatsmock.NewRepository(t)
	repo.On("ListByFormat", mock.Anything, playerstats.FormatODI).Return([]playerstats.FormatStat{
		{PlayerName: "A", PlayerCountry: "IND", Format: playerstats.FormatODI, Runs: 100},
		{PlayerName: "B", PlayerCountry: "IND", Format: playerstats.FormatODI, Runs: 200},
	}, nil).Once()

	got, err := NewAnalyticsService(repo).CountryContribution(context.Background(), "odi")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 300, got[0].TotalRuns)
	assert.Equal(t, 2, got[0].PlayerCount)
	assert.Equal(t, 0.0, got[0].AvgBattingAvg)
}

func TestAnalyticsService_TopBoundaryHitters(t *testing.T) {
	t.Parallel()

	_, _, stats := fixtureRepos()
	service := NewAnalyticsService(stats)

	got, err := service.TopBoundaryHitters(context.Background(), "odi", 0)
	require.NoError(t, err)
	require.Len(t, got, 4, "records without boundaries are excluded")
	assert.Equal(t, "SR Tendulkar", got[0].Name)
	assert.Equal(t, 2211, got[0].TotalBoundaries)
	assert.Equal(t, "RT Ponting", got[1].Name)
	assert.Equal(t, "MS Dhoni", got[2].Name)
	assert.Equal(t, "Shahid Afridi", got[3].Name)

	top, err := service.TopBoundaryHitters(context.Background(), "odi", 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	_, err = service.TopBoundaryHitters(context.Background(), "odi", -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyticsService_StrikeRateVsAverage(t *testing.T) {
	t.Parallel()

	_, _, stats := fixtureRepos()
	service := NewAnalyticsService(stats)

	got, err := service.StrikeRateVsAverage(context.Background(), "odi", DefaultScatterMinRuns)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	got, err = service.StrikeRateVsAverage(context.Background(), "odi", 10000)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ScatterPoint{Name: "SR Tendulkar", Country: "INDIA", Average: 44.83, StrikeRate: 86.23, Runs: 18426, Matches: 463}, got[0])

	_, err = service.StrikeRateVsAverage(context.Background(), "odi", -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
