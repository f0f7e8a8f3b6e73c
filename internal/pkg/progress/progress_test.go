package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
)

func goal(area areas.Area, year int, text string, done bool) models.Goal {
	return models.Goal{PlanID: 1, PeriodYear: year, Area: area, GoalText: text, IsCompleted: done}
}

func TestComputeAreaStatsRegistryOrder(t *testing.T) {
	goals := []models.Goal{
		goal(areas.AreaSaude, 2025, "correr", true),
		goal(areas.AreaEspiritual, 2025, "meditar", false),
	}

	stats := ComputeAreaStats(goals, Options{})
	require.Len(t, stats, 7)
	assert.Equal(t, areas.AreaEspiritual, stats[0].Area)
	assert.Equal(t, areas.AreaSaude, stats[6].Area)
	assert.Equal(t, 1, stats[6].Total)
	assert.Equal(t, 1, stats[6].Completed)
	assert.Equal(t, 100, stats[6].Percentage)
}

func TestComputeAreaStatsTotalsMatchFilteredGoals(t *testing.T) {
	goals := []models.Goal{
		goal(areas.AreaSocial, 2024, "a", true),
		goal(areas.AreaSocial, 2025, "b", false),
		goal(areas.AreaFinanceiro, 2026, "c", true),
		goal(areas.AreaFamiliar, 2025, "", false),
	}
	min := 2025
	opts := Options{Range: YearRange{Min: &min}}

	stats := ComputeAreaStats(goals, opts)
	var total, completed int
	for _, s := range stats {
		total += s.Total
		completed += s.Completed
	}
	filtered := Filter(goals, opts)
	assert.Equal(t, len(filtered), total)

	var wantCompleted int
	for _, g := range filtered {
		if g.IsCompleted {
			wantCompleted++
		}
	}
	assert.Equal(t, wantCompleted, completed)
}

func TestComputeAreaStatsOnlyFilled(t *testing.T) {
	goals := []models.Goal{
		goal(areas.AreaSocial, 2025, "", false),
		goal(areas.AreaSocial, 2025, "visitar amigos", true),
	}

	all := ComputeAreaStats(goals, Options{})
	filled := ComputeAreaStats(goals, Options{OnlyFilled: true})

	assert.Equal(t, 2, all[3].Total)
	assert.Equal(t, 1, filled[3].Total)
	assert.Equal(t, 100, filled[3].Percentage)
}

func TestComputeAreaStatsEmptyInput(t *testing.T) {
	stats := ComputeAreaStats(nil, Options{})
	require.Len(t, stats, 7)
	for _, s := range stats {
		assert.Zero(t, s.Total)
		assert.Zero(t, s.Percentage)
	}
	assert.Equal(t, 0, Overall(stats))
}

func TestComputeAreaStatsPanicsOnUnknownArea(t *testing.T) {
	goals := []models.Goal{{PeriodYear: 2025, Area: "astral"}}
	assert.Panics(t, func() { ComputeAreaStats(goals, Options{}) })
}

func TestOverallSumThenDivide(t *testing.T) {
	// 2 goals per area over 2 years, 5 completed across 3 areas.
	var goals []models.Goal
	for _, area := range areas.All() {
		goals = append(goals, goal(area, 2025, "x", false), goal(area, 2026, "y", false))
	}
	goals[0].IsCompleted = true // espiritual 2025
	goals[1].IsCompleted = true // espiritual 2026
	goals[2].IsCompleted = true // intelectual 2025
	goals[4].IsCompleted = true // familiar 2025
	goals[5].IsCompleted = true // familiar 2026

	stats := ComputeAreaStats(goals, Options{})
	require.Len(t, goals, 14)
	assert.Equal(t, 36, Overall(stats)) // round(100*5/14)

	assert.Equal(t, StatusGood, Classify(stats[0]))             // 2/2
	assert.Equal(t, StatusNeedsImprovement, Classify(stats[3])) // 0/2

	attention := NeedsAttention(stats)
	found := false
	for _, s := range attention {
		if s.Area == areas.AreaSocial {
			found = true
		}
	}
	assert.True(t, found, "0%% area with goals must appear in attention list")
}

func TestOverallMonotonicUnderCompletion(t *testing.T) {
	goals := []models.Goal{
		goal(areas.AreaSaude, 2025, "a", false),
		goal(areas.AreaSaude, 2025, "b", false),
		goal(areas.AreaSocial, 2025, "c", false),
	}

	prev := Overall(ComputeAreaStats(goals, Options{}))
	for i := range goals {
		goals[i].IsCompleted = true
		cur := Overall(ComputeAreaStats(goals, Options{}))
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 100, prev)
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		percentage int
		total      int
		want       Status
	}{
		{percentage: 70, total: 10, want: StatusGood},
		{percentage: 69, total: 10, want: StatusAttention},
		{percentage: 40, total: 10, want: StatusAttention},
		{percentage: 39, total: 10, want: StatusNeedsImprovement},
		{percentage: 0, total: 10, want: StatusNeedsImprovement},
		{percentage: 0, total: 0, want: StatusNone},
	}

	for _, tt := range tests {
		got := Classify(AreaStat{Total: tt.total, Percentage: tt.percentage})
		assert.Equal(t, tt.want, got, "p=%d total=%d", tt.percentage, tt.total)
	}
}

func TestZeroTotalAreasNeverFlagged(t *testing.T) {
	stats := ComputeAreaStats(nil, Options{})
	assert.Empty(t, NeedsAttention(stats))
}

func TestBestAndWorstFirstWinsOnTies(t *testing.T) {
	goals := []models.Goal{
		goal(areas.AreaEspiritual, 2025, "a", true),
		goal(areas.AreaSaude, 2025, "b", true),
		goal(areas.AreaSocial, 2025, "c", false),
	}

	stats := ComputeAreaStats(goals, Options{})
	best, ok := Best(stats)
	require.True(t, ok)
	// espiritual and saude are both 100%; espiritual comes first.
	assert.Equal(t, areas.AreaEspiritual, best.Area)

	worst, ok := Worst(stats)
	require.True(t, ok)
	// intelectual, familiar, social... all 0%; intelectual comes first.
	assert.Equal(t, areas.AreaIntelectual, worst.Area)
}

func TestRangeFromDates(t *testing.T) {
	from := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	r := RangeFromDates(&from, &to)
	assert.False(t, r.Contains(2022))
	assert.True(t, r.Contains(2023))
	assert.True(t, r.Contains(2025))
	assert.False(t, r.Contains(2026))

	open := RangeFromDates(&from, nil)
	assert.True(t, open.Contains(2999))
	assert.False(t, open.Contains(2022))

	all := RangeFromDates(nil, nil)
	assert.True(t, all.Contains(1900))
}

func TestMonthlyEvolutionCumulative(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	goals := []models.Goal{
		{PeriodYear: 2025, Area: areas.AreaSaude, GoalText: "a", IsCompleted: true, CreatedAt: jan},
		{PeriodYear: 2025, Area: areas.AreaSocial, GoalText: "b", IsCompleted: false, CreatedAt: jan},
		{PeriodYear: 2025, Area: areas.AreaSocial, GoalText: "c", IsCompleted: true, CreatedAt: mar},
	}

	series := MonthlyEvolution(goals, Options{})
	require.Len(t, series, 2)

	assert.Equal(t, "2025-01", series[0].Month)
	assert.Equal(t, 2, series[0].Total)
	assert.Equal(t, 1, series[0].Completed)
	assert.Equal(t, 50, series[0].Percentage)

	assert.Equal(t, "2025-03", series[1].Month)
	assert.Equal(t, 3, series[1].Total)
	assert.Equal(t, 2, series[1].Completed)
	assert.Equal(t, 67, series[1].Percentage)
}
