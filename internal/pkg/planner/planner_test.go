package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planovida/planovida/internal/pkg/areas"
)

func TestBuildSkeletonCounts(t *testing.T) {
	goals := BuildSkeleton(2025, 30, 5)
	require.Len(t, goals, 5*7)

	seen := make(map[[2]interface{}]int)
	for _, g := range goals {
		assert.Empty(t, g.GoalText)
		assert.False(t, g.IsCompleted)
		seen[[2]interface{}{g.PeriodYear, g.Area}]++
	}
	// Exactly one slot per (year, area) pair.
	require.Len(t, seen, 5*7)
	for key, n := range seen {
		assert.Equal(t, 1, n, "duplicate slot for %v", key)
	}
}

func TestBuildSkeletonOrderAndAges(t *testing.T) {
	goals := BuildSkeleton(2025, 30, 2)
	require.Len(t, goals, 14)

	all := areas.All()
	for i, g := range goals {
		year := 2025 + i/7
		assert.Equal(t, year, g.PeriodYear, "index %d", i)
		assert.Equal(t, 30+i/7, g.Age, "index %d", i)
		assert.Equal(t, all[i%7], g.Area, "index %d", i)
	}
}

func TestBuildSkeletonDeterministic(t *testing.T) {
	a := BuildSkeleton(2030, 18, 3)
	b := BuildSkeleton(2030, 18, 3)
	assert.Equal(t, a, b)
}

func TestBuildSkeletonZeroYears(t *testing.T) {
	assert.Empty(t, BuildSkeleton(2025, 30, 0))
	assert.Empty(t, BuildSkeleton(2025, 30, -1))
}
