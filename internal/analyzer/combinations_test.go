package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationsDisabled(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 2, 4}), cfg)
	require.NoError(t, err)

	assert.Nil(t, a.Combinations())
}

func TestCombinationsPairCounts(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	cfg.Analysis.Combinations.Pairs = true
	cfg.Analysis.MinCombinationCount = 2

	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 2, 4}, []int{1, 2, 5}), cfg)
	require.NoError(t, err)

	stats := a.Combinations()
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Size)

	// Only (1,2) recurs; every other pair appears once and is filtered out.
	require.Len(t, stats[0].Top, 1)
	assert.Equal(t, []int{1, 2}, stats[0].Top[0].Numbers)
	assert.Equal(t, 3, stats[0].Top[0].Count)
}

func TestCombinationsParticipation(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	cfg.Analysis.Combinations.Pairs = true
	cfg.Analysis.TopRange = 2

	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 2, 4}, []int{1, 2, 5}), cfg)
	require.NoError(t, err)

	stats := a.Combinations()
	require.Len(t, stats, 1)

	// Truncated to top_range and ranked descending by count
	require.Len(t, stats[0].Participation, 2)
	top := stats[0].Participation[0]
	assert.Equal(t, 1, top.Number)
	assert.Equal(t, 6, top.Count, "1 joins two pairs in each of three draws")
	assert.InDelta(t, 1.0, top.Share, 1e-9)
	assert.GreaterOrEqual(t, top.Count, stats[0].Participation[1].Count)
}

func TestCombinationsUnsortedDrawNumbers(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	cfg.Analysis.Combinations.Pairs = true

	// Pair keys are built from sorted numbers, so order within a draw is irrelevant.
	a, err := New(drawTable([]int{3, 1, 2}, []int{2, 3, 1}), cfg)
	require.NoError(t, err)

	stats := a.Combinations()
	require.Len(t, stats, 1)
	require.Len(t, stats[0].Top, 3)
	for _, cc := range stats[0].Top {
		assert.Equal(t, 2, cc.Count)
	}
}

func TestCombinationsTripletToggle(t *testing.T) {
	cfg := testConfig(t, 10, 4, 2)
	cfg.Analysis.Combinations.Triplets = true
	cfg.Analysis.MinCombinationCount = 1

	a, err := New(drawTable([]int{1, 2, 3, 4}, []int{1, 2, 3, 5}), cfg)
	require.NoError(t, err)

	stats := a.Combinations()
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].Size)

	// (1,2,3) appears in both draws and ranks first.
	assert.Equal(t, []int{1, 2, 3}, stats[0].Top[0].Numbers)
	assert.Equal(t, 2, stats[0].Top[0].Count)
}

func TestCombinationSizeLargerThanDraw(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	cfg.Analysis.Combinations.Quadruplets = true
	cfg.Analysis.MinCombinationCount = 1

	a, err := New(drawTable([]int{1, 2, 3}, []int{4, 5, 6}), cfg)
	require.NoError(t, err)

	stats := a.Combinations()
	require.Len(t, stats, 1)
	assert.Empty(t, stats[0].Top)
}

func TestForEachCombination(t *testing.T) {
	var combos [][]int
	forEachCombination([]int{1, 2, 3, 4}, 2, func(c []int) {
		combos = append(combos, append([]int(nil), c...))
	})

	want := [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	assert.Equal(t, want, combos)
}

func TestForEachCombinationFullSize(t *testing.T) {
	var combos [][]int
	forEachCombination([]int{7, 8, 9}, 3, func(c []int) {
		combos = append(combos, append([]int(nil), c...))
	})
	assert.Equal(t, [][]int{{7, 8, 9}}, combos)
}
