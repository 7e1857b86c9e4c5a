package analyzer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSentinel/internal/config"
	"DrawSentinel/internal/model"
)

func testConfig(t *testing.T, pool, pick, coldThreshold int) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Strategy.NumberPool = pool
	cfg.Strategy.NumbersToSelect = pick
	cfg.Strategy.ColdThreshold = coldThreshold
	// Combination analysis is opt-in per test.
	cfg.Analysis.Combinations.Pairs = false
	cfg.Analysis.Combinations.Triplets = false
	return cfg
}

func drawTable(numbers ...[]int) []model.Draw {
	draws := make([]model.Draw, len(numbers))
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, nums := range numbers {
		draws[i] = model.Draw{Date: base.AddDate(0, 0, i), Numbers: nums}
	}
	return draws
}

func TestNewPreconditions(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)

	_, err := New(nil, cfg)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = New(drawTable([]int{1, 2, 3}), cfg)
	assert.ErrorIs(t, err, ErrInsufficientDraws)

	a, err := New(drawTable([]int{1, 2, 3}, []int{4, 5, 6}), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, a.DrawCount())
}

func TestFrequency(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{4, 5, 6}), cfg)
	require.NoError(t, err)

	freq := a.Frequency()
	assert.Equal(t, 1, freq[1])
	assert.Equal(t, 0, freq[7])
	// Zero-count numbers are present, not absent
	assert.Contains(t, freq, 10)

	total := 0
	for _, c := range freq {
		total += c
	}
	assert.Equal(t, a.DrawCount()*cfg.Strategy.NumbersToSelect, total)
}

func TestRecency(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{4, 5, 6}), cfg)
	require.NoError(t, err)

	recency := a.Recency()
	assert.Equal(t, 0, recency[4], "seen in the most recent draw")
	assert.Equal(t, 1, recency[1], "seen one draw before the most recent")
	assert.Equal(t, 2, recency[7], "never seen is maximally stale")
}

func TestRecencyPrefersMostRecentAppearance(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 4, 5}), cfg)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Recency()[1])
}

func TestTemperature(t *testing.T) {
	cfg := testConfig(t, 10, 2, 2)
	cfg.Analysis.RecencyBins.Hot = 0
	cfg.Analysis.RecencyBins.Warm = 1
	cfg.Analysis.RecencyBins.Cold = 2

	// 7 through 10 never appear: recency 3 > cold bin
	a, err := New(drawTable([]int{1, 2}, []int{3, 4}, []int{5, 6}), cfg)
	require.NoError(t, err)

	buckets := a.Temperature()
	assert.Equal(t, []int{5, 6}, buckets.Hot)
	assert.Equal(t, []int{3, 4}, buckets.Warm)
	assert.Equal(t, []int{7, 8, 9, 10}, buckets.Cold)
	// 1 and 2 sit in the warm-to-cold gap and land in no bucket
	assert.NotContains(t, buckets.Warm, 1)
	assert.NotContains(t, buckets.Cold, 1)
}

func TestColdNumbers(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 4}), cfg)
	require.NoError(t, err)

	// Window is the last 2 draws: {4,5,6} and {1,2,4}
	assert.Equal(t, []int{3, 7, 8, 9, 10}, a.ColdNumbers())
}

func TestPrimes(t *testing.T) {
	tests := []struct {
		pool int
		want []int
	}{
		{1, nil},
		{2, []int{2}},
		{10, []int{2, 3, 5, 7}},
		{55, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, primesUpTo(tt.pool), "pool %d", tt.pool)
	}
}

func TestAnalyzeAllIdempotent(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	cfg.Analysis.Combinations.Pairs = true
	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 2, 6}), cfg)
	require.NoError(t, err)

	first := a.AnalyzeAll()
	second := a.AnalyzeAll()
	assert.Equal(t, first, second)
}

func TestCountsInWindow(t *testing.T) {
	cfg := testConfig(t, 10, 3, 2)
	a, err := New(drawTable([]int{1, 2, 3}, []int{1, 4, 5}, []int{1, 2, 6}), cfg)
	require.NoError(t, err)

	counts := a.CountsInWindow(2)
	assert.Equal(t, 2, counts[1])
	assert.Equal(t, 1, counts[2])
	assert.Equal(t, 0, counts[3])

	// Oversized window covers the whole table
	all := a.CountsInWindow(100)
	assert.Equal(t, 3, all[1])
}
