package generator

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSentinel/internal/analyzer"
	"DrawSentinel/internal/config"
	"DrawSentinel/internal/model"
	"DrawSentinel/internal/rng"
)

func testConfig(t *testing.T, pool, pick int) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Strategy.NumberPool = pool
	cfg.Strategy.NumbersToSelect = pick
	cfg.Strategy.ColdThreshold = 2
	cfg.Strategy.LowNumberMax = pool / 2
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

func testGenerator(t *testing.T, cfg *config.Config, seed uint64, numbers ...[]int) *Generator {
	t.Helper()
	a, err := analyzer.New(drawTable(numbers...), cfg)
	require.NoError(t, err)
	return New(a, cfg, rng.NewSeeded(seed))
}

func TestWeightsSumToOne(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	g := testGenerator(t, cfg, 1, []int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 7})

	weights := g.Weights()
	require.Len(t, weights, 10)

	sum := 0.0
	for _, w := range weights {
		assert.Greater(t, w, 0.0, "every pool number keeps a positive weight")
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestWeightsFrequencyBias(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	cfg.Strategy.RandomWeight = 0 // isolate the deterministic terms
	g := testGenerator(t, cfg, 1,
		[]int{1, 2, 3}, []int{1, 2, 4}, []int{1, 2, 5}, []int{1, 3, 6})

	weights := g.Weights()
	assert.Greater(t, weights[0], weights[9], "frequent number outweighs absent number")
	assert.Greater(t, weights[1], weights[5], "more appearances mean more weight")
}

func TestWeightsSeededReproducible(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	table := [][]int{{1, 2, 3}, {4, 5, 6}}

	first := testGenerator(t, cfg, 42, table...).Weights()
	second := testGenerator(t, cfg, 42, table...).Weights()
	assert.Equal(t, first, second)

	other := testGenerator(t, cfg, 7, table...).Weights()
	assert.NotEqual(t, first, other)
}

func TestWeightsFreshPerCall(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	g := testGenerator(t, cfg, 42, []int{1, 2, 3}, []int{4, 5, 6})

	// The random term reads from the stream, so consecutive calls differ.
	assert.NotEqual(t, g.Weights(), g.Weights())
}

func TestWeightsTinyTableRecencyInert(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	cfg.Strategy.FrequencyWeight = 0
	cfg.Strategy.RandomWeight = 0
	cfg.Strategy.RecentWeight = 1
	g := testGenerator(t, cfg, 1, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})

	// Under five draws the trailing window is empty, so only the baseline remains.
	for _, w := range g.Weights() {
		assert.InDelta(t, 0.1, w, 1e-9)
	}
}

func TestWeightsZeroFactors(t *testing.T) {
	cfg := testConfig(t, 10, 3)
	cfg.Strategy.FrequencyWeight = 0
	cfg.Strategy.RecentWeight = 0
	cfg.Strategy.RandomWeight = 0
	g := testGenerator(t, cfg, 1, []int{1, 2, 3}, []int{4, 5, 6})

	// Only the uniform baseline remains.
	for _, w := range g.Weights() {
		assert.InDelta(t, 0.1, w, 1e-9)
	}
}
