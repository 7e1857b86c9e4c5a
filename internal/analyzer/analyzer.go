package analyzer

import (
	"errors"
	"fmt"
	"sort"

	"DrawSentinel/internal/config"
	"DrawSentinel/internal/model"
)

var (
	// ErrEmptyTable indicates the historical table has no draws.
	ErrEmptyTable = errors.New("historical table is empty")

	// ErrInsufficientDraws indicates the table is smaller than a configured window.
	ErrInsufficientDraws = errors.New("not enough draws for configured window")
)

// Analyzer computes per-number and per-combination statistics over one
// historical table. The table is never mutated, so repeated calls on the
// same Analyzer yield identical results.
type Analyzer struct {
	draws  []model.Draw
	cfg    *config.Config
	pool   int
	pick   int
	primes []int
}

// New creates an Analyzer over the given table. The table must be non-empty
// and at least as large as the cold-number window; windowed computations are
// undefined on smaller tables, so the load is rejected up front.
func New(draws []model.Draw, cfg *config.Config) (*Analyzer, error) {
	if len(draws) == 0 {
		return nil, ErrEmptyTable
	}
	if len(draws) < cfg.Strategy.ColdThreshold {
		return nil, fmt.Errorf("%w: have %d draws, cold_threshold is %d",
			ErrInsufficientDraws, len(draws), cfg.Strategy.ColdThreshold)
	}
	return &Analyzer{
		draws:  draws,
		cfg:    cfg,
		pool:   cfg.Strategy.NumberPool,
		pick:   cfg.Strategy.NumbersToSelect,
		primes: primesUpTo(cfg.Strategy.NumberPool),
	}, nil
}

// DrawCount returns the number of draws in the table.
func (a *Analyzer) DrawCount() int { return len(a.draws) }

// Frequency counts appearances of each pool number across all draws.
// Numbers that never appeared are present with count 0.
func (a *Analyzer) Frequency() map[int]int {
	freq := make(map[int]int, a.pool)
	for n := 1; n <= a.pool; n++ {
		freq[n] = 0
	}
	for _, d := range a.draws {
		for _, n := range d.Numbers {
			freq[n]++
		}
	}
	return freq
}

// Recency returns, per pool number, how many draws have passed since its most
// recent appearance. The most recent draw scores 0. A number that has never
// appeared scores the total draw count, the maximally stale value.
func (a *Analyzer) Recency() map[int]int {
	recency := make(map[int]int, a.pool)
	total := len(a.draws)
	for n := 1; n <= a.pool; n++ {
		recency[n] = total
	}
	for i := total - 1; i >= 0; i-- {
		age := total - 1 - i
		for _, n := range a.draws[i].Numbers {
			if recency[n] > age {
				recency[n] = age
			}
		}
	}
	return recency
}

// Temperature classifies pool numbers into hot/warm/cold recency buckets.
// Numbers between the warm and cold thresholds land in no bucket.
func (a *Analyzer) Temperature() model.TemperatureBuckets {
	recency := a.Recency()
	bins := a.cfg.Analysis.RecencyBins

	var buckets model.TemperatureBuckets
	for n := 1; n <= a.pool; n++ {
		r := recency[n]
		switch {
		case r <= bins.Hot:
			buckets.Hot = append(buckets.Hot, n)
		case r <= bins.Warm:
			buckets.Warm = append(buckets.Warm, n)
		case r > bins.Cold:
			buckets.Cold = append(buckets.Cold, n)
		}
	}
	return buckets
}

// CountsInWindow counts appearances of each pool number within the trailing
// lastN draws. A lastN larger than the table covers the whole table.
func (a *Analyzer) CountsInWindow(lastN int) map[int]int {
	counts := make(map[int]int, a.pool)
	for n := 1; n <= a.pool; n++ {
		counts[n] = 0
	}
	start := len(a.draws) - lastN
	if start < 0 {
		start = 0
	}
	for _, d := range a.draws[start:] {
		for _, n := range d.Numbers {
			counts[n]++
		}
	}
	return counts
}

// ColdNumbers returns the pool numbers absent from the most recent
// cold_threshold draws, in ascending order.
func (a *Analyzer) ColdNumbers() []int {
	seen := a.CountsInWindow(a.cfg.Strategy.ColdThreshold)
	var cold []int
	for n := 1; n <= a.pool; n++ {
		if seen[n] == 0 {
			cold = append(cold, n)
		}
	}
	return cold
}

// Primes returns the prime numbers within the pool, computed once at construction.
func (a *Analyzer) Primes() []int {
	return a.primes
}

// AnalyzeAll runs every analysis and returns the consolidated report.
func (a *Analyzer) AnalyzeAll() *model.AnalysisReport {
	return &model.AnalysisReport{
		Frequency:    a.Frequency(),
		Recency:      a.Recency(),
		Temperature:  a.Temperature(),
		Combinations: a.Combinations(),
		ColdNumbers:  a.ColdNumbers(),
		Primes:       a.primes,
	}
}

func sortedCopy(nums []int) []int {
	out := make([]int, len(nums))
	copy(out, nums)
	sort.Ints(out)
	return out
}
