package generator

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"DrawSentinel/internal/analyzer"
	"DrawSentinel/internal/config"
	"DrawSentinel/internal/model"
	"DrawSentinel/internal/rng"
)

// ErrSubsetTooSmall indicates a strategy's partition cannot supply the
// requested count, e.g. an empty "high" side when low_number_max covers the
// whole pool. The attempt is discarded, not fatal.
var ErrSubsetTooSmall = errors.New("subset too small to sample from")

// Generator produces candidate sets from a weight vector derived fresh per
// generation call.
type Generator struct {
	analyzer *analyzer.Analyzer
	cfg      *config.Config
	rng      *rng.RNG
}

// New creates a Generator. The random source drives every sampling decision,
// so a seeded source makes generation reproducible.
func New(a *analyzer.Analyzer, cfg *config.Config, r *rng.RNG) *Generator {
	return &Generator{analyzer: a, cfg: cfg, rng: r}
}

// Generate produces candidate sets split as evenly as possible across the
// three strategies (floor of total/3, at least one each). Attempts whose
// partition cannot yield a valid set are discarded without retry, so the
// returned count may fall short of the request; the shortfall is logged as
// informational, never an error. Sets are not deduplicated across strategies.
func (g *Generator) Generate() []model.CandidateSet {
	weights := g.Weights()

	requested := g.cfg.Output.SetsToGenerate
	perStrategy := requested / len(model.Strategies)
	if perStrategy < 1 {
		perStrategy = 1
	}

	var sets []model.CandidateSet
	for _, strat := range model.Strategies {
		for i := 0; i < perStrategy; i++ {
			numbers, err := g.draw(strat, weights)
			if err != nil {
				log.Printf("[WARN] %s attempt discarded: %v", strat, err)
				continue
			}
			if !g.validSet(numbers) {
				log.Printf("[WARN] %s produced an invalid set, discarded", strat)
				continue
			}
			sets = append(sets, model.CandidateSet{Numbers: numbers, Strategy: strat})
		}
	}

	if len(sets) < requested {
		log.Printf("[INFO] generated %d of %d requested sets", len(sets), requested)
	}
	return sets
}

func (g *Generator) draw(strategy model.Strategy, weights []float64) ([]int, error) {
	switch strategy {
	case model.StrategyWeightedRandom:
		return g.drawWeightedRandom(weights)
	case model.StrategyHighLowMix:
		return g.drawHighLowMix(weights)
	case model.StrategyPrimeBalanced:
		return g.drawPrimeBalanced(weights)
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// drawWeightedRandom samples k distinct numbers from the full pool using the
// weight vector as selection probabilities.
func (g *Generator) drawWeightedRandom(weights []float64) ([]int, error) {
	pool := make([]int, g.cfg.Strategy.NumberPool)
	for i := range pool {
		pool[i] = i + 1
	}
	return g.sample(pool, weights, g.cfg.Strategy.NumbersToSelect)
}

// drawHighLowMix samples floor(k/2) numbers at or below low_number_max and
// the remainder above it, each side weighted by its slice of the vector.
func (g *Generator) drawHighLowMix(weights []float64) ([]int, error) {
	lowMax := g.cfg.Strategy.LowNumberMax
	var low, high []int
	for n := 1; n <= g.cfg.Strategy.NumberPool; n++ {
		if n <= lowMax {
			low = append(low, n)
		} else {
			high = append(high, n)
		}
	}

	pick := g.cfg.Strategy.NumbersToSelect
	lowCount := pick / 2
	lowPart, err := g.sample(low, weights, lowCount)
	if err != nil {
		return nil, err
	}
	highPart, err := g.sample(high, weights, pick-lowCount)
	if err != nil {
		return nil, err
	}
	return append(lowPart, highPart...), nil
}

// drawPrimeBalanced splits the pool into primes and non-primes, picks a prime
// target uniformly among three options (a third rounded up with minimum one,
// half, half plus one), and fills the remainder with non-primes. A target
// above k makes the non-prime sample fail, which discards the attempt.
func (g *Generator) drawPrimeBalanced(weights []float64) ([]int, error) {
	primes := g.analyzer.Primes()
	primeSet := make(map[int]bool, len(primes))
	for _, p := range primes {
		primeSet[p] = true
	}
	var nonPrimes []int
	for n := 1; n <= g.cfg.Strategy.NumberPool; n++ {
		if !primeSet[n] {
			nonPrimes = append(nonPrimes, n)
		}
	}

	third := (len(primes) + 2) / 3
	if third < 1 {
		third = 1
	}
	options := []int{third, len(primes) / 2, len(primes)/2 + 1}
	primeCount := options[g.rng.IntN(len(options))]

	primePart, err := g.sample(primes, weights, primeCount)
	if err != nil {
		return nil, err
	}
	rest, err := g.sample(nonPrimes, weights, g.cfg.Strategy.NumbersToSelect-primeCount)
	if err != nil {
		return nil, err
	}
	return append(primePart, rest...), nil
}

// sample draws count distinct numbers from subset without replacement,
// weighted by each number's entry in the full weight vector. The sampler
// renormalizes over the subset internally.
func (g *Generator) sample(subset []int, weights []float64, count int) ([]int, error) {
	if count < 0 || count > len(subset) {
		return nil, fmt.Errorf("%w: need %d of %d", ErrSubsetTooSmall, count, len(subset))
	}
	if count == 0 {
		return nil, nil
	}

	w := make([]float64, len(subset))
	for i, n := range subset {
		w[i] = weights[n-1]
	}
	sampler := sampleuv.NewWeighted(w, g.rng.Source())

	out := make([]int, 0, count)
	for len(out) < count {
		idx, ok := sampler.Take()
		if !ok {
			return nil, fmt.Errorf("%w: sampler exhausted after %d of %d", ErrSubsetTooSmall, len(out), count)
		}
		out = append(out, subset[idx])
	}
	return out, nil
}

// validSet checks the candidate invariants: exactly k numbers, all distinct,
// all within [1, pool]. Sorts the set as a side effect of a passing check.
func (g *Generator) validSet(numbers []int) bool {
	if len(numbers) != g.cfg.Strategy.NumbersToSelect {
		return false
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > g.cfg.Strategy.NumberPool || seen[n] {
			return false
		}
		seen[n] = true
	}
	sort.Ints(numbers)
	return true
}
