package generator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"
)

// Heuristic scaling constants for the three weight terms.
const (
	frequencyScale = 10
	recentScale    = 5
	dirichletScale = 0.7 * 15
)

// recentWindowShare is the trailing slice of the table counted as "recent".
const recentWindowShare = 0.2

// Weights builds the per-number sampling distribution: a uniform
// baseline plus frequency, recency, and Dirichlet perturbation terms, then
// normalized to sum to 1. Index i holds the weight of number i+1. Every
// entry stays strictly positive because the baseline is never scaled away.
// Recomputed at the start of every generation call, so runs differ unless
// the random source is seeded. On tables of fewer than five draws the
// trailing recent window truncates to zero, leaving the recency term inert.
func (g *Generator) Weights() []float64 {
	pool := g.cfg.Strategy.NumberPool
	weights := make([]float64, pool)
	for i := range weights {
		weights[i] = 1.0
	}

	freq := g.analyzer.Frequency()
	totalFreq := 0
	for _, c := range freq {
		totalFreq += c
	}
	if totalFreq > 0 {
		factor := g.cfg.Strategy.FrequencyWeight * frequencyScale
		for i := range weights {
			weights[i] += float64(freq[i+1]) / float64(totalFreq) * factor
		}
	}

	window := int(float64(g.analyzer.DrawCount()) * recentWindowShare)
	recent := g.analyzer.CountsInWindow(window)
	totalRecent := 0
	for _, c := range recent {
		totalRecent += c
	}
	if totalRecent > 0 {
		factor := g.cfg.Strategy.RecentWeight * recentScale
		for i := range weights {
			weights[i] += float64(recent[i+1]) / float64(totalRecent) * factor
		}
	}

	// Random composition over the pool, summing to 1 before scaling.
	alpha := make([]float64, pool)
	for i := range alpha {
		alpha[i] = 1.0
	}
	perturbation := distmv.NewDirichlet(alpha, g.rng.Source()).Rand(nil)
	factor := g.cfg.Strategy.RandomWeight * dirichletScale
	for i := range weights {
		weights[i] += perturbation[i] * factor
	}

	floats.Scale(1/floats.Sum(weights), weights)
	return weights
}
