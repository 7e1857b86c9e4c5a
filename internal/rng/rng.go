// Package rng provides the single seeded random stream used by a pipeline
// run. All sampling (weight perturbation, without-replacement draws, prime
// target choice) reads from one source, so a fixed seed reproduces a run.
package rng

import (
	"math/rand/v2"
	"time"
)

// RNG wraps a PCG stream behind both the *rand.Rand helpers and the raw
// Source that the gonum samplers consume.
type RNG struct {
	src rand.Source
	*rand.Rand
}

// New returns a time-seeded RNG.
func New() *RNG {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded returns an RNG with a fixed seed for reproducible runs.
func NewSeeded(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &RNG{src: src, Rand: rand.New(src)}
}

// Source exposes the underlying stream for gonum's distuv and sampleuv.
func (r *RNG) Source() rand.Source { return r.src }
