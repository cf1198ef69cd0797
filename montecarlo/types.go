// Package montecarlo defines options, sentinel errors, and the Result type
// for percolation-threshold estimation.
package montecarlo

import (
	"errors"
	"math"

	"github.com/katalvlaran/percolath/percolation"
)

// Sentinel errors for estimation arguments.
var (
	// ErrInvalidSide indicates a lattice side below 1.
	ErrInvalidSide = errors.New("montecarlo: lattice side must be at least 1")
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("montecarlo: trial count must be at least 1")
)

// confidenceZ is the z-score of the two-sided 95% confidence interval.
const confidenceZ = 1.96

// Options configures a Run.
// Use DefaultOptions() to get the default setup (fixed seed, Conn4).
type Options struct {
	// Seed drives the shuffled open orders. Seed 0 selects a fixed default
	// stream, so runs stay reproducible unless a caller opts out.
	Seed int64
	// Conn is forwarded to every trial's grid.
	Conn percolation.Connectivity
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithSeed returns an Option that sets the RNG seed.
// Seed 0 keeps the deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConnectivity returns an Option that sets the adjacency rule used by
// every trial grid.
func WithConnectivity(c percolation.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns an Options initialized with Seed=0 (deterministic
// default stream) and percolation.Conn4.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Conn: percolation.Conn4,
	}
}

// Result holds the outcome of a Run: one observed threshold per trial, the
// fraction of sites that had to open before the system percolated.
type Result struct {
	// Side is the lattice dimension every trial used.
	Side int
	// Trials is the number of independent trials.
	Trials int
	// Thresholds holds one observed threshold per trial, each in (0, 1].
	Thresholds []float64
}

// Mean returns the average observed threshold.
//
// Complexity: O(trials).
func (r *Result) Mean() float64 {
	var sum float64
	for _, x := range r.Thresholds {
		sum += x
	}

	return sum / float64(len(r.Thresholds))
}

// StdDev returns the sample standard deviation of the observed thresholds
// (n−1 denominator), or 0 when fewer than two trials exist.
//
// Complexity: O(trials).
func (r *Result) StdDev() float64 {
	if len(r.Thresholds) < 2 {
		return 0
	}
	m := r.Mean()
	var sq float64
	for _, x := range r.Thresholds {
		sq += (x - m) * (x - m)
	}

	return math.Sqrt(sq / float64(len(r.Thresholds)-1))
}

// ConfidenceInterval returns the endpoints of the 95% confidence interval
// for the mean threshold: mean ± 1.96·σ/√trials.
//
// Complexity: O(trials).
func (r *Result) ConfidenceInterval() (lo, hi float64) {
	m := r.Mean()
	delta := confidenceZ * r.StdDev() / math.Sqrt(float64(len(r.Thresholds)))

	return m - delta, m + delta
}
