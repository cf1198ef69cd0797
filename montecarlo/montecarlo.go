package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/percolath/percolation"
)

// Run estimates the percolation threshold of a side×side lattice over the
// given number of independent trials. Each trial opens the sites of a
// fresh grid in a uniformly shuffled order until the system percolates and
// records the fraction of sites open at that moment.
//
// Steps:
//  1. Validate side ≥ 1 and trials ≥ 1; apply options.
//  2. Seed one deterministic RNG for the whole run (Seed 0 ⇒ fixed default).
//  3. Per trial: fresh grid, Fisher–Yates-shuffled site order, open until
//     Percolates, record OpenCount/side².
//  4. Wrap the thresholds in a Result for mean/deviation/interval queries.
//
// Error Conditions:
//   - ErrInvalidSide   : if side < 1.
//   - ErrInvalidTrials : if trials < 1.
//   - percolation.ErrBadConnectivity : forwarded from grid construction.
//
// Complexity: O(trials·side²·α(side²)) time, O(side²) scratch memory.
func Run(side, trials int, opts ...Option) (*Result, error) {
	// 1. Validate arguments before any allocation.
	if side < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. One RNG drives every trial in sequence, so a fixed seed fixes the
	//    exact shuffle of every trial and with it the whole Result.
	rng := rngFromSeed(o.Seed)

	total := side * side
	order := make([]int, total)
	thresholds := make([]float64, trials)

	var (
		t, i, idx int
		g         *percolation.Grid
		err       error
	)
	for t = 0; t < trials; t++ {
		// 3. Fresh grid and a uniformly shuffled visiting order; the order
		//    slice is reused across trials to avoid per-trial allocation.
		if g, err = percolation.New(side, percolation.WithConnectivity(o.Conn)); err != nil {
			return nil, err
		}
		for i = 0; i < total; i++ {
			order[i] = i
		}
		shuffleIntsInPlace(order, rng)

		// Every step opens a distinct Closed site, so OpenCount equals the
		// number of steps taken when the loop stops.
		for i = 0; i < total && !g.Percolates(); i++ {
			idx = order[i]
			_ = g.Open(idx/side+1, idx%side+1) // coordinates are in range by construction
		}
		thresholds[t] = float64(g.OpenCount()) / float64(total)
	}

	// 4. Hand the raw observations to Result; statistics stay lazy.
	return &Result{Side: side, Trials: trials, Thresholds: thresholds}, nil
}
