// Package montecarlo estimates the percolation threshold of a square
// lattice by repeated randomized simulation.
//
// What:
//
//   - Run(side, trials) performs independent trials: each builds a fresh
//     side×side percolation.Grid, opens its sites in a uniformly shuffled
//     order, and stops the moment the system percolates. The fraction of
//     sites opened at that moment is the trial's observed threshold.
//   - Result collects one threshold per trial and derives the sample
//     statistics: Mean, StdDev (n−1 denominator), and the 95% confidence
//     interval of the mean.
//
// Why:
//
//   - The critical probability p* of site percolation has no closed form;
//     simulation is the standard way to estimate it (p* ≈ 0.5927 for the
//     orthogonal square lattice).
//   - Deterministic seeding makes experiments reproducible and testable.
//
// Complexity:
//
//   - Run: O(trials · side² · α(side²)) time, O(side²) scratch memory.
//   - Result statistics: O(trials) each.
//
// Options:
//
//   - WithSeed(seed): RNG seed; 0 (the default) selects a fixed stream, so
//     identical calls return identical Results.
//   - WithConnectivity(percolation.Conn8): widen adjacency to diagonals
//     for every trial grid (default percolation.Conn4).
//
// Errors:
//
//   - ErrInvalidSide: side < 1.
//   - ErrInvalidTrials: trials < 1.
package montecarlo
