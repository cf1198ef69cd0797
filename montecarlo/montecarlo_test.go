package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/percolath/montecarlo"  // package under test
	"github.com/katalvlaran/percolath/percolation" // connectivity option values
	"github.com/stretchr/testify/assert"           // assertion library
)

// TestRun_Errors verifies argument validation and option forwarding.
func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name   string
		side   int
		trials int
		opts   []montecarlo.Option
		err    error
	}{
		{"ZeroSide", 0, 3, nil, montecarlo.ErrInvalidSide},
		{"NegativeSide", -4, 3, nil, montecarlo.ErrInvalidSide},
		{"ZeroTrials", 3, 0, nil, montecarlo.ErrInvalidTrials},
		{"NegativeTrials", 3, -1, nil, montecarlo.ErrInvalidTrials},
		{"BadConnectivity", 3, 3, []montecarlo.Option{montecarlo.WithConnectivity(percolation.Connectivity(7))}, percolation.ErrBadConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := montecarlo.Run(tc.side, tc.trials, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, res)
		})
	}
}

// TestRun_Deterministic verifies the seed policy: identical calls yield
// identical Results, and seed 0 means the fixed default stream.
func TestRun_Deterministic(t *testing.T) {
	first, err := montecarlo.Run(6, 10)
	assert.NoError(t, err)
	second, err := montecarlo.Run(6, 10)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "default runs must reproduce exactly")

	zeroSeed, err := montecarlo.Run(6, 10, montecarlo.WithSeed(0))
	assert.NoError(t, err)
	assert.Equal(t, first, zeroSeed, "seed 0 must select the default stream")

	seededA, err := montecarlo.Run(6, 10, montecarlo.WithSeed(99))
	assert.NoError(t, err)
	seededB, err := montecarlo.Run(6, 10, montecarlo.WithSeed(99))
	assert.NoError(t, err)
	assert.Equal(t, seededA, seededB, "equal seeds must reproduce exactly")
}

// TestRun_SingleSite: a 1×1 lattice percolates exactly when its one site
// opens, so every trial observes the threshold 1.
func TestRun_SingleSite(t *testing.T) {
	res, err := montecarlo.Run(1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Side)
	assert.Equal(t, 5, res.Trials)
	assert.Len(t, res.Thresholds, 5)

	for i, th := range res.Thresholds {
		assert.Equal(t, 1.0, th, "trial %d", i)
	}
	assert.Equal(t, 1.0, res.Mean())
	assert.Equal(t, 0.0, res.StdDev())

	lo, hi := res.ConfidenceInterval()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)
}

// TestRun_ThresholdBounds checks structural sanity of a realistic run:
// every threshold lies in (0, 1], and the interval brackets the mean.
func TestRun_ThresholdBounds(t *testing.T) {
	const (
		side   = 10
		trials = 25
	)
	res, err := montecarlo.Run(side, trials)
	assert.NoError(t, err)
	assert.Equal(t, side, res.Side)
	assert.Equal(t, trials, res.Trials)
	assert.Len(t, res.Thresholds, trials)

	for i, th := range res.Thresholds {
		assert.Greater(t, th, 0.0, "trial %d", i)
		assert.LessOrEqual(t, th, 1.0, "trial %d", i)
	}

	mean := res.Mean()
	assert.Greater(t, mean, 0.0)
	assert.LessOrEqual(t, mean, 1.0)
	assert.GreaterOrEqual(t, res.StdDev(), 0.0)

	lo, hi := res.ConfidenceInterval()
	assert.LessOrEqual(t, lo, mean)
	assert.GreaterOrEqual(t, hi, mean)
}

// TestRun_Conn8LowersThreshold: with diagonals admitted, paths across the
// lattice form far earlier, so the observed mean threshold must drop.
func TestRun_Conn8LowersThreshold(t *testing.T) {
	const (
		side   = 10
		trials = 25
		seed   = 7
	)
	plain, err := montecarlo.Run(side, trials, montecarlo.WithSeed(seed))
	assert.NoError(t, err)
	diagonal, err := montecarlo.Run(side, trials,
		montecarlo.WithSeed(seed),
		montecarlo.WithConnectivity(percolation.Conn8))
	assert.NoError(t, err)

	assert.Less(t, diagonal.Mean(), plain.Mean(),
		"Conn8 (p* ≈ 0.41) must percolate earlier than Conn4 (p* ≈ 0.59)")
}

// TestResult_Statistics pins the formulas on a hand-checked pair of
// observations: mean 0.5, sample deviation √0.02, interval 0.5 ± 0.196.
func TestResult_Statistics(t *testing.T) {
	res := &montecarlo.Result{Side: 5, Trials: 2, Thresholds: []float64{0.4, 0.6}}

	assert.InDelta(t, 0.5, res.Mean(), 1e-12)
	assert.InDelta(t, 0.1414213562, res.StdDev(), 1e-9)

	lo, hi := res.ConfidenceInterval()
	assert.InDelta(t, 0.304, lo, 1e-9)
	assert.InDelta(t, 0.696, hi, 1e-9)

	// A single observation has no spread and a collapsed interval.
	single := &montecarlo.Result{Side: 5, Trials: 1, Thresholds: []float64{0.52}}
	assert.Equal(t, 0.0, single.StdDev())
	lo, hi = single.ConfidenceInterval()
	assert.InDelta(t, 0.52, lo, 1e-12)
	assert.InDelta(t, 0.52, hi, 1e-12)
}
