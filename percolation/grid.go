// Package percolation provides the Grid type: an n×n lattice of sites that
// supports opening sites one at a time and querying, in near-constant time,
// whether fluid poured on the top row reaches the bottom row.
//
// Connectivity among open sites is tracked by a single weighted quick-union
// structure over all n² sites plus two virtual sentinels; fullness is
// materialized in a status array by an iterative flood fill, so reads never
// touch the disjoint set.
package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolath/unionfind"
)

// Grid models an n×n percolation system. Sites are addressed by 1-based
// (row, col) with row 1 on top. The zero value is not usable; construct
// with New or FromMatrix.
//
// Grid is not safe for concurrent use; callers own synchronization.
type Grid struct {
	side    int                  // lattice dimension n
	conn    Connectivity         // adjacency rule
	offsets [][2]int             // neighbor (row, col) deltas per conn
	sites   []SiteStatus         // row-major site statuses, len side²
	dsu     *unionfind.UnionFind // side²+2 elements: all sites plus both sentinels
	top     int                  // virtual top sentinel index (= side²)
	bottom  int                  // virtual bottom sentinel index (= side²+1)
	opened  int                  // number of non-Closed sites
}

// New constructs an all-Closed side×side grid backed by a fresh disjoint
// set of side²+2 singletons: one per site, plus the virtual top sentinel at
// index side² and the virtual bottom sentinel at index side²+1.
// Returns ErrInvalidSide if side < 1, ErrBadConnectivity for an unknown
// connectivity option.
//
// Complexity: O(side²) time and memory.
func New(side int, opts ...GridOption) (*Grid, error) {
	// 1) Validate arguments before allocating anything.
	if side < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Precompute neighbor offsets for the chosen adjacency.
	var offsets [][2]int
	switch o.Conn {
	case Conn4:
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	case Conn8:
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	default:
		return nil, ErrBadConnectivity
	}

	// 3) One disjoint-set element per site plus the two sentinels.
	//    The element count is positive here, so construction cannot fail.
	total := side * side
	dsu, _ := unionfind.New(total + 2)

	return &Grid{
		side:    side,
		conn:    o.Conn,
		offsets: offsets,
		sites:   make([]SiteStatus, total),
		dsu:     dsu,
		top:     total,
		bottom:  total + 1,
	}, nil
}

// FromMatrix constructs a grid from a square boolean matrix and opens every
// site whose entry is true; open[r][c] maps to site (r+1, c+1). The input
// is read once and not retained.
// Returns ErrInvalidSide for a matrix with no rows, ErrNonSquare when any
// row's length differs from the row count, and ErrBadConnectivity as New
// does.
//
// Complexity: O(side²) time and memory.
func FromMatrix(open [][]bool, opts ...GridOption) (*Grid, error) {
	// 1) The row count fixes the side; every row must match it.
	if len(open) == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrInvalidSide)
	}
	side := len(open)
	var r int
	for r = 0; r < side; r++ {
		if len(open[r]) != side {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, r, len(open[r]), side)
		}
	}

	// 2) Build the empty grid, then replay the true cells through Open.
	g, err := New(side, opts...)
	if err != nil {
		return nil, err
	}
	var c int
	for r = 0; r < side; r++ {
		for c = 0; c < side; c++ {
			if open[r][c] {
				_ = g.Open(r+1, c+1) // coordinates are in range by construction
			}
		}
	}

	return g, nil
}

// Open unblocks site (row, col) and wires it into the disjoint set: a
// top-row site joins the virtual top sentinel, and every in-bounds,
// non-Closed neighbor joins the new site. If the merged component now
// touches the top, fluid floods every open site reachable from here, and
// bottom-row sites join the virtual bottom sentinel as they fill.
// Opening a non-Closed site is a no-op. Returns ErrOutOfRange for
// coordinates outside [1, side], leaving the grid untouched.
//
// Complexity: near O(1) amortized unions per call; flooding totals O(side²)
// across the grid's whole lifetime, since each site fills exactly once.
func (g *Grid) Open(row, col int) error {
	// 1) Validate coordinates before mutating anything.
	if err := g.check(row, col); err != nil {
		return err
	}
	idx := g.index(row, col)
	if g.sites[idx] != Closed {
		return nil
	}

	// 2) Mark the site Open and count it.
	g.sites[idx] = Open
	g.opened++

	// 3) A top-row site drinks straight from the source.
	if row == 1 {
		g.union(idx, g.top)
	}

	// 4) Join every in-bounds neighbor that is itself open.
	var nr, nc int
	for _, d := range g.offsets {
		nr, nc = row+d[0], col+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		if g.sites[g.index(nr, nc)] == Closed {
			continue
		}
		g.union(idx, g.index(nr, nc))
	}

	// 5) If the component reaches the top row, fluid spreads from here.
	if g.sameSet(idx, g.top) {
		g.flood(idx)
	}

	return nil
}

// IsOpen reports whether site (row, col) is not Closed.
// Returns ErrOutOfRange for coordinates outside [1, side].
//
// Complexity: O(1), a status-array read.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}

	return g.sites[g.index(row, col)] != Closed, nil
}

// IsFull reports whether site (row, col) is connected to the top row
// through a chain of open neighbors.
// Returns ErrOutOfRange for coordinates outside [1, side].
//
// Complexity: O(1), a status-array read.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}

	return g.sites[g.index(row, col)] == Full, nil
}

// Status returns the SiteStatus of site (row, col).
// Returns ErrOutOfRange for coordinates outside [1, side].
//
// Complexity: O(1).
func (g *Grid) Status(row, col int) (SiteStatus, error) {
	if err := g.check(row, col); err != nil {
		return Closed, err
	}

	return g.sites[g.index(row, col)], nil
}

// Percolates reports whether fluid from the top row reaches the bottom
// row, i.e. whether the two virtual sentinels share a component.
//
// Complexity: one disjoint-set query.
func (g *Grid) Percolates() bool {
	return g.sameSet(g.top, g.bottom)
}

// Side returns the lattice dimension n.
//
// Complexity: O(1).
func (g *Grid) Side() int {
	return g.side
}

// Connectivity returns the adjacency rule the grid was built with.
//
// Complexity: O(1).
func (g *Grid) Connectivity() Connectivity {
	return g.conn
}

// OpenCount returns the number of non-Closed sites.
//
// Complexity: O(1).
func (g *Grid) OpenCount() int {
	return g.opened
}

// flood promotes every Open site reachable from start to Full using an
// explicit LIFO worklist. Full sites are terminal and never re-enter the
// worklist, so each site is processed at most once across all floods. A
// bottom-row site joins the virtual bottom sentinel at the moment it
// fills, which keeps Percolates equivalent to "some bottom-row site is
// Full". Callers guarantee that start's component touches the top.
func (g *Grid) flood(start int) {
	work := []int{start}
	var (
		idx, row, col int
		nr, nc        int
	)
	for len(work) > 0 {
		idx = work[len(work)-1]
		work = work[:len(work)-1]
		if g.sites[idx] == Full {
			continue
		}
		g.sites[idx] = Full
		row, col = g.coordinate(idx)
		if row == g.side {
			g.union(idx, g.bottom)
		}
		for _, d := range g.offsets {
			nr, nc = row+d[0], col+d[1]
			if !g.inBounds(nr, nc) {
				continue
			}
			if g.sites[g.index(nr, nc)] == Open {
				work = append(work, g.index(nr, nc))
			}
		}
	}
}

// index maps 1-based (row, col) to a row-major site index.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return (row-1)*g.side + (col - 1)
}

// coordinate converts a row-major site index back to 1-based (row, col).
// Complexity: O(1).
func (g *Grid) coordinate(idx int) (row, col int) {
	return idx/g.side + 1, idx%g.side + 1
}

// inBounds reports whether (row, col) lies within [1, side]².
// Complexity: O(1).
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.side && col >= 1 && col <= g.side
}

// check validates site coordinates, wrapping ErrOutOfRange with detail.
func (g *Grid) check(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside [1,%d]", ErrOutOfRange, row, col, g.side)
	}

	return nil
}

// union and sameSet adapt the disjoint set to internal indices, which are
// always valid here, so its range errors cannot fire.
func (g *Grid) union(p, q int) {
	_ = g.dsu.Union(p, q)
}

func (g *Grid) sameSet(p, q int) bool {
	ok, _ := g.dsu.Connected(p, q)

	return ok
}
