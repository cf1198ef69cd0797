// Package percolation models fluid percolation through an n×n lattice of
// sites, answering in near-constant time whether the top and bottom rows
// are connected by chains of open sites.
//
// What:
//
//   - Grid wraps an n×n lattice addressed by 1-based (row, col), row 1 on
//     top. Every site is Closed, Open, or Full (open and fed from the top
//     row); statuses only ever advance Closed → Open → Full.
//   - Open(row, col) unblocks a site and wires it into a single weighted
//     quick-union structure over all sites plus two virtual sentinels: the
//     top sentinel adjoins the whole first row, the bottom sentinel collects
//     bottom-row sites as they fill.
//   - When an opened site's component touches the top, an iterative
//     worklist flood fill promotes every open site it reaches to Full, so
//     IsFull and Status answer from a flat array without set queries.
//   - Percolates reports whether the two sentinels share a component,
//     which holds exactly when some bottom-row site is Full.
//   - FromMatrix replays a square [][]bool through Open in one call.
//
// Why:
//
//   - Percolation theory: estimate the critical threshold p* of a lattice
//     (see the montecarlo subpackage).
//   - Connectivity modeling: porous media, resistor networks, and any
//     other system asking "does an open path cross it?".
//
// Complexity:
//
//   - New / FromMatrix:  O(n²) time and memory.
//   - Open:              near O(1) amortized unions; flooding totals O(n²)
//     over a grid's lifetime (each site fills exactly once).
//   - IsOpen / IsFull / Status: O(1), a single status-array read.
//   - Percolates:        one disjoint-set query.
//
// Options:
//
//   - WithConnectivity(Conn4): orthogonal adjacency, the classic model
//     (default).
//   - WithConnectivity(Conn8): adjacency including diagonals.
//
// Errors:
//
//   - ErrInvalidSide: New with side < 1, or FromMatrix with no rows.
//   - ErrNonSquare: FromMatrix rows do not form an n×n square.
//   - ErrBadConnectivity: unknown Connectivity option.
//   - ErrOutOfRange: site coordinates outside [1, side].
package percolation
