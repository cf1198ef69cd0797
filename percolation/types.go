// Package percolation defines core types, options, and sentinel errors
// for the percolation subpackage of github.com/katalvlaran/percolath.
package percolation

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and site addressing.
var (
	// ErrInvalidSide indicates a lattice side below 1 at construction.
	ErrInvalidSide = errors.New("percolation: grid side must be at least 1")
	// ErrNonSquare indicates FromMatrix input whose rows do not form an n×n square.
	ErrNonSquare = errors.New("percolation: matrix must be square")
	// ErrBadConnectivity indicates an unknown Connectivity in GridOptions.
	ErrBadConnectivity = errors.New("percolation: unknown connectivity")
	// ErrOutOfRange indicates site coordinates outside [1, side].
	ErrOutOfRange = errors.New("percolation: site coordinates out of range")
)

// SiteStatus is the state of a single site. A site starts Closed, may be
// opened exactly once, and becomes Full the moment fluid from the top row
// reaches it. Statuses only ever advance: Closed → Open → Full.
type SiteStatus uint8

const (
	// Closed marks a blocked site: fluid cannot enter and no connections form.
	Closed SiteStatus = iota
	// Open marks an unblocked site not (yet) reached by fluid from the top row.
	Open
	// Full marks an open site connected to the top row through open neighbors.
	Full
)

// String renders the status name for logs and test failures.
func (s SiteStatus) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	case Full:
		return "Full"
	default:
		return fmt.Sprintf("SiteStatus(%d)", uint8(s))
	}
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W (the classic model).
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional adjacency between open sites.
	Conn Connectivity
}

// GridOption represents a functional option for configuring New and FromMatrix.
type GridOption func(*GridOptions)

// WithConnectivity returns a GridOption that sets the adjacency rule used
// both when wiring a freshly opened site to its neighbors and when fluid
// spreads. Allowed values: Conn4, Conn8; anything else makes construction
// return ErrBadConnectivity.
func WithConnectivity(c Connectivity) GridOption {
	return func(o *GridOptions) {
		o.Conn = c
	}
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
//
// Complexity: O(1) to construct.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}
