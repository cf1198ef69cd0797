// File: percolation/example_test.go
package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolath/percolation"
)

// ExampleGrid_Percolates demonstrates opening a channel down a 3×3 lattice.
// Scenario:
//
//   - Open the first column from top to bottom.
//   - Two opens wet the column but do not cross the lattice.
//   - The third open reaches the bottom row: the system percolates.
//
// Complexity: near O(1) amortized per Open.
func ExampleGrid_Percolates() {
	g, _ := percolation.New(3)

	_ = g.Open(1, 1)
	_ = g.Open(2, 1)
	fmt.Println("after two opens:", g.Percolates())

	_ = g.Open(3, 1)
	fmt.Println("after three opens:", g.Percolates())

	full, _ := g.IsFull(2, 1)
	fmt.Println("middle of the column is full:", full)

	// Output:
	// after two opens: false
	// after three opens: true
	// middle of the column is full: true
}

// ExampleFromMatrix builds a grid from a boolean matrix in one call.
// Scenario: an S-shaped channel threads a 3×3 lattice, so the whole
// channel fills and the far corner fills with it.
func ExampleFromMatrix() {
	g, _ := percolation.FromMatrix([][]bool{
		{true, true, false},
		{false, true, false},
		{false, true, true},
	})

	fmt.Println("open sites:", g.OpenCount())
	fmt.Println("percolates:", g.Percolates())

	corner, _ := g.Status(3, 3)
	fmt.Println("corner:", corner)

	// Output:
	// open sites: 5
	// percolates: true
	// corner: Full
}

// ExampleNew_connectivity contrasts adjacency rules: two diagonal opens
// only connect when diagonals count as neighbors.
func ExampleNew_connectivity() {
	plain, _ := percolation.New(2)
	diagonal, _ := percolation.New(2, percolation.WithConnectivity(percolation.Conn8))

	for _, g := range []*percolation.Grid{plain, diagonal} {
		_ = g.Open(1, 1)
		_ = g.Open(2, 2)
	}

	fmt.Println("Conn4:", plain.Percolates())
	fmt.Println("Conn8:", diagonal.Percolates())

	// Output:
	// Conn4: false
	// Conn8: true
}
