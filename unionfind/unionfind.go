package unionfind

import (
	"fmt"
)

// UnionFind is a weighted quick-union disjoint-set structure over the
// elements 0..n-1. Every element starts as its own singleton set; Union
// merges sets by attaching the smaller tree beneath the larger root, which
// bounds tree height by log n even without compression.
//
// UnionFind is not safe for concurrent use; callers own synchronization.
type UnionFind struct {
	parent   []int           // parent[i] is i's parent; roots satisfy parent[i] == i
	size     []int           // size[r] is the tree size, meaningful at roots only
	count    int             // current number of disjoint sets
	compress CompressionMode // Find restructuring strategy
}

// New returns a UnionFind of n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrInvalidSize if n < 0 and ErrBadCompression for an unknown
// compression mode. n == 0 yields a legal empty structure on which every
// element operation reports ErrOutOfRange.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*UnionFind, error) {
	// 1) Validate arguments before allocating anything.
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Compression != CompressHalving && o.Compression != CompressNone {
		return nil, ErrBadCompression
	}

	// 2) Every element begins as its own root with a tree of size 1.
	uf := &UnionFind{
		parent:   make([]int, n),
		size:     make([]int, n),
		count:    n,
		compress: o.Compression,
	}
	var i int
	for i = 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Find returns the root element of p's set. Under CompressHalving every
// element on the walked path is re-pointed to its grandparent.
// Returns ErrOutOfRange if p lies outside [0, Len()).
//
// Complexity: near O(1) amortized with halving, O(log n) without.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.check(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Union merges the sets containing p and q. The smaller tree's root is
// attached beneath the larger tree's root; when sizes tie, q's root goes
// beneath p's root. Uniting already-joined elements is a no-op.
// Returns ErrOutOfRange if either index lies outside [0, Len()); the
// structure is left untouched on error.
//
// Complexity: two Finds plus O(1) bookkeeping.
func (uf *UnionFind) Union(p, q int) error {
	// 1) Validate both indices before touching any state.
	if err := uf.check(p); err != nil {
		return err
	}
	if err := uf.check(q); err != nil {
		return err
	}

	// 2) Resolve both roots; equal roots mean there is nothing to merge.
	rootP := uf.root(p)
	rootQ := uf.root(q)
	if rootP == rootQ {
		return nil
	}

	// 3) Attach the smaller tree beneath the larger; ties keep rootP on top.
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--

	return nil
}

// Connected reports whether p and q currently belong to the same set.
// Returns ErrOutOfRange if either index lies outside [0, Len()).
//
// Complexity: two Finds.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.check(p); err != nil {
		return false, err
	}
	if err := uf.check(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// SizeOf returns the number of elements in p's set.
// Returns ErrOutOfRange if p lies outside [0, Len()).
//
// Complexity: one Find.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.check(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// Count returns the current number of disjoint sets. It starts at Len()
// and decreases by exactly one per merging Union.
//
// Complexity: O(1).
func (uf *UnionFind) Count() int {
	return uf.count
}

// Len returns the number of elements the structure was built with.
//
// Complexity: O(1).
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// check validates an element index against [0, Len()).
func (uf *UnionFind) check(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: index %d, %d elements", ErrOutOfRange, p, len(uf.parent))
	}

	return nil
}

// root walks parent links up to the set's root. With halving enabled each
// visited element is re-pointed to its grandparent, so repeated queries
// flatten the tree. Callers have already validated p.
func (uf *UnionFind) root(p int) int {
	if uf.compress == CompressHalving {
		for uf.parent[p] != p {
			// Path halving: make p point to its grandparent, then step up.
			uf.parent[p] = uf.parent[uf.parent[p]]
			p = uf.parent[p]
		}

		return p
	}
	for uf.parent[p] != p {
		p = uf.parent[p]
	}

	return p
}
