// Package unionfind defines core types, options, and sentinel errors
// for the unionfind subpackage of github.com/katalvlaran/percolath.
package unionfind

import (
	"errors"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a negative element count at construction.
	ErrInvalidSize = errors.New("unionfind: element count must be non-negative")
	// ErrBadCompression indicates an unknown CompressionMode in Options.
	ErrBadCompression = errors.New("unionfind: unknown compression mode")
	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("unionfind: element index out of range")
)

// CompressionMode controls how Find restructures the trees it walks.
//
// CompressHalving – every element visited by Find is re-pointed to its
// grandparent, flattening the walked path at no extra asymptotic cost.
// CompressNone    – tree shapes are left untouched; queries still resolve
// through union-by-size height bounds, useful for measuring what halving buys.
type CompressionMode int

const (
	// CompressHalving applies path halving during Find (the default).
	CompressHalving CompressionMode = iota
	// CompressNone disables path restructuring entirely.
	CompressNone
)

// Options configures a UnionFind instance.
// Use DefaultOptions() to get the default setup (CompressHalving).
type Options struct {
	// Compression selects the Find restructuring strategy.
	Compression CompressionMode
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithCompression returns an Option that sets the path-compression strategy.
// Allowed values: CompressHalving, CompressNone; anything else makes New
// return ErrBadCompression.
func WithCompression(mode CompressionMode) Option {
	return func(o *Options) {
		o.Compression = mode
	}
}

// DefaultOptions returns an Options initialized with CompressHalving.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Compression: CompressHalving,
	}
}
