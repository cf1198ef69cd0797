// Package unionfind implements a weighted quick-union disjoint-set
// structure over the integer elements 0..n-1.
//
// What:
//
//   - UnionFind partitions elements into disjoint sets and answers dynamic
//     connectivity queries: Union (merge two sets), Find (canonical root),
//     Connected (same-set test), SizeOf, Count, Len.
//   - Union by size: the smaller tree is attached beneath the larger, so
//     tree height stays logarithmic; equal sizes break ties by attaching
//     the second argument's root beneath the first's.
//   - Optional path halving re-points every element visited by Find to its
//     grandparent, flattening trees as a side effect of queries.
//
// Why:
//
//   - Incremental connectivity: "are these two joined yet?" under a stream
//     of merges, in near-constant amortized time.
//   - Component bookkeeping: percolation lattices, Kruskal-style edge
//     scans, image labeling, equivalence closures.
//
// Complexity:
//
//   - New:                            O(n) time and memory.
//   - Find / Union / Connected / SizeOf: near O(1) amortized (inverse
//     Ackermann) under CompressHalving; O(log n) under CompressNone.
//   - Count / Len:                    O(1).
//
// Options:
//
//   - WithCompression(CompressHalving): flatten paths during Find (default).
//   - WithCompression(CompressNone): leave tree shapes untouched.
//
// Errors:
//
//   - ErrInvalidSize: New called with a negative element count.
//   - ErrBadCompression: unknown CompressionMode.
//   - ErrOutOfRange: element index outside [0, Len()).
package unionfind
