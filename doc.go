// Package percolath is your in-memory playground for percolation theory —
// model an n×n lattice of sites, pour fluid on the top row, and ask whether
// it reaches the bottom.
//
// 🚀 What is percolath?
//
//	A small, focused library that brings together:
//		• Union-Find: weighted quick-union with optional path halving
//		• Percolation: a tri-state site grid (Closed/Open/Full) wired to
//		  virtual top and bottom sentinels, 4- or 8-neighbor connectivity
//		• Monte Carlo: repeated randomized trials estimating the
//		  percolation threshold with mean, deviation and a 95% interval
//
// ✨ Why choose percolath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness only, identical runs by default
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, validate-first, no panics
//
// Under the hood, everything is organized under three subpackages:
//
//	unionfind/   — disjoint-set structure: Find, Union, Connected, set sizes
//	percolation/ — the Grid: Open, IsOpen, IsFull, Percolates, flood fill
//	montecarlo/  — threshold estimation: Run(side, trials) → Result
//
// Quick ASCII example (3×3, column 1 opened top to bottom):
//
//	F ■ ■
//	F ■ ■        F = Full (open, fed from the top row), ■ = Closed;
//	F ■ ■        a Full site on the bottom row ⇒ the system percolates.
//
// Dive into each subpackage's doc.go for semantics, complexity tables and
// runnable examples.
//
//	go get github.com/katalvlaran/percolath
package percolath
