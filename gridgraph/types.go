// SPDX-License-Identifier: MIT

// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/chiton.
package gridgraph

import "golang.org/x/exp/constraints"

const (
	// MinCost is the lowest cost a base cell may carry.
	MinCost = 1
	// MaxCost is the highest cost a base cell may carry; tiled costs wrap past it back to MinCost.
	MaxCost = 9
)

// Pt2 is a point on an integer lattice. X is the column, Y the row.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Point is the coordinate type used throughout the grid and search packages.
type Point = Pt2[int]

// Manhattan returns the L1 distance between p and q.
func (p Pt2[T]) Manhattan(q Pt2[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Multiplier is how many times the base grid repeats along each axis.
	Multiplier int
}

// DefaultGridOptions returns a GridOptions with Multiplier=1 (no tiling).
func DefaultGridOptions() GridOptions {
	return GridOptions{Multiplier: 1}
}

// GridGraph is an immutable grid of per-cell entry costs, optionally tiled.
// cells[y][x] holds the base cost; every other tile is derived on demand by
// Cost and never stored.
type GridGraph struct {
	BaseWidth, BaseHeight int
	Multiplier            int
	cells                 [][]int
}

// neighborOffsets lists the 4-connected moves: up, right, down, left.
var neighborOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
