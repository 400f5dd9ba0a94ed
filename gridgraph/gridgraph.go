// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular grid of entry costs as a
// 4-connected weighted graph, with on-the-fly tiling of the base grid.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrCostRange if a cost lies
// outside [MinCost, MaxCost], and ErrBadMultiplier if opts.Multiplier < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if opts.Multiplier < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMultiplier, opts.Multiplier)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		for x, c := range values[y] {
			if c < MinCost || c > MaxCost {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrCostRange, x, y, c)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		BaseWidth:  w,
		BaseHeight: h,
		Multiplier: opts.Multiplier,
		cells:      cells,
	}, nil
}

// Tile returns a view of the same base cells repeated multiplier times
// along each axis. The base cells are shared, not copied.
func (gg *GridGraph) Tile(multiplier int) (*GridGraph, error) {
	if multiplier < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMultiplier, multiplier)
	}
	tiled := *gg
	tiled.Multiplier = multiplier

	return &tiled, nil
}

// Size returns the effective (tiled) width and height.
func (gg *GridGraph) Size() (w, h int) {
	return gg.BaseWidth * gg.Multiplier, gg.BaseHeight * gg.Multiplier
}

// InBounds reports whether p lies within the tiled grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	w, h := gg.Size()
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Goal returns the bottom-right cell of the tiled grid.
func (gg *GridGraph) Goal() Point {
	w, h := gg.Size()
	return Point{X: w - 1, Y: h - 1}
}

// Neighbors returns the in-bounds 4-neighbors of p in the order
// up, right, down, left.
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		q := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if gg.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Index maps p to a row-major index over the tiled grid.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	w, _ := gg.Size()
	return p.Y*w + p.X
}

// Coordinate converts a row-major index over the tiled grid back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	w, _ := gg.Size()
	return Point{X: idx % w, Y: idx / w}
}

// String renders the tiled grid as rows of digits, one row per line.
func (gg *GridGraph) String() string {
	w, h := gg.Size()
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(byte('0' + gg.Cost(Point{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
