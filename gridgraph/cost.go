// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Cost returns the entry cost of p on the tiled grid. The base cell is found
// by reducing p modulo the base size; the tile offset is the sum of the tile
// column and tile row, applied with WrapCost.
//
// Cost panics if p is outside the tiled grid.
// Complexity: O(1), no allocation.
func (gg *GridGraph) Cost(p Point) int {
	if !gg.InBounds(p) {
		w, h := gg.Size()
		panic(fmt.Sprintf("gridgraph: cost query (%d,%d) outside %dx%d grid", p.X, p.Y, w, h))
	}
	bx, by := p.X%gg.BaseWidth, p.Y%gg.BaseHeight
	offset := p.X/gg.BaseWidth + p.Y/gg.BaseHeight

	return WrapCost(gg.cells[by][bx], offset)
}

// WrapCost raises base by offset, wrapping from MaxCost back to MinCost:
// WrapCost(9, 1) == 1, never 10.
func WrapCost(base, offset int) int {
	return (base-MinCost+offset)%MaxCost + MinCost
}
