// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of entry costs as a weighted graph
// whose base grid may be tiled along both axes without materialising the
// larger grid.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of costs in [1,9].
//   - Cells are 4-connected (up, right, down, left).
//   - A tiling Multiplier repeats the base grid m×m times; the cost of a
//     repeated cell is raised by its tile offset and wraps from 9 back to 1.
//   - Parse reads the puzzle text format: one line per row, one digit per cell.
//
// Why:
//
//   - Path-finding over large repeated terrains where only the base tile
//     is worth keeping in memory.
//
// Complexity:
//
//   - NewGridGraph / Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1), no allocation.
//   - Neighbors: O(1), one small slice.
//   - Tile: O(1); the base cells are shared.
//
// Options:
//
//   - GridOptions.Multiplier: tiles per axis (≥ 1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostRange: a base cost lies outside [1,9].
//   - ErrBadMultiplier: multiplier below 1.
//   - ErrBadDigit: textual input holds a non-digit character.
package gridgraph
