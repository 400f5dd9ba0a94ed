// SPDX-License-Identifier: MIT

// Package astar finds minimum-cost routes across weighted grids with a
// best-first (A*) search.
//
// Overview:
//
//   - A route starts at the top-left cell and ends at the bottom-right cell,
//     moving up, down, left or right one cell at a time.
//   - Entering a cell costs that cell's value; the start cell is free.
//   - The frontier is a min-heap on path cost + heuristic. The default
//     Manhattan heuristic is admissible and consistent because every step
//     costs at least 1.
//   - Any type with Size and Cost can be searched, including a tiled
//     *gridgraph.GridGraph whose larger grid is never materialised.
//
// Key features:
//
//   - FindMinCostPath: one call from a [][]int and a tiling multiplier to a cost.
//   - WithReturnPath: rebuild the chosen route from start to goal.
//   - WithHeuristic(Zero): plain Dijkstra ordering, useful for cross-checks.
//   - WithMaxCost: prune routes above a budget; ErrNoPath if none fits.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrEmptyGrid, ErrNilHeuristic: invalid input.
//   - ErrNoPath: the goal could not be reached within MaxCost.
//   - gridgraph errors from FindMinCostPath, wrapped with %w.
//   - ErrBadMaxCost: raised (via panic) by WithMaxCost on a negative budget.
//
// API reference:
//
//	func Search(g Grid, opts ...Option) (Result, error)
//	func MinCost(g Grid) (int, error)
//	func FindMinCostPath(values [][]int, multiplier int) (int, error)
//
// Thread safety:
//
//   - Each call owns its frontier and best-cost table; concurrent calls on
//     the same immutable grid are safe.
package astar
