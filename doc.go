// SPDX-License-Identifier: MIT

// Package chiton finds the lowest-risk route across a cave map: a grid of
// per-cell risk levels that may be tiled into a larger map whose risk rises
// with each repetition.
//
// Under the hood, everything is organized under two subpackages:
//
//	gridgraph/ — immutable cost grid, on-the-fly tiling, digit-grid parser
//	astar/     — best-first minimum-cost search with Manhattan heuristic
//
// and one command:
//
//	cmd/chiton — prints the answers for the baked-in map, untiled and 5×5
//
// Quick example:
//
//	1 9 9
//	1 9 9      cheapest route: down the left column, along the bottom row
//	1 1 1      total risk 4 (the start cell is never entered)
//
//	go run github.com/katalvlaran/chiton/cmd/chiton
package chiton
