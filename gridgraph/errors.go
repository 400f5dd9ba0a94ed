// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCostRange indicates a base cell cost outside [MinCost, MaxCost].
	ErrCostRange = errors.New("gridgraph: cell cost must be in [1,9]")
	// ErrBadMultiplier indicates a tiling multiplier below 1.
	ErrBadMultiplier = errors.New("gridgraph: tiling multiplier must be at least 1")
	// ErrBadDigit indicates a non-digit character in textual input.
	ErrBadDigit = errors.New("gridgraph: input cell is not a decimal digit")
)
