// SPDX-License-Identifier: MIT

// Package astar defines core types and configuration options for the
// best-first (A*) minimum-cost search over weighted grids.
//
// The search finds the cheapest 4-directional route from the top-left cell
// to the bottom-right cell, where entering a cell costs that cell's value.
// Frontier entries are ordered by path cost plus a heuristic estimate of the
// remaining cost.
//
// Options:
//
//	– Heuristic:  remaining-cost estimate; Manhattan by default.
//	– ReturnPath: if true, Result.Path holds the cells from start to goal.
//	– MaxCost:    relaxations above this path cost are pruned.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/chiton/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEmptyGrid indicates that the grid reported a zero width or height.
	ErrEmptyGrid = errors.New("astar: grid has no cells")

	// ErrNilHeuristic indicates WithHeuristic(nil) was applied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	// On a rectangular grid this only happens when MaxCost prunes every route.
	ErrNoPath = errors.New("astar: goal is unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Grid is the cost surface searched by Search. Size reports the width and
// height; Cost returns the cost of entering p and is only called for
// in-bounds points.
type Grid interface {
	Size() (w, h int)
	Cost(p gridgraph.Point) int
}

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never overestimate for Search to stay optimal.
type Heuristic func(from, goal gridgraph.Point) int

// Manhattan is the L1 distance to the goal. Every step costs at least 1,
// so it never overestimates.
func Manhattan(from, goal gridgraph.Point) int {
	return from.Manhattan(goal)
}

// Zero turns Search into plain Dijkstra ordering.
func Zero(_, _ gridgraph.Point) int {
	return 0
}

// Result is the outcome of a successful search.
type Result struct {
	Cost     int               // sum of entered cell costs, start excluded
	Path     []gridgraph.Point // start..goal inclusive; nil unless WithReturnPath
	Expanded int               // frontier entries expanded before the goal was popped
}

// Options configures the behavior of Search.
//
// Heuristic  – remaining-cost estimate (default Manhattan).
// ReturnPath – if true, reconstruct Result.Path.
// MaxCost    – prune relaxations whose path cost exceeds it.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Heuristic  Heuristic
	ReturnPath bool
	MaxCost    int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the path cost explored. Negative values panic with
// ErrBadMaxCost.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Manhattan, no path, no cost cap.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Manhattan,
		ReturnPath: false,
		MaxCost:    math.MaxInt,
	}
}
