// SPDX-License-Identifier: MIT

// Package astar implements a best-first minimum-cost search over weighted,
// 4-connected grids.
//
// Notes on implementation choices:
//
//   - The frontier is a min-heap keyed on path cost + heuristic estimate.
//   - We use a “lazy” decrease-key strategy: a better route pushes a new
//     entry and the superseded one is skipped when popped.
//   - The best-cost table is a map keyed by Point, so tiled grids are
//     searched without allocating their full area up front.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/chiton/gridgraph"
)

// FindMinCostPath returns the minimum total cost from the top-left to the
// bottom-right cell of values tiled multiplier times along each axis.
// Grid construction errors (empty, ragged, out-of-range costs, multiplier
// below 1) are returned wrapped.
func FindMinCostPath(values [][]int, multiplier int) (int, error) {
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Multiplier: multiplier})
	if err != nil {
		return 0, fmt.Errorf("astar: building grid: %w", err)
	}

	return MinCost(gg)
}

// MinCost is Search with default options, returning only the cost.
func MinCost(g Grid) (int, error) {
	res, err := Search(g)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search computes the cheapest route from (0,0) to (w-1,h-1) on g.
// The cost of a route is the sum of Cost over every entered cell; the start
// cell is not entered, so a 1×1 grid costs 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The heuristic must be non-nil (ErrNilHeuristic).
//  3. g must have at least one cell (ErrEmptyGrid).
//
// Ties between frontier entries of equal total are broken by heap order, so
// the returned path may vary between equal-cost routes; the cost does not.
//
// Complexity:
//
//   - Time:  O(N log N), N = w·h
//   - Space: O(N)
func Search(g Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.Heuristic == nil {
		return Result{}, ErrNilHeuristic
	}
	w, h := g.Size()
	if w <= 0 || h <= 0 {
		return Result{}, ErrEmptyGrid
	}

	r := &runner{
		g:       g,
		options: cfg,
		w:       w,
		h:       h,
		goal:    gridgraph.Point{X: w - 1, Y: h - 1},
		best:    make(map[gridgraph.Point]int),
		pq:      make(statePQ, 0, w+h),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Point]gridgraph.Point)
	}

	r.init()
	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g        Grid
	options  Options
	w, h     int
	goal     gridgraph.Point
	best     map[gridgraph.Point]int             // lowest path cost found per cell
	prev     map[gridgraph.Point]gridgraph.Point // predecessor per cell; nil unless ReturnPath
	pq       statePQ
	expanded int
}

// neighborOffsets lists the 4-connected moves: up, right, down, left.
var neighborOffsets = [4]gridgraph.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

func (r *runner) init() {
	start := gridgraph.Point{}
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(p gridgraph.Point, pathCost int) {
	heap.Push(&r.pq, &state{
		pos:      p,
		pathCost: pathCost,
		estimate: r.options.Heuristic(p, r.goal),
	})
}

// process pops frontier entries until the goal is popped or the frontier
// is empty.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		s := heap.Pop(&r.pq).(*state)

		// A cheaper route to this cell was recorded after s was pushed.
		if s.pathCost > r.best[s.pos] {
			continue
		}

		if s.pos == r.goal {
			return Result{
				Cost:     s.pathCost,
				Path:     r.path(),
				Expanded: r.expanded,
			}, nil
		}

		r.expanded++
		r.relax(s)
	}

	return Result{Expanded: r.expanded}, ErrNoPath
}

// relax tries each in-bounds neighbor of s and records strictly cheaper routes.
func (r *runner) relax(s *state) {
	for _, d := range neighborOffsets {
		q := gridgraph.Point{X: s.pos.X + d.X, Y: s.pos.Y + d.Y}
		if q.X < 0 || q.X >= r.w || q.Y < 0 || q.Y >= r.h {
			continue
		}

		tentative := s.pathCost + r.g.Cost(q)
		if tentative > r.options.MaxCost {
			continue
		}
		if old, seen := r.best[q]; seen && tentative >= old {
			continue
		}

		r.best[q] = tentative
		if r.prev != nil {
			r.prev[q] = s.pos
		}
		r.push(q, tentative)
	}
}

// path walks the predecessor table back from the goal. Returns nil when
// ReturnPath is off.
func (r *runner) path() []gridgraph.Point {
	if r.prev == nil {
		return nil
	}
	start := gridgraph.Point{}
	out := []gridgraph.Point{r.goal}
	for at := r.goal; at != start; {
		at = r.prev[at]
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// state is one frontier entry.
type state struct {
	pos      gridgraph.Point
	pathCost int
	estimate int
}

func (s *state) total() int { return s.pathCost + s.estimate }

// statePQ is a min-heap of *state ordered by total ascending.
type statePQ []*state

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].total() < pq[j].total() }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*state)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
