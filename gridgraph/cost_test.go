// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chiton/gridgraph"
)

// TestWrapCost covers the increment-and-wrap rule, including the 9→1 wrap.
func TestWrapCost(t *testing.T) {
	cases := []struct {
		base, offset, want int
	}{
		{1, 0, 1},
		{9, 0, 9},
		{8, 1, 9},
		{9, 1, 1},
		{9, 2, 2},
		{1, 8, 9},
		{1, 9, 1},
		{5, 8, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gridgraph.WrapCost(tc.base, tc.offset), "WrapCost(%d,%d)", tc.base, tc.offset)
	}
}

// TestWrapCost_Range checks every result stays within [MinCost, MaxCost].
func TestWrapCost_Range(t *testing.T) {
	for base := gridgraph.MinCost; base <= gridgraph.MaxCost; base++ {
		for offset := 0; offset <= 8+8; offset++ {
			got := gridgraph.WrapCost(base, offset)
			require.GreaterOrEqual(t, got, gridgraph.MinCost)
			require.LessOrEqual(t, got, gridgraph.MaxCost)
		}
	}
}

// TestCost_Tiled checks the tiled accessor against hand-computed cells.
func TestCost_Tiled(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 9}, {5, 3}}, gridgraph.GridOptions{Multiplier: 5})
	require.NoError(t, err)

	cases := []struct {
		at   gridgraph.Point
		want int
	}{
		{gridgraph.Point{X: 0, Y: 0}, 1},
		{gridgraph.Point{X: 1, Y: 0}, 9},
		{gridgraph.Point{X: 3, Y: 0}, 1}, // 9 in tile (1,0) wraps to 1
		{gridgraph.Point{X: 0, Y: 3}, 6}, // 5 in tile (0,1)
		{gridgraph.Point{X: 9, Y: 9}, 2}, // 3 in tile (4,4): offset 8
		{gridgraph.Point{X: 8, Y: 8}, 9}, // 1 in tile (4,4)
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gg.Cost(tc.at), "Cost(%v)", tc.at)
	}
}

// TestCost_MultiplierOneIsBase ensures an untiled grid returns its own cells.
func TestCost_MultiplierOneIsBase(t *testing.T) {
	values := [][]int{{3, 1, 4}, {1, 5, 9}, {2, 6, 5}}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for y, row := range values {
		for x, want := range row {
			assert.Equal(t, want, gg.Cost(gridgraph.Point{X: x, Y: y}))
		}
	}
}

func TestCost_OutOfBoundsPanics(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2}}, gridgraph.GridOptions{Multiplier: 2})
	require.NoError(t, err)

	assert.Panics(t, func() { gg.Cost(gridgraph.Point{X: 4, Y: 0}) })
	assert.Panics(t, func() { gg.Cost(gridgraph.Point{X: 0, Y: -1}) })
	assert.NotPanics(t, func() { gg.Cost(gridgraph.Point{X: 3, Y: 1}) })
}
