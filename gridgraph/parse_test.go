// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chiton/gridgraph"
)

func TestParse_Basic(t *testing.T) {
	gg, err := gridgraph.ParseString("123\n456\n", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, gg.BaseWidth)
	assert.Equal(t, 2, gg.BaseHeight)
	assert.Equal(t, "123\n456\n", gg.String())
}

func TestParse_LineEndings(t *testing.T) {
	for name, in := range map[string]string{
		"NoTrailingNewline": "19\n91",
		"CRLF":              "19\r\n91\r\n",
		"TrailingBlanks":    "19\n91\n\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			gg, err := gridgraph.Parse(strings.NewReader(in), gridgraph.DefaultGridOptions())
			require.NoError(t, err)
			assert.Equal(t, "19\n91\n", gg.String())
		})
	}
}

func TestParse_WithMultiplier(t *testing.T) {
	gg, err := gridgraph.ParseString("8\n", gridgraph.GridOptions{Multiplier: 3})
	require.NoError(t, err)
	assert.Equal(t, "891\n912\n123\n", gg.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridgraph.ErrEmptyGrid},
		{"Letter", "12\n1a\n", gridgraph.ErrBadDigit},
		{"Space", "1 2\n", gridgraph.ErrBadDigit},
		{"Ragged", "123\n12\n", gridgraph.ErrNonRectangular},
		{"BlankInside", "12\n\n12\n", gridgraph.ErrNonRectangular},
		{"ZeroDigit", "10\n11\n", gridgraph.ErrCostRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.ParseString(tc.in, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, gg)
		})
	}
}

// TestParse_BadDigitContext checks the wrapped error names the offending cell.
func TestParse_BadDigitContext(t *testing.T) {
	_, err := gridgraph.ParseString("11\n1x\n", gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrBadDigit)
	assert.Contains(t, err.Error(), "row 1 column 1")
}
