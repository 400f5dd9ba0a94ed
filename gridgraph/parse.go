// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a digit grid, one row per line and one decimal digit per cell,
// and builds a GridGraph with opts. CRLF line endings and trailing blank
// lines are accepted.
//
// A non-digit character yields ErrBadDigit (with row, column and character);
// shape and range problems yield the NewGridGraph errors.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: row %d column %d %q", ErrBadDigit, y, x, ch)
			}
			row[x] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return NewGridGraph(rows, opts)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts GridOptions) (*GridGraph, error) {
	return Parse(strings.NewReader(s), opts)
}
