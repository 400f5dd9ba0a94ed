// SPDX-License-Identifier: MIT

// Command chiton prints the lowest total risk of crossing the baked-in
// cave map, first as given and then tiled 5×5.
//
// Usage:
//
//	chiton
//
// Output:
//
//	part 1: <cost>
//	part 2: <cost>
//
// Log verbosity comes from CHITON_LOG_LEVEL (logrus level names, default
// info). Logs go to stderr.
package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/chiton/astar"
	"github.com/katalvlaran/chiton/gridgraph"
)

//go:embed input.txt
var input string

const logLevelEnv = "CHITON_LOG_LEVEL"

var log = logrus.New()

// parts lists the tiling multiplier used by each answer, in print order.
var parts = []int{1, 5}

func main() {
	if err := configureLogging(os.Getenv(logLevelEnv)); err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, input); err != nil {
		log.Fatal(err)
	}
}

// configureLogging sets the logger level from a logrus level name.
// An empty name keeps info.
func configureLogging(level string) error {
	log.SetOutput(os.Stderr)
	if level == "" {
		log.SetLevel(logrus.InfoLevel)
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%s: %w", logLevelEnv, err)
	}
	log.SetLevel(lvl)

	return nil
}

// run parses text and writes one "part N: cost" line per entry of parts.
func run(w io.Writer, text string) error {
	base, err := gridgraph.ParseString(text, gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	log.WithFields(logrus.Fields{
		"width":  base.BaseWidth,
		"height": base.BaseHeight,
	}).Debug("parsed cave map")

	for i, m := range parts {
		grid, err := base.Tile(m)
		if err != nil {
			return err
		}
		t0 := time.Now()
		res, err := astar.Search(grid)
		if err != nil {
			return fmt.Errorf("part %d: %w", i+1, err)
		}
		log.WithFields(logrus.Fields{
			"part":       i + 1,
			"multiplier": m,
			"expanded":   res.Expanded,
			"took":       time.Since(t0).Round(time.Microsecond),
		}).Debug("search finished")

		if _, err := fmt.Fprintf(w, "part %d: %d\n", i+1, res.Cost); err != nil {
			return err
		}
	}

	return nil
}
