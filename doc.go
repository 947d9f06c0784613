/*
Package beekeeper solves "Spelling Bee" word puzzles: given a mandatory
center letter and six outer letters, find every dictionary word that uses
only those letters and contains the center letter at least once.

The package is a comparative study of four solving strategies behind one
Solver contract:

  - NaiveSolver scans every word and tests characters directly.
  - TrieSolver indexes the dictionary in a trie and walks only the edges
    labeled with puzzle letters.
  - BitmaskSolver precomputes a letter-set bitmask per word and tests two
    bit conditions per word.
  - BitmaskBlockSolver partitions the sorted dictionary into blocks with
    aggregate bitmasks, rejecting whole blocks before touching their words.

All four return the same answer set for any dictionary and puzzle; they
differ only in build cost and query speed. A solver is immutable after
construction, so one instance may serve queries from multiple goroutines.

Words shorter than four characters are never answers and are dropped at
construction time.
*/
package beekeeper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'beekeeper'
func tracer() tracing.Trace {
	return tracing.Select("beekeeper")
}
