package beekeeper

// MinWordLength is the shortest answer a puzzle accepts. Words below this
// length are dropped from every solver's index at construction time.
const MinWordLength = 4

// Initialize answer slices with this capacity.
const typicalResultSize = 100

// Solver finds every indexed dictionary word that satisfies a puzzle.
//
// A Solver is built once from a word list and is read-only afterwards:
// Solve never mutates solver state and may be called repeatedly, with
// different puzzles, from multiple goroutines. The order of the returned
// words is implementation-defined; callers needing a canonical order must
// sort. The result may contain duplicates only if the word list did.
type Solver interface {
	Solve(puzzle Puzzle) []string
}

// filterWords copies the words of answer length into a fresh slice.
func filterWords(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= MinWordLength {
			kept = append(kept, w)
		}
	}
	return kept
}
