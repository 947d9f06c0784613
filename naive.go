package beekeeper

// NaiveSolver solves a puzzle by iterating over every word in the
// dictionary and testing its characters directly. It is the reference
// implementation the other solvers are measured against.
type NaiveSolver struct {
	words []string
}

// NewNaive builds a NaiveSolver over a copy of the answer-length words.
func NewNaive(words []string) *NaiveSolver {
	s := &NaiveSolver{words: filterWords(words)}
	tracer().Infof("naive solver holds %d words", len(s.words))
	return s
}

// Solve returns the matching words in dictionary order.
func (s *NaiveSolver) Solve(puzzle Puzzle) []string {
	result := make([]string, 0, typicalResultSize)
	for _, word := range s.words {
		if wordIsValid(puzzle, word) {
			result = append(result, word)
		}
	}
	return result
}

// wordIsValid tests word character-by-character: every character must be
// the center letter or one of the outer letters, and the center letter
// must occur at least once.
func wordIsValid(puzzle Puzzle, word string) bool {
	hasCenter := false
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c == puzzle.Center {
			hasCenter = true
			continue
		}
		if !isOuterLetter(puzzle, c) {
			return false
		}
	}
	return hasCenter
}

func isOuterLetter(puzzle Puzzle, c byte) bool {
	for _, outer := range puzzle.Outer {
		if c == outer {
			return true
		}
	}
	return false
}
