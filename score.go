package beekeeper

import (
	"github.com/spenczar/beekeeper/letterset"
)

// IsPangram reports whether word uses every one of the puzzle's letters.
func IsPangram(puzzle Puzzle, word string) bool {
	return letterset.Word(word) == puzzle.Allowed()
}

// Score returns the Spelling Bee score of an answer: one point for a
// four-letter word, one point per letter beyond that, and seven bonus
// points for a pangram. The caller is expected to pass a valid answer;
// Score does not re-check letter containment.
func Score(puzzle Puzzle, word string) int {
	score := len(word) - 3
	if IsPangram(puzzle, word) {
		score += 7
	}
	return score
}
