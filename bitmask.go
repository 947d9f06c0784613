package beekeeper

import (
	"github.com/spenczar/beekeeper/letterset"
)

// maskedWord pairs a dictionary word with its precomputed letter set.
// The mask is always computed from the word, never derived from another
// mask.
type maskedWord struct {
	mask letterset.Set
	word string
}

// BitmaskSolver precomputes one letter-set bitmask per dictionary word at
// construction time and solves with two bit tests per word: the word must
// overlap the center letter's bit and must not overlap any forbidden bit.
// No characters are inspected at query time.
type BitmaskSolver struct {
	words []maskedWord
}

// NewBitmask builds a BitmaskSolver from the answer-length words.
func NewBitmask(words []string) *BitmaskSolver {
	masked := make([]maskedWord, 0, len(words))
	for _, w := range words {
		if len(w) < MinWordLength {
			continue
		}
		masked = append(masked, maskedWord{mask: letterset.Word(w), word: w})
	}
	tracer().Infof("bitmask solver masked %d words", len(masked))
	return &BitmaskSolver{words: masked}
}

// Solve returns the matching words in dictionary order.
func (s *BitmaskSolver) Solve(puzzle Puzzle) []string {
	center, forbidden := puzzleMasks(puzzle)
	result := make([]string, 0, typicalResultSize)
	for _, mw := range s.words {
		if mw.mask.Overlaps(center) && !mw.mask.Overlaps(forbidden) {
			result = append(result, mw.word)
		}
	}
	return result
}

// puzzleMasks derives the two query masks: center holds the mandatory
// letter's bit, forbidden holds a bit for every letter an answer must not
// use — the complement of the puzzle's allowed set. The complement also
// sets the catch-all bit, so words with non-letter characters never match.
func puzzleMasks(puzzle Puzzle) (center, forbidden letterset.Set) {
	return letterset.Bit(puzzle.Center), ^puzzle.Allowed()
}
