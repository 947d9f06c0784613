package letterset

import (
	"math/bits"
	"strings"
)

// Set is a set of letters packed into a uint32. Bit i (0..25) stands for
// the lowercase letter 'a'+i. Bit 26 collects every other character:
// digits, punctuation, uppercase, non-ASCII bytes. A puzzle only ever sets
// bits 0..25, so a word carrying bit 26 can never satisfy a puzzle.
type Set uint32

// AlphabetSize is the number of distinct letter bits. Index AlphabetSize
// is the catch-all slot for non-letter characters.
const AlphabetSize = 26

// Index returns the bit position for c: 0..25 for 'a'..'z', AlphabetSize
// for everything else.
func Index(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c - 'a')
	}
	return AlphabetSize
}

// Bit returns the single-element set containing c.
func Bit(c byte) Set {
	return 1 << Index(c)
}

// Word returns the union of Bit over the characters of word. Repeated
// letters contribute once; character order is irrelevant.
func Word(word string) Set {
	var s Set
	for i := 0; i < len(word); i++ {
		s |= Bit(word[i])
	}
	return s
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool {
	return s&Bit(c) != 0
}

// Overlaps reports whether the two sets share any element.
func (s Set) Overlaps(t Set) bool {
	return s&t != 0
}

// Count returns the number of elements in the set. The catch-all slot
// counts as one element regardless of how many characters mapped to it.
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

// String renders the set's letters in alphabetical order, with '?'
// standing in for the catch-all slot.
func (s Set) String() string {
	var sb strings.Builder
	for i := 0; i < AlphabetSize; i++ {
		if s&(1<<i) != 0 {
			sb.WriteByte(byte('a' + i))
		}
	}
	if s&(1<<AlphabetSize) != 0 {
		sb.WriteByte('?')
	}
	return sb.String()
}
