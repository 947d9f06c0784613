package beekeeper

import (
	"github.com/bits-and-blooms/bitset"
)

// SameAnswers reports whether two answer lists contain the same set of
// words. Order and multiplicity are ignored, matching the Solver
// contract: implementations agree on the answer set, not its enumeration
// order. Words are mapped to indices over the union of both lists and
// compared as bitsets.
func SameAnswers(a, b []string) bool {
	index := make(map[string]uint, len(a)+len(b))
	for _, w := range a {
		if _, ok := index[w]; !ok {
			index[w] = uint(len(index))
		}
	}
	for _, w := range b {
		if _, ok := index[w]; !ok {
			index[w] = uint(len(index))
		}
	}
	inA := bitset.New(uint(len(index)))
	inB := bitset.New(uint(len(index)))
	for _, w := range a {
		inA.Set(index[w])
	}
	for _, w := range b {
		inB.Set(index[w])
	}
	return inA.Equal(inB)
}
