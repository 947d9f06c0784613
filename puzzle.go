package beekeeper

import (
	"strings"

	"github.com/spenczar/beekeeper/letterset"
)

// Puzzle is one Spelling Bee round: a mandatory center letter and six
// outer letters. Answers may use only these seven letters, as often as
// they like, and must contain the center letter at least once.
//
// The seven letters are normally distinct, but Puzzle does not enforce
// that. Duplicate letters are harmless: every solver treats the letters
// as a set, so a duplicated outer letter contributes no extra filtering
// power and the answer set is unchanged.
type Puzzle struct {
	Center byte
	Outer  [6]byte
}

// String renders the puzzle as "c: oooooo".
func (p Puzzle) String() string {
	var sb strings.Builder
	sb.WriteByte(p.Center)
	sb.WriteString(": ")
	sb.Write(p.Outer[:])
	return sb.String()
}

// Allowed returns the set of letters an answer may use.
func (p Puzzle) Allowed() letterset.Set {
	allowed := letterset.Bit(p.Center)
	for _, c := range p.Outer {
		allowed |= letterset.Bit(c)
	}
	return allowed
}
