// Package puzzletxt parses the seven-character puzzle record format: the
// center letter first, followed by the six outer letters, for example
//
//	epunigx
//
// for the puzzle with center 'e' and outer letters p, u, n, i, g, x.
package puzzletxt

import (
	"fmt"
	"io"
	"strings"

	"github.com/spenczar/beekeeper"
)

const recordLength = 7

// Parse reads one puzzle record from reader.
func Parse(reader io.Reader) (beekeeper.Puzzle, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return beekeeper.Puzzle{}, err
	}
	return ParseString(string(raw))
}

// ParseString parses a seven-character puzzle record. A trailing newline
// is tolerated; any other length is an error.
func ParseString(record string) (beekeeper.Puzzle, error) {
	record = strings.TrimRight(record, "\r\n")
	if len(record) != recordLength {
		return beekeeper.Puzzle{}, fmt.Errorf("puzzle record must have %d characters, has %d", recordLength, len(record))
	}
	p := beekeeper.Puzzle{Center: record[0]}
	copy(p.Outer[:], record[1:])
	return p, nil
}
