// Package wordlist reads line-oriented word lists, one candidate word per
// line, in the format of /usr/share/dict/words. Blank lines are skipped;
// no other filtering happens here — the solvers apply their own length
// filter and non-letter characters are absorbed by the letter codec.
package wordlist

import (
	"bufio"
	"io"
)

// Reader streams words from a line-oriented source.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next word. It returns io.EOF when the source is
// exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ReadAll collects every word from reader, in input order.
func ReadAll(reader io.Reader) ([]string, error) {
	r := NewReader(reader)
	words := make([]string, 0, 1024)
	for {
		word, err := r.Next()
		if err == io.EOF {
			return words, nil
		}
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
}
