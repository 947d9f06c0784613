package beekeeper

import "math/rand"

// generateWords builds a deterministic pseudo-dictionary. Half the words
// draw only from a small alphabet overlapping the fixture puzzle, so the
// solvers have real matches to find; the rest draw from the full
// alphabet. Lengths span 3..9 to exercise the minimum-length filter.
func generateWords(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	const narrow = "epunigxqao"
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		length := 3 + rng.Intn(7)
		word := make([]byte, length)
		if rng.Intn(2) == 0 {
			for j := range word {
				word[j] = narrow[rng.Intn(len(narrow))]
			}
		} else {
			for j := range word {
				word[j] = byte('a' + rng.Intn(26))
			}
		}
		words = append(words, string(word))
	}
	return words
}
