package beekeeper

import (
	"github.com/spenczar/beekeeper/letterset"
)

// TrieSolver indexes the dictionary in a trie and solves by a constrained
// depth-first walk: at every node only the edges labeled with the center
// letter or an outer letter are followed, so at most seven of a node's
// children are ever visited. Branches that could not possibly satisfy the
// puzzle are never explored.
type TrieSolver struct {
	root *trieNode
}

// trieNode is one trie state. Children are held in a dense table indexed
// by letterset.Index; the final slot absorbs non-letter characters, which
// no puzzle letter ever maps to, so such words sit in the trie without
// ever being reachable from a solve walk.
type trieNode struct {
	isWord   bool
	children [letterset.AlphabetSize + 1]*trieNode
}

// add inserts word below n, creating nodes as needed. Re-inserting a word
// that is a prefix of an earlier insertion just marks the existing node.
func (n *trieNode) add(word string) {
	for i := 0; i < len(word); i++ {
		idx := letterset.Index(word[i])
		child := n.children[idx]
		if child == nil {
			child = &trieNode{}
			n.children[idx] = child
		}
		n = child
	}
	n.isWord = true
}

// NewTrie builds a TrieSolver from the answer-length words.
func NewTrie(words []string) *TrieSolver {
	root := &trieNode{}
	indexed := 0
	for _, w := range words {
		if len(w) < MinWordLength {
			continue
		}
		root.add(w)
		indexed++
	}
	tracer().Infof("trie solver indexed %d words", indexed)
	return &TrieSolver{root: root}
}

// Solve returns the matching words in walk order: the center-letter edge
// first, then the outer letters in puzzle order, at every depth.
func (s *TrieSolver) Solve(puzzle Puzzle) []string {
	result := make([]string, 0, typicalResultSize)
	path := make([]byte, 0, 32)
	return findWords(s.root, puzzle, 0, path, result)
}

// findWords performs the constrained depth-first walk. path is a shared
// buffer mirroring the recursion: pushed on entry to a child, popped on
// return. centerCount tracks uses of the center letter along the path; a
// path that never used it must not be reported, even at a word node.
func findWords(node *trieNode, puzzle Puzzle, centerCount int, path []byte, result []string) []string {
	if centerCount > 0 && node.isWord {
		result = append(result, string(path))
	}
	if child := letterChild(node, puzzle.Center); child != nil {
		path = append(path, puzzle.Center)
		result = findWords(child, puzzle, centerCount+1, path, result)
		path = path[:len(path)-1]
	}
	for _, c := range puzzle.Outer {
		if child := letterChild(node, c); child != nil {
			path = append(path, c)
			result = findWords(child, puzzle, centerCount, path, result)
			path = path[:len(path)-1]
		}
	}
	return result
}

// letterChild resolves the child for a puzzle letter. The catch-all slot
// collapses distinct characters, so it is never walked: a degenerate
// puzzle holding a non-letter simply finds no edge.
func letterChild(node *trieNode, c byte) *trieNode {
	idx := letterset.Index(c)
	if idx >= letterset.AlphabetSize {
		return nil
	}
	return node.children[idx]
}
