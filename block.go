package beekeeper

import (
	"sort"

	"github.com/spenczar/beekeeper/letterset"
)

// BitmaskBlockSolver is a BitmaskSolver with one layer of hierarchy: the
// dictionary is sorted lexicographically and split into fixed-size blocks,
// each carrying a pair of aggregate bitmasks. The aggregates let a solve
// reject a whole block with two bit tests before touching any of its
// words. For example, if every word in a block contains an 'f' and the
// puzzle disallows 'f', the block is skipped; likewise if no word in the
// block contains the center letter.
//
// Smaller blocks prune more precisely but pay more per-block overhead;
// larger blocks amortize overhead but prune less. The right size is not
// obvious, so it is a constructor parameter rather than a constant.
type BitmaskBlockSolver struct {
	blocks    []bitmaskBlock
	blockSize int
	words     int
}

// bitmaskBlock holds one contiguous run of the sorted dictionary.
type bitmaskBlock struct {
	common letterset.Set // letters present in every word of the block
	union  letterset.Set // letters present in at least one word
	words  []maskedWord
}

func newBitmaskBlock(words []string) bitmaskBlock {
	b := bitmaskBlock{
		common: ^letterset.Set(0),
		words:  make([]maskedWord, 0, len(words)),
	}
	for _, w := range words {
		mw := maskedWord{mask: letterset.Word(w), word: w}
		b.union |= mw.mask
		b.common &= mw.mask
		b.words = append(b.words, mw)
	}
	return b
}

// appendMatches appends the block's matching words to result, after the
// two block-level rejection tests.
func (b *bitmaskBlock) appendMatches(center, forbidden letterset.Set, result []string) []string {
	if b.common.Overlaps(forbidden) {
		// Every word in the block uses a letter the puzzle disallows.
		return result
	}
	if !b.union.Overlaps(center) {
		// No word in the block contains the center letter. Sound only
		// because an answer must contain the center letter.
		return result
	}
	for _, mw := range b.words {
		if mw.mask.Overlaps(center) && !mw.mask.Overlaps(forbidden) {
			result = append(result, mw.word)
		}
	}
	return result
}

// NewBitmaskBlock builds a BitmaskBlockSolver with the given block size.
// A size below one is clamped to one; the final block may be shorter.
func NewBitmaskBlock(words []string, blockSize int) *BitmaskBlockSolver {
	if blockSize < 1 {
		blockSize = 1
	}
	sorted := filterWords(words)
	sort.Strings(sorted)
	blocks := make([]bitmaskBlock, 0, len(sorted)/blockSize+1)
	for start := 0; start < len(sorted); start += blockSize {
		end := min(start+blockSize, len(sorted))
		blocks = append(blocks, newBitmaskBlock(sorted[start:end]))
	}
	s := &BitmaskBlockSolver{
		blocks:    blocks,
		blockSize: blockSize,
		words:     len(sorted),
	}
	stats := s.Stats()
	tracer().Infof("block solver built %d blocks of size %d over %d words (last block %d)",
		stats.Blocks, stats.BlockSize, stats.Words, stats.LastBlock)
	return s
}

// Solve returns the matching words in sorted-dictionary order.
func (s *BitmaskBlockSolver) Solve(puzzle Puzzle) []string {
	center, forbidden := puzzleMasks(puzzle)
	result := make([]string, 0, typicalResultSize)
	for i := range s.blocks {
		result = s.blocks[i].appendMatches(center, forbidden, result)
	}
	return result
}

// BlockStats reports partitioning metrics for a block index.
type BlockStats struct {
	Blocks    int // number of blocks
	BlockSize int // configured words per block
	Words     int // indexed words across all blocks
	LastBlock int // words in the final, possibly short block
}

// Stats returns partitioning metrics for this solver's index.
func (s *BitmaskBlockSolver) Stats() BlockStats {
	stats := BlockStats{
		Blocks:    len(s.blocks),
		BlockSize: s.blockSize,
		Words:     s.words,
	}
	if len(s.blocks) > 0 {
		stats.LastBlock = len(s.blocks[len(s.blocks)-1].words)
	}
	return stats
}
