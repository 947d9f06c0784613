package beekeeper

import (
	"testing"

	"github.com/spenczar/beekeeper/letterset"
)

func TestBlockAggregateMasks(t *testing.T) {
	block := newBitmaskBlock([]string{"pine", "pane", "pone"})
	wantCommon := letterset.Word("pne")
	if block.common != wantCommon {
		t.Fatalf("common mask: got %s, want %s", block.common, wantCommon)
	}
	wantUnion := letterset.Word("pineao")
	if block.union != wantUnion {
		t.Fatalf("union mask: got %s, want %s", block.union, wantUnion)
	}
}

func TestBlockRejectsOnCommonForbidden(t *testing.T) {
	// Every word contains 's', which the fixture puzzle disallows.
	block := newBitmaskBlock([]string{"spine", "sign", "guise"})
	center, forbidden := puzzleMasks(fixturePuzzle)
	if block.common&forbidden == 0 {
		t.Fatal("expected the common mask to overlap the forbidden set")
	}
	if got := block.appendMatches(center, forbidden, nil); len(got) != 0 {
		t.Fatalf("expected block rejection, got %v", got)
	}
}

func TestBlockRejectsOnMissingCenter(t *testing.T) {
	// No word contains the center letter 'e'.
	block := newBitmaskBlock([]string{"grip", "gnu", "ping"})
	center, forbidden := puzzleMasks(fixturePuzzle)
	if block.union&center != 0 {
		t.Fatal("expected the union mask to miss the center letter")
	}
	if got := block.appendMatches(center, forbidden, nil); len(got) != 0 {
		t.Fatalf("expected block rejection, got %v", got)
	}
}

func TestBlockSizeInvariance(t *testing.T) {
	dictionary := generateWords(1500, 7)
	reference := NewBitmask(dictionary).Solve(fixturePuzzle)
	for _, size := range []int{1, 2, 5, 7, 50, len(dictionary), len(dictionary) + 100} {
		solver := NewBitmaskBlock(dictionary, size)
		if got := solver.Solve(fixturePuzzle); !SameAnswers(reference, got) {
			t.Fatalf("block size %d disagrees with flat bitmask solver", size)
		}
	}
}

func TestBlockSizeClamped(t *testing.T) {
	solver := NewBitmaskBlock(fixtureDictionary, 0)
	if got := solver.Stats(); got.BlockSize != 1 {
		t.Fatalf("expected block size clamped to 1, got %d", got.BlockSize)
	}
	if !SameAnswers(solver.Solve(fixturePuzzle), fixtureAnswers) {
		t.Fatal("clamped solver returned the wrong answer set")
	}
}

func TestBlockStats(t *testing.T) {
	solver := NewBitmaskBlock(fixtureDictionary, 4)
	stats := solver.Stats()
	// Ten words survive the length filter: 3 blocks of 4, 4, 2.
	if stats.Words != 10 {
		t.Fatalf("expected 10 indexed words, got %d", stats.Words)
	}
	if stats.Blocks != 3 {
		t.Fatalf("expected 3 blocks, got %d", stats.Blocks)
	}
	if stats.BlockSize != 4 {
		t.Fatalf("expected block size 4, got %d", stats.BlockSize)
	}
	if stats.LastBlock != 2 {
		t.Fatalf("expected 2 words in the last block, got %d", stats.LastBlock)
	}
}

func TestBlockStatsEmptyDictionary(t *testing.T) {
	stats := NewBitmaskBlock(nil, 50).Stats()
	if stats.Blocks != 0 || stats.Words != 0 || stats.LastBlock != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}
