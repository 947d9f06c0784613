// Command beekeeper loads a dictionary and a puzzle, builds all four
// solvers, and prints a timed comparison. With -answers it also prints
// the answer list with Spelling Bee scores, pangrams marked '*'.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spenczar/beekeeper"
	"github.com/spenczar/beekeeper/internal/humandur"
	"github.com/spenczar/beekeeper/puzzletxt"
	"github.com/spenczar/beekeeper/wordlist"
)

const defaultWordsFile = "/usr/share/dict/words"

func main() {
	dictPath := flag.String("dict", defaultWordsFile, "Path to a line-oriented word list")
	puzzlePath := flag.String("puzzle", "puzzle.txt", "Path to a seven-character puzzle record")
	blockSize := flag.Int("blocksize", 50, "Words per block for the blockwise bitmask solver")
	showAnswers := flag.Bool("answers", false, "Print the answers with scores")
	flag.Parse()

	dictionary, err := loadDictionary(*dictPath)
	if err != nil {
		log.Fatal(err)
	}
	puzzle, err := loadPuzzle(*puzzlePath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Puzzle: %s\n", puzzle)

	type entry struct {
		label  string
		solver beekeeper.Solver
		built  time.Duration
	}
	build := func(label string, construct func() beekeeper.Solver) entry {
		start := time.Now()
		solver := construct()
		return entry{label: label, solver: solver, built: time.Since(start)}
	}
	var blockSolver *beekeeper.BitmaskBlockSolver
	entries := []entry{
		build("naive", func() beekeeper.Solver { return beekeeper.NewNaive(dictionary) }),
		build("trie", func() beekeeper.Solver { return beekeeper.NewTrie(dictionary) }),
		build("bitmask", func() beekeeper.Solver { return beekeeper.NewBitmask(dictionary) }),
		build("bitmask-block", func() beekeeper.Solver {
			blockSolver = beekeeper.NewBitmaskBlock(dictionary, *blockSize)
			return blockSolver
		}),
	}
	stats := blockSolver.Stats()
	fmt.Printf("block index: %d blocks of size %d over %d words\n",
		stats.Blocks, stats.BlockSize, stats.Words)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "solver\tbuild\tsolve\tanswers\t")
	var reference []string
	for _, e := range entries {
		start := time.Now()
		answers := e.solver.Solve(puzzle)
		elapsed := time.Since(start)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t\n",
			e.label, humandur.Format(e.built), humandur.Format(elapsed), len(answers))
		if reference == nil {
			reference = answers
		} else if !beekeeper.SameAnswers(reference, answers) {
			log.Fatalf("%s solver disagrees with %s solver", e.label, entries[0].label)
		}
	}
	tw.Flush()

	if *showAnswers {
		printAnswers(puzzle, reference)
	}
}

func loadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordlist.ReadAll(f)
}

func loadPuzzle(path string) (beekeeper.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return beekeeper.Puzzle{}, err
	}
	defer f.Close()
	return puzzletxt.Parse(f)
}

func printAnswers(puzzle beekeeper.Puzzle, answers []string) {
	sorted := append([]string(nil), answers...)
	sort.Strings(sorted)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()
	total := 0
	for _, word := range sorted {
		score := beekeeper.Score(puzzle, word)
		total += score
		var marker string
		if beekeeper.IsPangram(puzzle, word) {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%d%s\t\n", word, score, marker)
	}
	fmt.Fprintf(tw, "\t%d\t\n", total)
}
