// Command seqbench builds the suffix tree for a DNA sequence, runs the same
// pattern set through every matcher in the project, checks that they agree,
// and prints a timing table.
//
// The sequence is either generated (repeatably, from -seed) or loaded from a
// plain/FASTA file, gzip-compressed or not. One benchmark pattern is always
// extracted from the sequence so at least one pattern is guaranteed to hit;
// the rest are random draws.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/match"
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/suffixtree"
)

func main() {
	var (
		file      = flag.String("f", "", "sequence file (plain lines or FASTA, .gz accepted); generated when empty")
		length    = flag.Int("n", 1_000_000, "generated sequence length")
		seed      = flag.Uint64("seed", 1, "generator seed")
		numPat    = flag.Int("p", 3, "number of random patterns")
		patLen    = flag.Int("m", 10, "random pattern length")
		pattern   = flag.String("pattern", "", "explicit pattern; replaces the generated pattern set")
		maxNodes  = flag.Int("max-nodes", 0, "suffix tree node cap, 0 for unbounded")
		timeout   = flag.Duration("timeout", 0, "overall deadline, 0 for none")
		showMatch = flag.Bool("context", true, "print sequence context around sample matches")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	rng := rand.New(rand.NewPCG(*seed, 0x5eedbeef))

	sequence, err := loadOrGenerate(*file, *length, rng, log)
	if err != nil {
		log.Fatal("sequence unavailable", zap.Error(err))
	}

	patterns := patternSet(sequence, *pattern, *numPat, *patLen, rng)
	log.Info("benchmark input",
		zap.Int("sequenceLength", len(sequence)),
		zap.Int("patterns", len(patterns)),
	)

	start := time.Now()
	tree, err := suffixtree.Build(ctx, sequence, suffixtree.WithMaxNodes(*maxNodes))
	if err != nil {
		log.Fatal("suffix tree construction failed", zap.Error(err))
	}
	buildTime := time.Since(start)
	log.Info("suffix tree built",
		zap.Duration("elapsed", buildTime),
		zap.Int("nodes", tree.NumNodes()),
		zap.Int("leaves", tree.LeafCount()),
	)

	rows := runMatchers(tree, sequence, patterns, log)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tPATTERN\tMATCHES\tELAPSED")
	fmt.Fprintf(w, "suffixtree (build)\t-\t-\t%v\n", buildTime)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", r.algo, r.pattern, r.matches, r.elapsed)
	}
	w.Flush()

	if *showMatch {
		for _, p := range patterns {
			positions, err := tree.Find(p)
			if err != nil || len(positions) == 0 {
				continue
			}
			for _, pos := range samplePositions(rng, positions, 2) {
				fmt.Printf("context %s at %d: %s\n", p, pos, excerpt(sequence, pos, len(p), 10))
			}
		}
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	return log
}

// loadOrGenerate reads the first sequence of file when given, otherwise
// generates length random bases. Multi-record files are concatenated;
// matches never span record boundaries in the original data, but for
// benchmarking throughput that distinction does not matter.
func loadOrGenerate(file string, length int, rng *rand.Rand, log *zap.Logger) (string, error) {
	if file == "" {
		start := time.Now()
		s := dna.RandomSequence(rng, length)
		log.Info("sequence generated", zap.Int("length", length), zap.Duration("elapsed", time.Since(start)))
		return s, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(file, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		r = gz
	}

	sequences, err := dna.ReadSequences(r)
	if err != nil {
		return "", err
	}
	if len(sequences) == 0 {
		return "", fmt.Errorf("no sequences in %s", file)
	}
	s := strings.Join(sequences, "")
	log.Info("sequence loaded", zap.String("file", file), zap.Int("records", len(sequences)), zap.Int("length", len(s)))
	return s, nil
}

func patternSet(sequence, explicit string, numPat, patLen int, rng *rand.Rand) []string {
	if explicit != "" {
		return []string{explicit}
	}
	var patterns []string
	if len(sequence) >= patLen && patLen > 0 {
		i := rng.IntN(len(sequence) - patLen + 1)
		patterns = append(patterns, sequence[i:i+patLen])
	}
	for range numPat {
		patterns = append(patterns, dna.RandomPattern(rng, patLen))
	}
	return patterns
}

type resultRow struct {
	algo    string
	pattern string
	matches int
	elapsed time.Duration
}

// runMatchers times every matcher over every pattern and cross-checks the
// match sets against the suffix tree's answer. Disagreement is a bug in one
// of the implementations and is reported loudly rather than ignored.
func runMatchers(tree *suffixtree.Tree, sequence string, patterns []string, log *zap.Logger) []resultRow {
	var rows []resultRow

	type matcher struct {
		name string
		find func(text, pattern string) ([]int, error)
	}
	single := []matcher{
		{"suffixtree", func(_, p string) ([]int, error) { return tree.Find(p) }},
		{"kmp", match.KMP},
		{"boyermoore", match.BoyerMoore},
	}

	if idx, err := match.NewPairIndex(sequence); err == nil {
		single = append(single, matcher{"pairindex", func(_, p string) ([]int, error) { return idx.Find(p) }})
	} else {
		log.Warn("pair index unavailable", zap.Error(err))
	}

	reference := make(map[string][]int)
	for _, m := range single {
		for _, p := range patterns {
			start := time.Now()
			positions, err := m.find(sequence, p)
			elapsed := time.Since(start)
			if err != nil {
				log.Fatal("matcher failed", zap.String("algorithm", m.name), zap.String("pattern", p), zap.Error(err))
			}
			rows = append(rows, resultRow{m.name, p, len(positions), elapsed})

			if m.name == "suffixtree" {
				reference[p] = positions
			} else if !slices.Equal(reference[p], positions) {
				log.Error("matchers disagree",
					zap.String("algorithm", m.name),
					zap.String("pattern", p),
					zap.Int("got", len(positions)),
					zap.Int("want", len(reference[p])),
				)
			}
		}
	}

	// Aho-Corasick runs all patterns in one pass, so it gets one row with
	// the pass time and per-pattern totals folded together.
	if a, err := match.NewAutomaton(patterns); err != nil {
		log.Warn("automaton unavailable", zap.Error(err))
	} else {
		start := time.Now()
		found, err := a.Find(sequence)
		elapsed := time.Since(start)
		if err != nil {
			log.Fatal("automaton scan failed", zap.Error(err))
		}
		total := 0
		for _, p := range patterns {
			if !slices.Equal(reference[p], found[p]) {
				log.Error("matchers disagree",
					zap.String("algorithm", "ahocorasick"),
					zap.String("pattern", p),
					zap.Int("got", len(found[p])),
					zap.Int("want", len(reference[p])),
				)
			}
			total += len(found[p])
		}
		rows = append(rows, resultRow{"ahocorasick (all patterns)", "-", total, elapsed})
	}

	return rows
}

func samplePositions(rng *rand.Rand, positions []int, n int) []int {
	if len(positions) <= n {
		return positions
	}
	picked := slices.Clone(positions)
	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	picked = picked[:n]
	slices.Sort(picked)
	return picked
}

// excerpt renders the sequence around a match, the match itself bracketed.
func excerpt(sequence string, pos, patLen, context int) string {
	start := max(0, pos-context)
	end := min(len(sequence), pos+patLen+context)

	var sb strings.Builder
	if start > 0 {
		sb.WriteString("...")
	}
	sb.WriteString(sequence[start:pos])
	sb.WriteString("[")
	sb.WriteString(sequence[pos : pos+patLen])
	sb.WriteString("]")
	sb.WriteString(sequence[pos+patLen : end])
	if end < len(sequence) {
		sb.WriteString("...")
	}
	return sb.String()
}
