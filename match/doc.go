// Package match provides exact DNA pattern matchers that are independent of
// the suffix tree index: a naive scan, Knuth-Morris-Pratt, Boyer-Moore, an
// Aho-Corasick automaton for multi-pattern search, and the EPMSPP
// least-frequent-pair index.
//
// They all honor the same contract as suffixtree.Find - fail fast with
// dna.ErrInvalidSymbol, report ascending 0-based offsets, no partial
// results - so any two of them are interchangeable for a single pattern.
// That interchangeability is the point: they serve as cross-check oracles
// for one another and as the comparison algorithms in the benchmark
// harness.
package match
