package match

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// singleMatcher lets the concrete cases below run against every
// single-pattern matcher without repeating the table.
type singleMatcher struct {
	name string
	find func(text, pattern string) ([]int, error)
}

func singleMatchers() []singleMatcher {
	return []singleMatcher{
		{"naive", Naive},
		{"kmp", KMP},
		{"boyermoore", BoyerMoore},
		{"pairindex", func(text, pattern string) ([]int, error) {
			x, err := NewPairIndex(text)
			if err != nil {
				return nil, err
			}
			return x.Find(pattern)
		}},
	}
}

func TestSingleMatchers(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"repeated block", "ACGTACGT", "ACGT", []int{0, 4}},
		{"overlapping", "AAAA", "AA", []int{0, 1, 2}},
		{"absent", "ACGT", "TG", nil},
		{"whole text", "ACGT", "ACGT", []int{0}},
		{"single base", "ACGTACGT", "G", []int{2, 6}},
		{"longer than text", "ACG", "ACGT", nil},
		{"empty pattern", "ACGT", "", nil},
		{"empty text", "", "A", nil},
		{"heavy overlap", "TTTTTTT", "TTT", []int{0, 1, 2, 3, 4}},
	}
	for _, m := range singleMatchers() {
		t.Run(m.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					got, err := m.find(tt.text, tt.pattern)
					assert.NilError(t, err)
					assert.DeepEqual(t, tt.want, got)
				})
			}
		})
	}
}

func TestSingleMatchersInvalidSymbol(t *testing.T) {
	for _, m := range singleMatchers() {
		t.Run(m.name, func(t *testing.T) {
			_, err := m.find("ACGX", "AC")
			assert.ErrorIs(t, err, dna.ErrInvalidSymbol)

			_, err = m.find("ACGT", "AN")
			assert.ErrorIs(t, err, dna.ErrInvalidSymbol)
		})
	}
}
