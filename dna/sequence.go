package dna

import (
	"fmt"
	"strings"
)

// Sequence is an immutable encoded DNA sequence with the Terminator symbol
// appended. The zero value is not useful; construct with NewSequence.
type Sequence struct {
	syms []uint8
}

// NewSequence encodes s and appends the Terminator. An invalid character
// fails the whole construction at its index; no partial Sequence is
// returned. The empty string is a valid input and yields a Sequence holding
// only the terminator.
func NewSequence(s string) (Sequence, error) {
	syms := make([]uint8, len(s)+1)
	for i := 0; i < len(s); i++ {
		b, err := EncodeBase(s[i])
		if err != nil {
			return Sequence{}, fmt.Errorf("%w at index %d", err, i)
		}
		syms[i] = b
	}
	syms[len(s)] = Terminator
	return Sequence{syms: syms}, nil
}

// Len returns the number of bases, excluding the terminator.
func (s Sequence) Len() int {
	if s.syms == nil {
		return 0
	}
	return len(s.syms) - 1
}

// Symbols returns the backing symbol slice, terminator included.
//
// The slice is shared, not copied: index structures reference it for edge
// labels rather than duplicating substrings. Callers must treat it as
// read-only; mutating it invalidates every structure built over it.
func (s Sequence) Symbols() []uint8 {
	return s.syms
}

// At returns the symbol at i. i may address the terminator at Len().
func (s Sequence) At(i int) uint8 {
	return s.syms[i]
}

// String decodes the bases, excluding the terminator.
func (s Sequence) String() string {
	if s.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(s.Len())
	for _, b := range s.syms[:s.Len()] {
		sb.WriteByte(DecodeBase(b))
	}
	return sb.String()
}
