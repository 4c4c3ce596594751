// Package dna encodes DNA sequences over the four-base alphabet into the
// compact symbol form the index structures operate on.
//
// Bases map to the symbol indices 0..3 (A, C, G, T in that order). A fifth
// symbol, Terminator, is appended to every Sequence; it is outside the base
// range and can never be produced by encoding a pattern, so every suffix of a
// Sequence ends in a symbol no pattern matches.
//
// Encoding is case sensitive and never normalizes: anything outside
// {A,C,G,T} fails with ErrInvalidSymbol. This is deliberate - in this domain
// 'a' and 'N' are not bases, and silently mapping them would corrupt match
// positions downstream.
package dna

import (
	"errors"
	"fmt"
)

// Bases is the alphabet size. Symbol values 0..Bases-1 are bases.
const Bases = 4

// Terminator is the sentinel symbol appended to every Sequence. It is not a
// base and is rejected by the codec, so it can only ever appear as the final
// symbol of a Sequence.
const Terminator uint8 = Bases

var ErrInvalidSymbol = errors.New("dna: invalid symbol")

// baseFor maps a symbol index back to its base character. Indexed only by
// values the codec produced; Terminator is never decoded.
var baseFor = [Bases]byte{'A', 'C', 'G', 'T'}

// EncodeBase maps a single base character to its symbol index.
func EncodeBase(c byte) (uint8, error) {
	switch c {
	case 'A':
		return 0, nil
	case 'C':
		return 1, nil
	case 'G':
		return 2, nil
	case 'T':
		return 3, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidSymbol, c)
	}
}

// DecodeBase is the inverse of EncodeBase. It is used only for diagnostics
// and reporting; calling it with Terminator or any other out of range value
// panics, as that always indicates a bug in the caller.
func DecodeBase(b uint8) byte {
	return baseFor[b]
}

// EncodeSymbols encodes s without appending a terminator. This is the form
// patterns take. It fails at the first invalid character, reporting its
// index, and returns no partial result.
func EncodeSymbols(s string) ([]uint8, error) {
	syms := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		b, err := EncodeBase(s[i])
		if err != nil {
			return nil, fmt.Errorf("%w at index %d", err, i)
		}
		syms[i] = b
	}
	return syms, nil
}
