package encoder

import (
	"fmt"

	"github.com/arloliu/nibmidi/nibble"
)

// Remainder holds the nibbles left over after the last whole cycle of a call.
type Remainder struct {
	// Bits is the leftover nibbles as '0'/'1' characters, four per nibble, MSB first.
	Bits string
	// PatternPosition is the number of components created during the call modulo
	// the pattern length.
	PatternPosition int
	// PatternID identifies the pattern of the encoder that produced the remainder.
	PatternID uint64
}

func newRemainder(leftover []nibble.Nibble, components, patternLen int, patternID uint64) *Remainder {
	if len(leftover) == 0 {
		return nil
	}

	return &Remainder{
		Bits:            nibble.Bits(leftover),
		PatternPosition: components % patternLen,
		PatternID:       patternID,
	}
}

// Len returns the number of leftover nibbles.
func (r *Remainder) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Bits) / nibble.BitsPerNibble
}

// Nibbles decodes the leftover nibbles from Bits.
func (r *Remainder) Nibbles() ([]nibble.Nibble, error) {
	if r == nil {
		return nil, nil
	}

	return nibble.ParseBits(r.Bits)
}

func (r *Remainder) String() string {
	if r == nil {
		return "<nil>"
	}

	return fmt.Sprintf("unused bits: %s (stopped at position %d in pattern)", r.Bits, r.PatternPosition)
}
