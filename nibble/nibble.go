// Package nibble provides the 4-bit input unit consumed by the encoder, helpers to
// split bytes into nibbles, and the bit-string form used by remainders.
package nibble

import (
	"fmt"
	"strings"

	"github.com/arloliu/nibmidi/errs"
)

// Max is the largest value a nibble can hold.
const Max = 0x0F

// BitsPerNibble is the width of a nibble in its bit-string form.
const BitsPerNibble = 4

// Nibble is an unsigned 4-bit value in [0, 15].
//
// Values built with New, Split or FromBytes are always in range. Consumers that
// receive arbitrary Nibble values use only the low four bits.
type Nibble uint8

// New validates v and returns it as a Nibble.
func New(v int) (Nibble, error) {
	if v < 0 || v > Max {
		return 0, fmt.Errorf("%w: %d", errs.ErrNibbleOutOfRange, v)
	}

	return Nibble(v), nil
}

// Split breaks a byte into its upper and lower nibble.
func Split(b byte) (hi, lo Nibble) {
	return Nibble(b >> 4), Nibble(b & Max)
}

// FromBytes expands data into nibbles, upper nibble of each byte first.
func FromBytes(data []byte) []Nibble {
	out := make([]Nibble, 0, len(data)*2)
	for _, b := range data {
		hi, lo := Split(b)
		out = append(out, hi, lo)
	}

	return out
}

// Bits renders nibbles as a string of '0'/'1' characters, four per nibble,
// most significant bit first.
func Bits(ns []Nibble) string {
	var sb strings.Builder
	sb.Grow(len(ns) * BitsPerNibble)
	for _, n := range ns {
		for shift := BitsPerNibble - 1; shift >= 0; shift-- {
			if (n>>shift)&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// ParseBits decodes a string produced by Bits.
func ParseBits(bits string) ([]Nibble, error) {
	if len(bits)%BitsPerNibble != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrInvalidBits, len(bits), BitsPerNibble)
	}

	out := make([]Nibble, 0, len(bits)/BitsPerNibble)
	for i := 0; i < len(bits); i += BitsPerNibble {
		var n Nibble
		for j := range BitsPerNibble {
			switch bits[i+j] {
			case '0':
				n <<= 1
			case '1':
				n = n<<1 | 1
			default:
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrInvalidBits, bits[i+j], i+j)
			}
		}
		out = append(out, n)
	}

	return out, nil
}
