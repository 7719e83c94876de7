// Package pattern validates and represents the field-order template that maps
// successive nibbles of a cycle onto record fields.
//
// A pattern is a non-empty string over the alphabet c, n, v, t, l:
//
//	c  channel
//	n  note
//	v  velocity
//	t  timing
//	l  length
//
// Symbols may repeat. Repeated symbols within one cycle are merged into a wider
// field value by the encoder, so "cnnvvtl" carries an 8-bit note and velocity.
//
// A Pattern is immutable once parsed and safe for concurrent use.
package pattern

import (
	"fmt"

	"github.com/arloliu/nibmidi/errs"
	"github.com/arloliu/nibmidi/format"
	"github.com/arloliu/nibmidi/internal/hash"
)

// Pattern is a validated, non-empty sequence of field kinds.
type Pattern struct {
	symbols string
	kinds   []format.FieldKind
	counts  [format.NumKinds]int
	id      uint64
}

// Parse validates symbols and returns the corresponding Pattern.
//
// It returns an error wrapping errs.ErrInvalidPattern if symbols is empty
// (errs.ErrEmptyPattern) or contains a character outside the alphabet.
func Parse(symbols string) (Pattern, error) {
	if symbols == "" {
		return Pattern{}, errs.ErrEmptyPattern
	}

	p := Pattern{
		symbols: symbols,
		kinds:   make([]format.FieldKind, len(symbols)),
	}
	for i := 0; i < len(symbols); i++ {
		kind, ok := format.ParseFieldKind(symbols[i])
		if !ok {
			return Pattern{}, fmt.Errorf("%w: symbol %q at position %d", errs.ErrInvalidPattern, symbols[i], i)
		}
		p.kinds[i] = kind
		p.counts[kind]++
	}
	p.id = hash.PatternID(symbols)

	return p, nil
}

// MustParse is like Parse but panics on an invalid pattern.
// It is intended for package-level pattern literals.
func MustParse(symbols string) Pattern {
	p, err := Parse(symbols)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of positions in one cycle.
func (p Pattern) Len() int {
	return len(p.kinds)
}

// At returns the field kind at cycle position i.
func (p Pattern) At(i int) format.FieldKind {
	return p.kinds[i]
}

// Kinds returns a copy of the pattern's field kinds in cycle order.
func (p Pattern) Kinds() []format.FieldKind {
	out := make([]format.FieldKind, len(p.kinds))
	copy(out, p.kinds)

	return out
}

// Count returns how many positions of a cycle map to kind, which is also the
// width of that field in nibbles.
func (p Pattern) Count(kind format.FieldKind) int {
	if !kind.Valid() {
		return 0
	}

	return p.counts[kind]
}

// Missing returns the field kinds that never occur in the pattern.
// A pattern with missing kinds never produces a complete record.
func (p Pattern) Missing() []format.FieldKind {
	var missing []format.FieldKind
	for _, kind := range format.AllKinds {
		if p.counts[kind] == 0 {
			missing = append(missing, kind)
		}
	}

	return missing
}

// Complete reports whether every field kind occurs at least once.
func (p Pattern) Complete() bool {
	return len(p.Missing()) == 0
}

// ID returns the xxHash64 identity of the pattern symbols.
func (p Pattern) ID() uint64 {
	return p.id
}

// IsZero reports whether p is the zero Pattern rather than a parsed one.
func (p Pattern) IsZero() bool {
	return len(p.kinds) == 0
}

// String returns the pattern symbols.
func (p Pattern) String() string {
	return p.symbols
}
