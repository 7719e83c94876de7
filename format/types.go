// Package format defines the closed set of record field kinds and their value ranges.
package format

import "math"

type FieldKind uint8

const (
	KindChannel  FieldKind = 0x0 // KindChannel is the MIDI channel field, symbol 'c'.
	KindNote     FieldKind = 0x1 // KindNote is the note number field, symbol 'n'.
	KindVelocity FieldKind = 0x2 // KindVelocity is the note-on velocity field, symbol 'v'.
	KindTiming   FieldKind = 0x3 // KindTiming is the start time field, symbol 't'.
	KindLength   FieldKind = 0x4 // KindLength is the duration code field, symbol 'l'.

	// NumKinds is the number of field kinds a complete record requires.
	NumKinds = 5
)

// Saturation limits applied when a record is turned into events.
const (
	MaxChannel  uint8 = 15
	MaxNote     uint8 = 127
	MaxVelocity uint8 = 127
)

// MaxValue is the ceiling of an accumulated field value. Merges that would
// carry a value past it saturate here instead of wrapping.
const MaxValue uint64 = math.MaxUint64

// AllKinds lists every field kind in index order.
var AllKinds = [NumKinds]FieldKind{KindChannel, KindNote, KindVelocity, KindTiming, KindLength}

func (k FieldKind) String() string {
	switch k {
	case KindChannel:
		return "Channel"
	case KindNote:
		return "Note"
	case KindVelocity:
		return "Velocity"
	case KindTiming:
		return "Timing"
	case KindLength:
		return "Length"
	default:
		return "Unknown"
	}
}

// Symbol returns the pattern symbol of the kind, or 0 for an unknown kind.
func (k FieldKind) Symbol() byte {
	switch k {
	case KindChannel:
		return 'c'
	case KindNote:
		return 'n'
	case KindVelocity:
		return 'v'
	case KindTiming:
		return 't'
	case KindLength:
		return 'l'
	default:
		return 0
	}
}

// Valid reports whether k is one of the five field kinds.
func (k FieldKind) Valid() bool {
	return k < NumKinds
}

// ParseFieldKind maps a pattern symbol to its field kind.
// ok is false for a symbol outside the alphabet.
func ParseFieldKind(sym byte) (kind FieldKind, ok bool) {
	switch sym {
	case 'c':
		return KindChannel, true
	case 'n':
		return KindNote, true
	case 'v':
		return KindVelocity, true
	case 't':
		return KindTiming, true
	case 'l':
		return KindLength, true
	default:
		return 0, false
	}
}
