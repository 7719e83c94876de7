package encoder

import (
	"math/bits"

	"github.com/arloliu/nibmidi/format"
	"github.com/arloliu/nibmidi/internal/pool"
	"github.com/arloliu/nibmidi/nibble"
	"github.com/arloliu/nibmidi/pattern"
)

// completeMask has one bit set per field kind.
const completeMask = 1<<format.NumKinds - 1

// record holds the components of one record id. The record id is the index of
// the record in the per-call arena.
type record struct {
	values    [format.NumKinds]uint64
	seen      uint8 // bit k set once a component of kind k exists
	saturated uint8 // bit k set once kind k reached format.MaxValue
}

// mergeCeiling is the largest value that can be widened by one nibble without
// losing high bits.
const mergeCeiling = format.MaxValue >> 4

func (r *record) has(kind format.FieldKind) bool {
	return r.seen&(1<<kind) != 0
}

func (r *record) complete() bool {
	return r.seen&completeMask == completeMask
}

// components returns the number of distinct kinds present in the record.
func (r *record) components() int {
	return bits.OnesCount8(r.seen)
}

// missing lists the kinds the record lacks, in kind order.
func (r *record) missing() []format.FieldKind {
	var out []format.FieldKind
	for _, kind := range format.AllKinds {
		if !r.has(kind) {
			out = append(out, kind)
		}
	}

	return out
}

// accumulate feeds one full cycle into rec. Position i goes to the kind at
// pattern position i; a kind seen earlier in the cycle is widened by shifting
// its value left one nibble. A value that would outgrow 64 bits sticks at
// format.MaxValue, which every field treats as out of range.
//
// It returns how many new components the cycle created.
func (r *record) accumulate(p pattern.Pattern, cycle []nibble.Nibble) int {
	created := 0
	for i, n := range cycle {
		kind := p.At(i)
		v := uint64(n & nibble.Max)
		if r.has(kind) {
			r.merge(kind, v)
			continue
		}
		r.values[kind] = v
		r.seen |= 1 << kind
		created++
	}

	return created
}

func (r *record) merge(kind format.FieldKind, v uint64) {
	if r.saturated&(1<<kind) != 0 || r.values[kind] > mergeCeiling {
		r.values[kind] = format.MaxValue
		r.saturated |= 1 << kind

		return
	}
	r.values[kind] = r.values[kind]<<4 | v
}

// saturatedCount returns how many components of the record hit format.MaxValue.
func (r *record) saturatedCount() int {
	return bits.OnesCount8(r.saturated)
}

// recordPool recycles the per-call record arena.
var recordPool = pool.NewSlicePool[record](64)
