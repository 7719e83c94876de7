package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/nibmidi/event"
	"github.com/arloliu/nibmidi/format"
	"github.com/arloliu/nibmidi/nibble"
	"github.com/arloliu/nibmidi/pattern"
)

func TestRecord_Accumulate(t *testing.T) {
	t.Run("one nibble per kind", func(t *testing.T) {
		var rec record
		created := rec.accumulate(pattern.MustParse("cnvtl"), []nibble.Nibble{0, 3, 12, 4, 0})

		require.Equal(t, 5, created)
		require.True(t, rec.complete())
		require.Equal(t, 5, rec.components())
		assert.Equal(t, [format.NumKinds]uint64{0, 3, 12, 4, 0}, rec.values)
	})

	t.Run("repeated kind shifts and merges", func(t *testing.T) {
		var rec record
		created := rec.accumulate(pattern.MustParse("nn"), []nibble.Nibble{3, 12})

		require.Equal(t, 1, created)
		require.False(t, rec.complete())
		assert.Equal(t, uint64(60), rec.values[format.KindNote])
		assert.True(t, rec.has(format.KindNote))
		assert.False(t, rec.has(format.KindChannel))
	})

	t.Run("order of kinds does not matter", func(t *testing.T) {
		var rec record
		rec.accumulate(pattern.MustParse("ltvnc"), []nibble.Nibble{1, 2, 3, 4, 5})

		require.True(t, rec.complete())
		assert.Equal(t, uint64(5), rec.values[format.KindChannel])
		assert.Equal(t, uint64(1), rec.values[format.KindLength])
	})

	t.Run("sixteen nibbles fill the value exactly", func(t *testing.T) {
		p := pattern.MustParse(strings.Repeat("t", 16))
		cycle := make([]nibble.Nibble, p.Len())
		for i := range cycle {
			cycle[i] = 0xF
		}

		var rec record
		rec.accumulate(p, cycle)
		assert.Equal(t, format.MaxValue, rec.values[format.KindTiming])
		assert.Zero(t, rec.saturatedCount())
	})
}

func TestRecord_AccumulateSaturates(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"seventeen nibbles", 17},
		{"stays saturated", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pattern.MustParse(strings.Repeat("t", tt.width))
			cycle := make([]nibble.Nibble, p.Len())
			cycle[0] = 0x1
			cycle[len(cycle)-1] = 0x3

			var rec record
			rec.accumulate(p, cycle)
			assert.Equal(t, format.MaxValue, rec.values[format.KindTiming], "high nibbles must not wrap away")
			assert.Equal(t, 1, rec.saturatedCount())
		})
	}
}

func TestRecord_Missing(t *testing.T) {
	var rec record
	require.Equal(t, format.AllKinds[:], rec.missing())

	rec.accumulate(pattern.MustParse("cv"), []nibble.Nibble{1, 1})
	require.Equal(t, []format.FieldKind{format.KindNote, format.KindTiming, format.KindLength}, rec.missing())
}

func TestFinalize(t *testing.T) {
	var dropped []DroppedRecord
	enc := mustNew(t, "cnvtl", WithDropObserver(func(d DroppedRecord) {
		dropped = append(dropped, d)
	}))

	records := make([]record, 3)
	records[0].accumulate(enc.Pattern(), []nibble.Nibble{1, 2, 3, 4, 5})
	records[1].accumulate(pattern.MustParse("cnv"), []nibble.Nibble{1, 2, 3})
	records[2].accumulate(enc.Pattern(), []nibble.Nibble{6, 7, 8, 9, 10})
	before := append([]record(nil), records...)

	pairs, n := enc.finalize(records)

	require.Equal(t, 1, n)
	require.Equal(t, []event.Pair{
		event.NewPair(1, 2, 3, 4, 5),
		event.NewPair(6, 7, 8, 9, 10),
	}, pairs)
	require.Equal(t, []DroppedRecord{{
		RecordID: 1,
		Missing:  []format.FieldKind{format.KindTiming, format.KindLength},
	}}, dropped)
	require.Equal(t, before, records, "finalization only reads records")
}

func TestNewRemainder(t *testing.T) {
	require.Nil(t, newRemainder(nil, 7, 5, 1))

	rem := newRemainder([]nibble.Nibble{1, 15}, 7, 5, 42)
	require.Equal(t, &Remainder{Bits: "00011111", PatternPosition: 2, PatternID: 42}, rem)
	require.Equal(t, 2, rem.Len())

	ns, err := rem.Nibbles()
	require.NoError(t, err)
	require.Equal(t, []nibble.Nibble{1, 15}, ns)
}
