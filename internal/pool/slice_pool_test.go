package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePool_Get(t *testing.T) {
	sp := NewSlicePool[int](4)

	t.Run("returns empty slice with requested capacity", func(t *testing.T) {
		s, cleanup := sp.Get(10)
		defer cleanup()

		require.Empty(t, s)
		require.GreaterOrEqual(t, cap(s), 10)
	})

	t.Run("small request uses pooled capacity", func(t *testing.T) {
		s, cleanup := sp.Get(0)
		defer cleanup()

		require.Empty(t, s)
	})
}

func TestSlicePool_ClearsOnCleanup(t *testing.T) {
	sp := NewSlicePool[*int](2)

	s, cleanup := sp.Get(2)
	v := 7
	s = append(s, &v, &v)
	require.Len(t, s, 2)
	cleanup()

	// the backing array was zeroed even though the slice header escaped
	require.Nil(t, s[0])
	require.Nil(t, s[1])
}

func TestSlicePool_Reuse(t *testing.T) {
	sp := NewSlicePool[byte](1)

	for range 100 {
		s, cleanup := sp.Get(16)
		s = append(s, 1, 2, 3)
		require.Len(t, s, 3)
		cleanup()
	}
}

func BenchmarkSlicePool_Get(b *testing.B) {
	sp := NewSlicePool[uint64](64)
	for b.Loop() {
		s, cleanup := sp.Get(64)
		_ = append(s, 1)
		cleanup()
	}
}
