package nibble

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_Len(t *testing.T) {
	q := NewQueue(1, 2, 3)
	require.Equal(t, 3, q.Len())
	require.False(t, q.Empty())

	require.Equal(t, []Nibble{1, 2, 3}, q.PopN(3))
	require.Zero(t, q.Len())
	require.True(t, q.Empty())
}

func TestQueue_PopN(t *testing.T) {
	q := NewQueue(0, 3, 12, 4, 0, 1)

	require.Equal(t, []Nibble{0, 3, 12, 4, 0}, q.PopN(5))
	require.Equal(t, 1, q.Len())

	require.Nil(t, q.PopN(5), "short queue must not be consumed")
	require.Equal(t, 1, q.Len())

	require.Nil(t, q.PopN(-1))
	require.Equal(t, []Nibble{1}, q.PopN(1))
	require.True(t, q.Empty())
}

func TestQueue_CopiesInput(t *testing.T) {
	src := []Nibble{1, 2}
	q := NewQueue(src...)
	src[0] = 9

	require.Equal(t, []Nibble{1}, q.PopN(1))
}

func TestQueue_PushFront(t *testing.T) {
	t.Run("into consumed space", func(t *testing.T) {
		q := NewQueue(1, 2, 3, 4)
		q.PopN(2)
		q.PushFront(7, 8)
		require.Equal(t, []Nibble{7, 8, 3, 4}, q.Drain())
	})

	t.Run("grows the buffer", func(t *testing.T) {
		q := NewQueue(3, 4)
		q.PushFront(1, 2)
		require.Equal(t, []Nibble{1, 2, 3, 4}, q.Drain())
	})

	t.Run("onto empty queue", func(t *testing.T) {
		q := NewQueue()
		q.PushFront(5)
		require.Equal(t, 1, q.Len())
	})

	t.Run("nothing", func(t *testing.T) {
		q := NewQueue(1)
		q.PushFront()
		require.Equal(t, []Nibble{1}, q.Drain())
	})
}

func TestQueue_PushBackAndDrain(t *testing.T) {
	q := NewQueueFromBytes([]byte{0xAB})
	q.PushBack(1)

	require.Equal(t, []Nibble{10, 11, 1}, q.Drain())
	require.True(t, q.Empty())
	require.Empty(t, q.Drain())
}
