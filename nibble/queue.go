package nibble

// Queue is a front-poppable nibble sequence.
//
// A Queue is not safe for concurrent use; an assembly call drains the queue it
// is given, so each caller owns its own queue.
type Queue struct {
	buf  []Nibble
	head int
}

// NewQueue creates a queue holding a copy of ns.
func NewQueue(ns ...Nibble) *Queue {
	buf := make([]Nibble, len(ns))
	copy(buf, ns)

	return &Queue{buf: buf}
}

// NewQueueFromBytes creates a queue of the nibbles of data, upper nibble first.
func NewQueueFromBytes(data []byte) *Queue {
	return &Queue{buf: FromBytes(data)}
}

// Len returns the number of nibbles left in the queue.
func (q *Queue) Len() int {
	return len(q.buf) - q.head
}

// Empty reports whether the queue holds no nibbles.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// PopN removes the first n nibbles and returns them.
// It returns nil without consuming anything if fewer than n remain.
//
// The returned slice aliases the queue's storage and is valid until the next
// call that adds to the queue.
func (q *Queue) PopN(n int) []Nibble {
	if n < 0 || q.Len() < n {
		return nil
	}
	out := q.buf[q.head : q.head+n : q.head+n]
	q.head += n

	return out
}

// PushBack appends nibbles to the end of the queue.
func (q *Queue) PushBack(ns ...Nibble) {
	q.buf = append(q.buf, ns...)
}

// PushFront inserts nibbles before the current head, preserving their order.
func (q *Queue) PushFront(ns ...Nibble) {
	if len(ns) == 0 {
		return
	}
	if q.head >= len(ns) {
		q.head -= len(ns)
		copy(q.buf[q.head:], ns)

		return
	}
	buf := make([]Nibble, 0, len(ns)+q.Len())
	buf = append(buf, ns...)
	buf = append(buf, q.buf[q.head:]...)
	q.buf = buf
	q.head = 0
}

// Drain removes and returns every remaining nibble.
func (q *Queue) Drain() []Nibble {
	out := make([]Nibble, q.Len())
	copy(out, q.buf[q.head:])
	q.buf = q.buf[:0]
	q.head = 0

	return out
}
