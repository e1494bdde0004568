// Package readyqueue implements the global ready-queue of the actor
// runtime: a FIFO of actor identifiers eligible to be served by a worker.
//
// It is a dynamically growing circular buffer, the direct Go port of
// append_to_queue/queue_pop from the original cacti.c thread pool: when
// occupancy reaches capacity the backing array doubles and the logical
// contents are linearized starting at index 0. FIFO order is preserved,
// which combined with the runtime's per-actor scheduling flag yields
// round-robin fairness among runnable actors.
//
// Queue is not safe for concurrent use; callers serialize access with
// their own lock (the runtime's global mutex).
package readyqueue

import "github.com/lguibr/bollywood/internal/actorid"

// Queue is a FIFO circular buffer of actor ids.
type Queue struct {
	buf   []actorid.ActorID
	head  int
	count int
}

// New returns a Queue with the given initial capacity. A non-positive
// capacity is rounded up to a small default.
func New(initialCapacity int) *Queue {
	if initialCapacity <= 0 {
		initialCapacity = 64
	}
	return &Queue{buf: make([]actorid.ActorID, initialCapacity)}
}

// Len reports the number of ids currently queued.
func (q *Queue) Len() int {
	return q.count
}

// PushBack appends id to the tail of the queue, growing the backing array
// (doubling) if it is full.
func (q *Queue) PushBack(id actorid.ActorID) {
	if q.count == len(q.buf) {
		q.grow()
	}
	pos := (q.head + q.count) % len(q.buf)
	q.buf[pos] = id
	q.count++
}

// PopFront removes and returns the id at the head of the queue.
// The caller must ensure the queue is non-empty.
func (q *Queue) PopFront() actorid.ActorID {
	id := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return id
}

func (q *Queue) grow() {
	oldSize := len(q.buf)
	grown := make([]actorid.ActorID, 2*oldSize)
	for i := 0; i < q.count; i++ {
		grown[i] = q.buf[(q.head+i)%oldSize]
	}
	q.buf = grown
	q.head = 0
}
