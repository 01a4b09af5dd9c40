package bridge

import "sync"

// Queue is an unbounded FIFO of outbound audio chunks feeding a provider
// request stream. Closing the queue inserts the end-of-input sentinel:
// pushes after Close are rejected, pops drain the backlog and then report
// completion.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  [][]byte
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends one chunk. Returns false when the sentinel has already been
// inserted; the chunk is dropped in that case.
func (q *Queue) Push(chunk []byte) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, chunk)
	q.cond.Signal()
	return true
}

// Close inserts the end-of-input sentinel. Idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		q.cond.Broadcast()
	}
}

// Pop blocks for the next chunk. ok is false once the queue is closed and
// the backlog drained.
func (q *Queue) Pop() (chunk []byte, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}
	chunk = q.items[0]
	q.items = q.items[1:]
	return chunk, true
}

// Len returns the current backlog size.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Closed reports whether the sentinel has been inserted.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
