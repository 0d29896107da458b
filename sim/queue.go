// Implements the LoadOrderQueue, which holds resident pages in load order.
// Pages are enqueued on every load and dequeued only on eviction.

package sim

import (
	"fmt"
	"strings"
)

// LoadOrderQueue represents the FIFO order of pages currently resident in memory.
// The front is the oldest resident page and therefore the next eviction victim.
type LoadOrderQueue struct {
	queue []int // resident pages, oldest first
}

// Enqueue adds a freshly loaded page to the back of the queue.
func (q *LoadOrderQueue) Enqueue(page int) {
	q.queue = append(q.queue, page)
}

func (q *LoadOrderQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range q.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of resident pages.
func (q *LoadOrderQueue) Len() int {
	return len(q.queue)
}

// Peek returns the oldest resident page without removing it.
// ok is false if the queue is empty.
func (q *LoadOrderQueue) Peek() (page int, ok bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	return q.queue[0], true
}

// Dequeue removes and returns the oldest resident page.
// Panics on an empty queue: the engine only evicts when every frame is full.
func (q *LoadOrderQueue) Dequeue() int {
	if len(q.queue) == 0 {
		panic("Dequeue: load order queue is empty")
	}
	victim := q.queue[0]
	q.queue = q.queue[1:]
	return victim
}

// Snapshot returns a copy of the queue contents, oldest first.
func (q *LoadOrderQueue) Snapshot() []int {
	out := make([]int, len(q.queue))
	copy(out, q.queue)
	return out
}
