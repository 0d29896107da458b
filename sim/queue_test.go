package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadOrderQueue_FIFO(t *testing.T) {
	q := &LoadOrderQueue{}
	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue(7)
	q.Enqueue(0)
	q.Enqueue(1)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "[7 0 1]", q.String())

	front, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 7, front)

	assert.Equal(t, 7, q.Dequeue())
	assert.Equal(t, []int{0, 1}, q.Snapshot())
}

func TestLoadOrderQueue_SnapshotIsCopy(t *testing.T) {
	q := &LoadOrderQueue{}
	q.Enqueue(1)
	snap := q.Snapshot()
	snap[0] = 5
	assert.Equal(t, []int{1}, q.Snapshot())
}

func TestLoadOrderQueue_DequeueEmpty_Panics(t *testing.T) {
	q := &LoadOrderQueue{}
	assert.Panics(t, func() { q.Dequeue() })
}

func TestFrameState_LoadAndReplace(t *testing.T) {
	f := NewFrameState(3)
	assert.Equal(t, 0, f.FirstFree())

	f.Load(0, 4)
	f.Load(1, 2)
	assert.Equal(t, 2, f.FirstFree())
	assert.Equal(t, 1, f.Find(2))
	assert.Equal(t, -1, f.Find(9))

	f.Load(2, 6)
	assert.Equal(t, -1, f.FirstFree())

	assert.Equal(t, 1, f.Replace(2, 8))
	assert.Equal(t, []int{4, 8, 6}, f.Snapshot())
	assert.Panics(t, func() { f.Replace(2, 3) })
}
