package sim

import "github.com/pagesim/pagesim/sim/trace"

// FrameState is physical memory: a fixed number of slots, each holding a page
// or trace.NoPage when empty. Lookups are linear scans; the slot count is tiny.
type FrameState struct {
	slots []int
}

// NewFrameState returns frameCount empty slots.
func NewFrameState(frameCount int) *FrameState {
	slots := make([]int, frameCount)
	for i := range slots {
		slots[i] = trace.NoPage
	}
	return &FrameState{slots: slots}
}

// Find returns the slot holding page, or -1 if the page is not resident.
func (f *FrameState) Find(page int) int {
	for i, p := range f.slots {
		if p == page {
			return i
		}
	}
	return -1
}

// FirstFree returns the lowest-index empty slot, or -1 if memory is full.
func (f *FrameState) FirstFree() int {
	return f.Find(trace.NoPage)
}

// Load places page into slot i.
func (f *FrameState) Load(i, page int) {
	f.slots[i] = page
}

// Replace overwrites the slot holding victim with page and returns that slot.
// Panics if victim is not resident, which would mean the load order queue and
// the frames have diverged.
func (f *FrameState) Replace(victim, page int) int {
	i := f.Find(victim)
	if i < 0 {
		panic("Replace: victim page is not resident")
	}
	f.slots[i] = page
	return i
}

// Len returns the number of slots.
func (f *FrameState) Len() int {
	return len(f.slots)
}

// Snapshot returns a copy of the slots.
func (f *FrameState) Snapshot() []int {
	out := make([]int, len(f.slots))
	copy(out, f.slots)
	return out
}
