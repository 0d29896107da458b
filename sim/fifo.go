package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/pagesim/pagesim/sim/trace"
)

// Simulate runs FIFO page replacement over pages with frameCount frames and
// returns the full step trace. Inputs are expected to have passed Validate;
// Simulate does not re-check them. The engine itself only needs frameCount >= 1
// and non-negative pages, so longer regression sequences can be fed directly.
//
// Each reference is handled as one of:
//   - hit: the page is resident; frames and load order are unchanged.
//   - fault into a free slot: the page goes into the lowest-index empty slot.
//   - fault with eviction: the oldest resident page (load order front) is
//     evicted and its slot is overwritten.
//
// Every loaded page is appended to the back of the load order.
func Simulate(pages []int, frameCount int) *trace.SimulationTrace {
	st := trace.NewSimulationTrace(trace.TraceConfig{Pages: pages, FrameCount: frameCount})
	frames := NewFrameState(frameCount)
	order := &LoadOrderQueue{}

	for i, page := range pages {
		record := trace.StepRecord{Page: page, Replaced: trace.NoPage}

		if slot := frames.Find(page); slot >= 0 {
			record.Slot = slot
			logrus.Debugf("[step %02d] page %d: hit in frame %d", i, page, slot)
		} else if slot := frames.FirstFree(); slot >= 0 {
			frames.Load(slot, page)
			order.Enqueue(page)
			record.Fault = true
			record.Slot = slot
			logrus.Debugf("[step %02d] page %d: fault, loaded into free frame %d", i, page, slot)
		} else {
			victim := order.Dequeue()
			record.Slot = frames.Replace(victim, page)
			order.Enqueue(page)
			record.Fault = true
			record.Replaced = victim
			logrus.Debugf("[step %02d] page %d: fault, evicted page %d from frame %d", i, page, victim, record.Slot)
		}

		record.Frames = frames.Snapshot()
		record.LoadOrder = order.Snapshot()
		st.RecordStep(record)
	}

	logrus.Debugf("simulation finished: %d references, %d frames, %d faults", len(pages), frameCount, st.TotalFaults)
	return st
}
