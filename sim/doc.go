// Package sim provides the FIFO page-replacement engine for pagesim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - validate.go: turns raw reference/frame-count strings into an Input
//   - fifo.go: Simulate, the single-pass FIFO state machine
//   - frames.go, queue.go: the physical frames and the load-order queue it mutates
//
// # Architecture
//
// Validate gates input, Simulate runs once to completion and returns an
// immutable trace.SimulationTrace, and the read-only helpers in sim/trace
// (Prefix, CumulativeFaults, CumulativeHits, Last, Summarize) are queried
// against it for step-by-step replay. Sweep re-runs the engine across frame
// counts to expose Belady's anomaly.
//
// Frame and queue state are locals of one Simulate call; nothing is shared
// between runs.
package sim
