package trace

// Prefix returns the first k steps of the trace, with k clamped to [0, Len].
// The result is a read-only view: its capacity is limited to k so an append
// by the caller cannot write into the trace.
func Prefix(st *SimulationTrace, k int) []StepRecord {
	n := st.Len()
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	if k == 0 {
		return []StepRecord{}
	}
	return st.Steps[:k:k]
}

// CumulativeFaults counts the fault steps in steps.
func CumulativeFaults(steps []StepRecord) int {
	faults := 0
	for _, s := range steps {
		if s.Fault {
			faults++
		}
	}
	return faults
}

// CumulativeHits counts the hit steps in steps.
func CumulativeHits(steps []StepRecord) int {
	return len(steps) - CumulativeFaults(steps)
}

// Last returns the final step of steps. ok is false when steps is empty.
func Last(steps []StepRecord) (record StepRecord, ok bool) {
	if len(steps) == 0 {
		return StepRecord{}, false
	}
	return steps[len(steps)-1], true
}
