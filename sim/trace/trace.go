package trace

// TraceConfig records the inputs a trace was produced from.
type TraceConfig struct {
	Pages      []int `yaml:"pages" json:"pages"`
	FrameCount int   `yaml:"frames" json:"frames"`
}

// SimulationTrace is the ordered list of step records from one engine run,
// one per input reference, plus the total fault count.
// It is built once by the engine and treated as immutable afterwards.
type SimulationTrace struct {
	Config      TraceConfig  `yaml:"config" json:"config"`
	Steps       []StepRecord `yaml:"steps" json:"steps"`
	TotalFaults int          `yaml:"total_faults" json:"total_faults"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	pages := make([]int, len(config.Pages))
	copy(pages, config.Pages)
	return &SimulationTrace{
		Config: TraceConfig{Pages: pages, FrameCount: config.FrameCount},
		Steps:  make([]StepRecord, 0, len(pages)),
	}
}

// RecordStep appends a step record and updates the fault total.
// The record's Step index is assigned from its position in the trace.
func (st *SimulationTrace) RecordStep(record StepRecord) {
	record.Step = len(st.Steps)
	if record.Fault {
		st.TotalFaults++
	}
	st.Steps = append(st.Steps, record)
}

// Len returns the number of recorded steps.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Steps)
}

// At returns the step at index i. ok is false when i is out of range.
func (st *SimulationTrace) At(i int) (record StepRecord, ok bool) {
	if i < 0 || i >= st.Len() {
		return StepRecord{}, false
	}
	return st.Steps[i], true
}
