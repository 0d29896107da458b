package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalSteps    int         `yaml:"total_steps" json:"total_steps"`
	Faults        int         `yaml:"faults" json:"faults"`
	Hits          int         `yaml:"hits" json:"hits"`
	Evictions     int         `yaml:"evictions" json:"evictions"`
	FaultRate     float64     `yaml:"fault_rate" json:"fault_rate"`
	HitRate       float64     `yaml:"hit_rate" json:"hit_rate"`
	DistinctPages int         `yaml:"distinct_pages" json:"distinct_pages"`
	FinalFrames   []int       `yaml:"final_frames" json:"final_frames"`
	PageFaults    map[int]int `yaml:"page_faults" json:"page_faults"` // page → number of times it was loaded
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		FinalFrames: []int{},
		PageFaults:  make(map[int]int),
	}
	if st.Len() == 0 {
		return summary
	}

	seen := make(map[int]bool)
	summary.TotalSteps = len(st.Steps)
	for _, s := range st.Steps {
		seen[s.Page] = true
		if !s.Fault {
			summary.Hits++
			continue
		}
		summary.Faults++
		summary.PageFaults[s.Page]++
		if s.HasReplacement() {
			summary.Evictions++
		}
	}
	summary.DistinctPages = len(seen)
	summary.FaultRate = float64(summary.Faults) / float64(summary.TotalSteps)
	summary.HitRate = float64(summary.Hits) / float64(summary.TotalSteps)

	last := st.Steps[len(st.Steps)-1]
	summary.FinalFrames = append(summary.FinalFrames, last.Frames...)

	return summary
}
