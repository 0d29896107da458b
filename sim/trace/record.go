// Package trace provides the step-by-step record of a FIFO page-replacement run.
// This package has no dependencies on sim/ — it stores pure data types and
// read-only queries over them.
package trace

// NoPage marks an empty frame slot, or the absence of an evicted page.
// Page references are non-negative, so the sentinel never collides with one.
const NoPage = -1

// StepRecord captures the outcome of processing exactly one page reference.
type StepRecord struct {
	Step      int   `yaml:"step" json:"step"`
	Page      int   `yaml:"page" json:"page"`
	Frames    []int `yaml:"frames" json:"frames"`         // frame contents after the step; NoPage = empty
	Fault     bool  `yaml:"fault" json:"fault"`           // page was not resident before the step
	Replaced  int   `yaml:"replaced" json:"replaced"`     // evicted page, NoPage if none
	Slot      int   `yaml:"slot" json:"slot"`             // frame index loaded (fault) or matched (hit)
	LoadOrder []int `yaml:"load_order" json:"load_order"` // resident pages, oldest first
}

// HasReplacement reports whether the step evicted a resident page.
func (r StepRecord) HasReplacement() bool {
	return r.Replaced != NoPage
}

// Rank returns the 1-based FIFO position of page after this step
// (1 = oldest = next victim), or 0 if the page is not resident.
func (r StepRecord) Rank(page int) int {
	for i, p := range r.LoadOrder {
		if p == page {
			return i + 1
		}
	}
	return 0
}

// LoadRank returns the page → rank mapping for every resident page.
// Ranks are derived from LoadOrder position, not from map iteration order.
func (r StepRecord) LoadRank() map[int]int {
	ranks := make(map[int]int, len(r.LoadOrder))
	for i, p := range r.LoadOrder {
		ranks[p] = i + 1
	}
	return ranks
}

// Resident returns the number of occupied frames after this step.
func (r StepRecord) Resident() int {
	n := 0
	for _, p := range r.Frames {
		if p != NoPage {
			n++
		}
	}
	return n
}
