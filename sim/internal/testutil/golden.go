// Package testutil provides shared test infrastructure for pagesim.
// It holds the golden dataset types and assertion helpers used by the
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pagesim/pagesim/sim/trace"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-checked FIFO run.
type GoldenTestCase struct {
	Name        string `json:"name"`
	Pages       []int  `json:"pages"`
	Frames      int    `json:"frames"`
	TotalFaults int    `json:"total_faults"`
	Pattern     string `json:"pattern"`  // one 'F' (fault) or 'H' (hit) per reference
	Replaced    []int  `json:"replaced"` // evicted page per step, -1 for none
	FinalFrames []int  `json:"final_frames"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// FaultPattern renders a trace as a string of 'F' and 'H', one per step.
func FaultPattern(st *trace.SimulationTrace) string {
	out := make([]byte, 0, st.Len())
	for _, s := range st.Steps {
		if s.Fault {
			out = append(out, 'F')
		} else {
			out = append(out, 'H')
		}
	}
	return string(out)
}

// AssertTraceInvariants checks the structural invariants every FIFO trace must hold:
// the resident set in Frames equals the LoadOrder set, occupancy never exceeds the
// frame count and grows by at most one per step, hits leave state unchanged, every
// eviction removes the rank-1 page of the previous step, and TotalFaults matches.
func AssertTraceInvariants(t *testing.T, st *trace.SimulationTrace) {
	t.Helper()

	faults := 0
	var prev *trace.StepRecord
	for i := range st.Steps {
		s := st.Steps[i]
		if s.Fault {
			faults++
		}
		if len(s.Frames) != st.Config.FrameCount {
			t.Errorf("step %d: %d frames, want %d", i, len(s.Frames), st.Config.FrameCount)
		}

		resident := make(map[int]bool)
		for _, p := range s.Frames {
			if p != trace.NoPage {
				if resident[p] {
					t.Errorf("step %d: page %d resident in two frames", i, p)
				}
				resident[p] = true
			}
		}
		ranks := s.LoadRank()
		if len(ranks) != len(resident) || len(s.LoadOrder) != len(resident) {
			t.Errorf("step %d: load order %v does not match frames %v", i, s.LoadOrder, s.Frames)
		}
		for p := range resident {
			if _, ok := ranks[p]; !ok {
				t.Errorf("step %d: resident page %d missing from load rank", i, p)
			}
		}
		if len(resident) > st.Config.FrameCount {
			t.Errorf("step %d: %d resident pages exceeds %d frames", i, len(resident), st.Config.FrameCount)
		}
		if s.Frames[s.Slot] != s.Page {
			t.Errorf("step %d: slot %d holds %d, want page %d", i, s.Slot, s.Frames[s.Slot], s.Page)
		}

		if prev != nil {
			growth := len(resident) - prev.Resident()
			if growth < 0 || growth > 1 {
				t.Errorf("step %d: occupancy changed by %d", i, growth)
			}
			if !s.Fault && !equalInts(prev.Frames, s.Frames) {
				t.Errorf("step %d: hit changed frames %v -> %v", i, prev.Frames, s.Frames)
			}
			if !s.Fault && !equalInts(prev.LoadOrder, s.LoadOrder) {
				t.Errorf("step %d: hit changed load order %v -> %v", i, prev.LoadOrder, s.LoadOrder)
			}
			if s.HasReplacement() && prev.Rank(s.Replaced) != 1 {
				t.Errorf("step %d: evicted page %d had rank %d, want 1", i, s.Replaced, prev.Rank(s.Replaced))
			}
		} else if s.HasReplacement() {
			t.Errorf("step 0: unexpected eviction of page %d", s.Replaced)
		}
		prev = &st.Steps[i]
	}
	if faults != st.TotalFaults {
		t.Errorf("TotalFaults = %d, counted %d", st.TotalFaults, faults)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
