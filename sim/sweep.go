package sim

import "github.com/sirupsen/logrus"

// SweepResult is the fault total for one frame count.
type SweepResult struct {
	FrameCount int `yaml:"frames" json:"frames"`
	Faults     int `yaml:"faults" json:"faults"`
}

// Anomaly records a Belady anomaly: going from Fewer to More frames
// increased the fault total.
type Anomaly struct {
	Fewer SweepResult `yaml:"fewer" json:"fewer"`
	More  SweepResult `yaml:"more" json:"more"`
}

// Sweep runs the same reference sequence once per frame count, in the order given.
func Sweep(pages []int, frameCounts []int) []SweepResult {
	results := make([]SweepResult, 0, len(frameCounts))
	for _, fc := range frameCounts {
		st := Simulate(pages, fc)
		logrus.Debugf("sweep: %d frames -> %d faults", fc, st.TotalFaults)
		results = append(results, SweepResult{FrameCount: fc, Faults: st.TotalFaults})
	}
	return results
}

// BeladyAnomalies returns every pair of adjacent results (ordered by the
// caller) where the larger frame count produced strictly more faults.
func BeladyAnomalies(results []SweepResult) []Anomaly {
	var anomalies []Anomaly
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		if cur.FrameCount > prev.FrameCount && cur.Faults > prev.Faults {
			anomalies = append(anomalies, Anomaly{Fewer: prev, More: cur})
		}
	}
	return anomalies
}
