package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_BeladySequence_ReportsAnomaly(t *testing.T) {
	// GIVEN the classic Belady sequence swept over 3, 4 and 5 frames
	results := Sweep([]int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}, []int{3, 4, 5})

	// THEN faults are 9, 10 and 5 (five frames hold every distinct page)
	require.Len(t, results, 3)
	assert.Equal(t, SweepResult{FrameCount: 3, Faults: 9}, results[0])
	assert.Equal(t, SweepResult{FrameCount: 4, Faults: 10}, results[1])
	assert.Equal(t, SweepResult{FrameCount: 5, Faults: 5}, results[2])

	// THEN exactly the 3→4 step is anomalous
	anomalies := BeladyAnomalies(results)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 3, anomalies[0].Fewer.FrameCount)
	assert.Equal(t, 4, anomalies[0].More.FrameCount)
}

func TestBeladyAnomalies_MonotoneResults_None(t *testing.T) {
	results := Sweep([]int{1, 2, 3, 1, 2, 3, 4, 1}, []int{3, 4, 5})
	assert.Empty(t, BeladyAnomalies(results))
}

func TestBeladyAnomalies_DescendingFrameOrder_Ignored(t *testing.T) {
	results := []SweepResult{{FrameCount: 4, Faults: 10}, {FrameCount: 3, Faults: 12}}
	assert.Empty(t, BeladyAnomalies(results))
}
