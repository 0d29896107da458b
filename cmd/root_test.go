package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim"
)

// executeCommand resets the package-level flag targets and runs the root
// command with args, returning what the command wrote.
func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	logLevel = "error"
	rawPages, rawFrames = "", "3"
	revealSteps = -1
	outputFormat = "table"
	scenarioPath, scenarioName = "", ""
	sweepFrames = []int{sim.MinFrames, 4, sim.MaxFrames}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRunCommand_PagesFlag_PrintsTrace(t *testing.T) {
	out := executeCommand(t, "run", "--log", "error", "--pages", "1,9,3,5,6,3,2,6", "--frames", "3")

	assert.Contains(t, out, "Total page faults: 6")
	assert.Contains(t, out, "Memory after step 8: [5 6 2]")
}

func TestRunCommand_StepFlag_RevealsPrefix(t *testing.T) {
	out := executeCommand(t, "run", "--log", "error", "--pages", "3,2,1,0", "--frames", "3", "--step", "2")

	assert.Contains(t, out, "Showing 2 of 4 steps: 2 faults, 0 hits")
}

func TestRunCommand_Scenario_OverridesPages(t *testing.T) {
	path := filepath.Join("..", "examples", "scenarios.yaml")
	out := executeCommand(t, "run", "--log", "error", "--scenario", path, "--name", "warm-cache")

	assert.Contains(t, out, "Showing 8 of 8 steps: 3 faults, 5 hits")
}

func TestSweepCommand_DefaultFrames(t *testing.T) {
	out := executeCommand(t, "sweep", "--log", "error", "--pages", "1,2,3,1,2,3,4,1")

	assert.Contains(t, out, "FRAMES")
	assert.Contains(t, out, "No Belady anomaly.")
}

func TestScenariosCommand_ListsNames(t *testing.T) {
	out := executeCommand(t, "scenarios", "--log", "error", "--file", filepath.Join("..", "examples", "scenarios.yaml"))

	for _, name := range []string{"textbook", "belady-short", "warm-cache", "single"} {
		assert.Contains(t, out, name)
	}
}

func TestResolveInput_UnknownScenario(t *testing.T) {
	scenarioPath = filepath.Join("..", "examples", "scenarios.yaml")
	scenarioName = "nope"
	t.Cleanup(func() { scenarioPath, scenarioName = "", "" })

	_, err := resolveInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "nope" not found`)
}

func TestResolveInput_InvalidRawInput(t *testing.T) {
	scenarioPath = ""
	rawPages, rawFrames = "1,2", "9"

	_, err := resolveInput()
	assert.ErrorIs(t, err, sim.ErrFrameCountOutOfRange)
}
