package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesim/pagesim/sim"
	"github.com/pagesim/pagesim/sim/trace"
)

var (
	logLevel     string // Log verbosity level
	rawPages     string // Comma-separated page references, validated before use
	rawFrames    string // Frame count, validated before use
	revealSteps  int    // Number of steps to reveal (-1 = all)
	outputFormat string // table, yaml or json
	scenarioPath string // Optional scenario YAML file
	scenarioName string // Scenario to run from scenarioPath
	sweepFrames  []int  // Frame counts for the sweep command
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Step-by-step simulator for FIFO page replacement",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd validates the inputs, runs the FIFO engine once and prints the revealed steps
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a FIFO simulation and print its trace",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInput()
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		logrus.Infof("Starting simulation: pages=%v, frames=%d", in.Pages, in.FrameCount)

		st := sim.Simulate(in.Pages, in.FrameCount)
		if err := writeReport(cmd.OutOrStdout(), st, revealSteps, outputFormat); err != nil {
			logrus.Fatalf("Rendering failed: %v", err)
		}

		logrus.Info("Simulation complete.")
	},
}

// sweepCmd runs one reference string across several frame counts
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare fault totals across frame counts and flag Belady's anomaly",
	Run: func(cmd *cobra.Command, args []string) {
		if len(sweepFrames) == 0 {
			logrus.Fatalf("No frame counts given")
		}
		var pages []int
		for _, fc := range sweepFrames {
			in, err := sim.Validate(rawPages, strconv.Itoa(fc))
			if err != nil {
				logrus.Fatalf("Invalid input for %d frames: %v", fc, err)
			}
			pages = in.Pages
		}

		results := sim.Sweep(pages, sweepFrames)
		if err := writeSweep(cmd.OutOrStdout(), results, sim.BeladyAnomalies(results), outputFormat); err != nil {
			logrus.Fatalf("Rendering failed: %v", err)
		}
	},
}

// scenariosCmd lists the scenarios defined in a scenario file
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios in a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		sf, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		out := cmd.OutOrStdout()
		for _, sc := range sf.Scenarios {
			fmt.Fprintf(out, "%-24s frames=%d pages=%v\n", sc.Name, sc.Frames, sc.Pages)
			if sc.Description != "" {
				fmt.Fprintf(out, "  %s\n", sc.Description)
			}
		}
	},
}

// resolveInput returns the validated input from either the scenario file or the raw flags.
func resolveInput() (sim.Input, error) {
	if scenarioPath == "" {
		return sim.Validate(rawPages, rawFrames)
	}
	sf, err := LoadScenarioFile(scenarioPath)
	if err != nil {
		return sim.Input{}, err
	}
	sc, ok := sf.Find(scenarioName)
	if !ok {
		return sim.Input{}, fmt.Errorf("scenario %q not found in %s", scenarioName, scenarioPath)
	}
	return sc.Input(), nil
}

// writeReport renders the first `reveal` steps of st (all when reveal < 0).
func writeReport(w io.Writer, st *trace.SimulationTrace, reveal int, format string) error {
	if reveal < 0 {
		reveal = st.Len()
	}
	report := NewReport(st, trace.Prefix(st, reveal))
	switch format {
	case "", "table":
		return renderTable(w, report)
	case "yaml":
		return renderYAML(w, report)
	case "json":
		return renderJSON(w, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "Output format (table, yaml, json)")

	runCmd.Flags().StringVar(&rawPages, "pages", "", "Comma-separated page references, 1-10 non-negative integers")
	runCmd.Flags().StringVar(&rawFrames, "frames", "3", "Number of frames (3-5)")
	runCmd.Flags().IntVar(&revealSteps, "step", -1, "Number of steps to reveal (-1 = all)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (overrides --pages/--frames)")
	runCmd.Flags().StringVar(&scenarioName, "name", "", "Scenario name to run from --scenario")

	sweepCmd.Flags().StringVar(&rawPages, "pages", "", "Comma-separated page references, 1-10 non-negative integers")
	sweepCmd.Flags().IntSliceVar(&sweepFrames, "frames-list", []int{sim.MinFrames, 4, sim.MaxFrames}, "Comma-separated frame counts to compare")

	scenariosCmd.Flags().StringVar(&scenarioPath, "file", "", "Scenario YAML file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(scenariosCmd)
}
