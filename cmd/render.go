package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pagesim/pagesim/sim"
	"github.com/pagesim/pagesim/sim/trace"
)

// Report is the printable view of a trace: the revealed steps, their running
// fault/hit counts, and the summary of the whole run.
type Report struct {
	Config   trace.TraceConfig   `yaml:"config" json:"config"`
	Revealed int                 `yaml:"revealed" json:"revealed"`
	Total    int                 `yaml:"total_steps" json:"total_steps"`
	Faults   int                 `yaml:"faults_so_far" json:"faults_so_far"`
	Hits     int                 `yaml:"hits_so_far" json:"hits_so_far"`
	Steps    []trace.StepRecord  `yaml:"steps" json:"steps"`
	Summary  *trace.TraceSummary `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// NewReport builds a Report over the revealed prefix of st. The run summary is
// only attached once every step has been revealed.
func NewReport(st *trace.SimulationTrace, revealed []trace.StepRecord) *Report {
	r := &Report{
		Config:   st.Config,
		Revealed: len(revealed),
		Total:    st.Len(),
		Faults:   trace.CumulativeFaults(revealed),
		Hits:     trace.CumulativeHits(revealed),
		Steps:    revealed,
	}
	if r.Revealed == r.Total {
		r.Summary = trace.Summarize(st)
	}
	return r
}

func renderTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tPAGE\tFRAMES\tRESULT\tEVICTED\tFIFO RANK")
	for _, s := range r.Steps {
		result, evicted := "HIT", "-"
		if s.Fault {
			result = "FAULT"
		}
		if s.HasReplacement() {
			evicted = fmt.Sprint(s.Replaced)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n", s.Step+1, s.Page, formatFrames(s.Frames), result, evicted, formatRanks(s))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nShowing %d of %d steps: %d faults, %d hits\n", r.Revealed, r.Total, r.Faults, r.Hits)
	if last, ok := trace.Last(r.Steps); ok {
		fmt.Fprintf(w, "Memory after step %d: %s\n", last.Step+1, formatFrames(last.Frames))
	}
	if r.Summary != nil {
		fmt.Fprintf(w, "Total page faults: %d (fault rate %.1f%%, %d evictions, %d distinct pages)\n",
			r.Summary.Faults, 100*r.Summary.FaultRate, r.Summary.Evictions, r.Summary.DistinctPages)
	}
	return nil
}

func renderYAML(w io.Writer, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func renderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// sweepReport is the printable view of a frame-count sweep.
type sweepReport struct {
	Results   []sim.SweepResult `yaml:"results" json:"results"`
	Anomalies []sim.Anomaly     `yaml:"anomalies" json:"anomalies"`
}

func writeSweep(w io.Writer, results []sim.SweepResult, anomalies []sim.Anomaly, format string) error {
	rep := sweepReport{Results: results, Anomalies: anomalies}
	switch format {
	case "", "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FRAMES\tFAULTS")
		for _, res := range results {
			fmt.Fprintf(tw, "%d\t%d\n", res.FrameCount, res.Faults)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(anomalies) == 0 {
			fmt.Fprintln(w, "\nNo Belady anomaly.")
		}
		for _, a := range anomalies {
			fmt.Fprintf(w, "\nBelady anomaly: %d frames -> %d faults, %d frames -> %d faults\n",
				a.Fewer.FrameCount, a.Fewer.Faults, a.More.FrameCount, a.More.Faults)
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// formatFrames renders frame slots as "[5 6 -]".
func formatFrames(frames []int) string {
	parts := make([]string, len(frames))
	for i, p := range frames {
		if p == trace.NoPage {
			parts[i] = "-"
		} else {
			parts[i] = fmt.Sprint(p)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// formatRanks renders resident pages with their FIFO rank, oldest first: "9:1 3:2 5:3".
func formatRanks(s trace.StepRecord) string {
	parts := make([]string, len(s.LoadOrder))
	for i, p := range s.LoadOrder {
		parts[i] = fmt.Sprintf("%d:%d", p, i+1)
	}
	return strings.Join(parts, " ")
}
