package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagesim/pagesim/sim"
)

// Scenario is a named, reusable simulation input.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Pages       []int  `yaml:"pages"`
	Frames      int    `yaml:"frames"`
}

// Input converts the scenario into engine input. Only valid after LoadScenarioFile.
func (s Scenario) Input() sim.Input {
	pages := make([]int, len(s.Pages))
	copy(pages, s.Pages)
	return sim.Input{Pages: pages, FrameCount: s.Frames}
}

// ScenarioFile represents the full scenario YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarioFile reads, strictly parses and validates a scenario file.
// Unknown fields, duplicate or empty names, and scenarios that break the
// input rules are all errors.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sf ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	seen := make(map[string]bool, len(sf.Scenarios))
	for i, sc := range sf.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i+1)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("scenario %q: duplicate name", sc.Name)
		}
		seen[sc.Name] = true
		if err := sim.ValidateValues(sc.Pages, sc.Frames); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return &sf, nil
}

// Find returns the scenario with the given name.
func (sf *ScenarioFile) Find(name string) (Scenario, bool) {
	for _, sc := range sf.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}
