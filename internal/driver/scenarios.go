package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightmoves/knight"
)

// ErrScenarioFile is returned when a scenario file cannot be read or decoded.
var ErrScenarioFile = errors.New("driver: invalid scenario file")

// scenarioFile is the on-disk YAML layout:
//
//	scenarios:
//	  - name: Large Distance Test
//	    start: "0,0"
//	    target: "7,7"
//	    want_distance: 6
type scenarioFile struct {
	Scenarios []scenarioEntry `yaml:"scenarios"`
}

type scenarioEntry struct {
	Name         string `yaml:"name"`
	Start        string `yaml:"start"`
	Target       string `yaml:"target"`
	WantDistance *int   `yaml:"want_distance,omitempty"`
}

// LoadScenarios reads scenarios from a YAML file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenarioFile, err)
	}

	return ParseScenarios(data)
}

// ParseScenarios decodes YAML scenario data. Unknown fields are rejected.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenarioFile, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrScenarioFile)
	}

	out := make([]Scenario, 0, len(f.Scenarios))
	for i, e := range f.Scenarios {
		start, err := knight.ParsePosition(e.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %d start: %w", ErrScenarioFile, i, err)
		}
		target, err := knight.ParsePosition(e.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %d target: %w", ErrScenarioFile, i, err)
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		out = append(out, Scenario{Name: name, Start: start, Target: target, WantDistance: e.WantDistance})
	}

	return out, nil
}
