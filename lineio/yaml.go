package lineio

import (
	"io"

	"github.com/osuushi/arrangement/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A named line set, optionally with the face areas it is expected to produce.
type Scenario struct {
	Name   string
	Lines  []advanced.Line
	Expect []float64
}

type scenarioDocument struct {
	Name   string    `yaml:"name"`
	Lines  [][]int64 `yaml:"lines"`
	Expect []float64 `yaml:"expect"`
}

// Read a single scenario:
//
//	name: triangle
//	lines:
//	  - [0, 0, 4, 0]
//	  - [0, 0, 0, 4]
//	  - [4, 0, 0, 4]
//	expect: [8]
func ReadYAML(r io.Reader) (*Scenario, error) {
	var doc scenarioDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	return doc.scenario()
}

// Read a list of scenarios from one YAML sequence.
func ReadScenarios(r io.Reader) ([]*Scenario, error) {
	var docs []scenarioDocument
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	scenarios := make([]*Scenario, 0, len(docs))
	for _, doc := range docs {
		scenario, err := doc.scenario()
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

func (doc *scenarioDocument) scenario() (*Scenario, error) {
	scenario := &Scenario{Name: doc.Name, Expect: doc.Expect}
	for i, coords := range doc.Lines {
		if len(coords) != 4 {
			return nil, errors.Errorf("scenario %q: line %d has %d coordinates, want 4", doc.Name, i, len(coords))
		}
		line, err := newLine(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q: line %d", doc.Name, i)
		}
		scenario.Lines = append(scenario.Lines, line)
	}
	return scenario, nil
}
