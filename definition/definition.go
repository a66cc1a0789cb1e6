// Package definition loads machine definitions from YAML or JSON documents
// and compiles them into transition systems, acceptors and transducers over
// string alphabets.
package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoInputs is returned when an acceptor is built from a definition without inputs.
	ErrNoInputs = errors.New("definition declares no inputs")

	// ErrNoOutputs is returned when a transducer is built from a definition without outputs.
	ErrNoOutputs = errors.New("definition declares no outputs")
)

// Output kinds accepted in a function entry.
const (
	KindMoore = "moore"
	KindMealy = "mealy"
)

// Definition is the document form of a machine.
type Definition struct {
	Name    string `json:"name" mapstructure:"name"`
	Initial string `json:"initial" mapstructure:"initial"`
	// States lists the state alphabet in order.
	States []string `json:"states" mapstructure:"states"`
	// Exclude removes entries from States without renumbering the document.
	Exclude     []string     `json:"exclude" mapstructure:"exclude"`
	Transitions []Transition `json:"transitions" mapstructure:"transitions"`
	Invalid     []Invalid    `json:"invalid" mapstructure:"invalid"`

	Inputs     []string    `json:"inputs" mapstructure:"inputs"`
	Outputs    []string    `json:"outputs" mapstructure:"outputs"`
	Functions  []Function  `json:"functions" mapstructure:"functions"`
	Rejections []Rejection `json:"rejections" mapstructure:"rejections"`
}

// Transition declares one valid edge (From, To) or a chain of them.
type Transition struct {
	From       string   `json:"from" mapstructure:"from"`
	To         string   `json:"to" mapstructure:"to"`
	Chain      []string `json:"chain" mapstructure:"chain"`
	Undirected bool     `json:"undirected" mapstructure:"undirected"`
}

// Invalid declares a refused edge with an optional reason.
type Invalid struct {
	From   string `json:"from" mapstructure:"from"`
	To     string `json:"to" mapstructure:"to"`
	Reason string `json:"reason" mapstructure:"reason"`
}

// Function declares a transition function part and, optionally, the output
// emitted when it fires. Output may reference {state} and, for the mealy
// kind, {input}.
type Function struct {
	Input  string `json:"input" mapstructure:"input"`
	State  string `json:"state" mapstructure:"state"`
	Next   string `json:"next" mapstructure:"next"`
	Output string `json:"output" mapstructure:"output"`
	Kind   string `json:"kind" mapstructure:"kind"`
}

// Rejection explains why an input is refused in a state.
type Rejection struct {
	Input  string `json:"input" mapstructure:"input"`
	State  string `json:"state" mapstructure:"state"`
	Reason string `json:"reason" mapstructure:"reason"`
}

// Load reads a definition file. Files ending in .json are parsed as JSON;
// everything else as YAML.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a definition document. Unknown keys are errors.
func Parse(data []byte, format string) (*Definition, error) {
	var raw map[string]any
	if strings.EqualFold(format, "json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json definition: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml definition: %w", err)
		}
	}
	if raw == nil {
		return nil, errors.New("definition document is empty")
	}

	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}
