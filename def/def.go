// Package def loads Turing machine definitions from YAML or JSON files and
// builds runnable turinglib machines from them. It is a convenience layer
// for CLI wrappers and examples; the engine itself has no file format.
//
// A definition names its states and rules with strings. Symbols are written
// as "_" for blank, a bare integer for integer symbols, and anything else
// for text symbols. Movements are "R", "L", "N", or a signed integer for a
// constant shift (e.g. "+2", "-3").
package def

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/0xhunterkiller/turinglib"
)

// Rule is one transition of a state: on reading Read, go to Next, write
// Write, and move the head per Move.
type Rule struct {
	Read  string `json:"read" yaml:"read"`
	Next  string `json:"next" yaml:"next"`
	Write string `json:"write" yaml:"write"`
	Move  string `json:"move" yaml:"move"`
}

// Definition is the file representation of a machine: a state table, the
// start state, and the initial tape with the head's start coordinate.
// Rules for the same (state, read) pair follow last-write-wins, matching
// State.AddTransition.
type Definition struct {
	Name   string            `json:"name" yaml:"name"`
	Start  string            `json:"start" yaml:"start"`
	States map[string][]Rule `json:"states" yaml:"states"`
	Tape   []string          `json:"tape,omitempty" yaml:"tape,omitempty"`
	Head   int               `json:"head,omitempty" yaml:"head,omitempty"`
}

// Load decodes a definition from r. format is "yaml" or "json".
func Load(r io.Reader, format string) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var d Definition
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile decodes a definition from path, picking the format from the file
// extension (.yaml/.yml/.json).
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	d, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate checks the definition:
//   - non-empty Start, present in States
//   - every rule's Next names a defined state
//   - every rule's Move parses
func (d *Definition) Validate() error {
	if d.Start == "" {
		return errors.New("start state is required")
	}
	if len(d.States) == 0 {
		return errors.New("states map is required and cannot be empty")
	}
	if _, ok := d.States[d.Start]; !ok {
		return fmt.Errorf("start state %q not found in states", d.Start)
	}
	for name, rules := range d.States {
		for i, r := range rules {
			if _, ok := d.States[r.Next]; !ok {
				return fmt.Errorf("invalid rule target %q (state %q, rule %d)", r.Next, name, i)
			}
			if _, err := ParseMovement(r.Move); err != nil {
				return fmt.Errorf("state %q, rule %d: %w", name, i, err)
			}
		}
	}
	return nil
}

// Machine builds a runnable machine from the definition.
func (d *Definition) Machine(opts ...turinglib.Option) (*turinglib.Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := turinglib.NewBuilder(d.Start)
	for name, rules := range d.States {
		sb := b.State(name)
		for _, r := range rules {
			move, err := ParseMovement(r.Move)
			if err != nil {
				return nil, err
			}
			sb.On(ParseSymbol(r.Read), r.Next, ParseSymbol(r.Write), move)
		}
	}

	tape := make([]turinglib.Symbol, len(d.Tape))
	for i, cell := range d.Tape {
		tape[i] = ParseSymbol(cell)
	}
	return b.Machine(tape, d.Head, opts...)
}

// ParseSymbol maps a definition cell to a symbol: "_" is blank, a bare
// integer is an integer symbol, anything else is a text symbol.
func ParseSymbol(s string) turinglib.Symbol {
	if s == "_" || s == "" {
		return turinglib.Blank
	}
	if n, err := strconv.Atoi(s); err == nil {
		return turinglib.SymInt(n)
	}
	return turinglib.Sym(s)
}

// ParseMovement maps a definition movement to a Movement: "R", "L", "N", or
// a signed integer shift.
func ParseMovement(s string) (turinglib.Movement, error) {
	switch s {
	case "R":
		return turinglib.Right, nil
	case "L":
		return turinglib.Left, nil
	case "N":
		return turinglib.None, nil
	}
	if delta, err := strconv.Atoi(s); err == nil {
		return turinglib.Shift(s, delta), nil
	}
	return nil, fmt.Errorf("invalid movement %q (want R, L, N, or a signed integer)", s)
}
