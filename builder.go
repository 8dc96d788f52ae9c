package turinglib

import "fmt"

// Builder provides a fluent API for constructing machines using string-based
// state names instead of manual State wiring. States are created on first
// mention, so forward references resolve naturally:
//
//	b := NewBuilder("q0")
//	b.State("q0").
//		On(SymInt(0), "q0", SymInt(1), Right).
//		On(SymInt(1), "q0", SymInt(0), Right)
//	m, err := b.Machine([]Symbol{SymInt(0), SymInt(1)}, 0)
type Builder struct {
	start  string
	states map[string]*State
}

// StateBuilder configures a single named state.
type StateBuilder struct {
	b     *Builder
	state *State
}

// NewBuilder creates a builder whose machines begin in the named start state.
func NewBuilder(start string) *Builder {
	b := &Builder{start: start, states: make(map[string]*State)}
	b.lookup(start)
	return b
}

func (b *Builder) lookup(name string) *State {
	s, ok := b.states[name]
	if !ok {
		s = NewState(name, nil)
		b.states[name] = s
	}
	return s
}

// State creates or retrieves a state by name.
func (b *Builder) State(name string) *StateBuilder {
	return &StateBuilder{b: b, state: b.lookup(name)}
}

// On adds a transition rule: reading read, go to the state named next, write
// write, and apply move. Re-declaring a rule for the same read symbol
// replaces it (last write wins). Returns the StateBuilder for chaining.
func (sb *StateBuilder) On(read Symbol, next string, write Symbol, move Movement) *StateBuilder {
	sb.state.AddTransition(read, sb.b.lookup(next), write, move)
	return sb
}

// Build returns the start state with all declared transitions wired.
func (b *Builder) Build() *State {
	return b.states[b.start]
}

// States returns all states declared so far, keyed by name.
func (b *Builder) States() map[string]*State {
	out := make(map[string]*State, len(b.states))
	for name, s := range b.states {
		out[name] = s
	}
	return out
}

// Machine constructs a Machine starting in the builder's start state.
func (b *Builder) Machine(tape []Symbol, startPoint int, opts ...Option) (*Machine, error) {
	start, ok := b.states[b.start]
	if !ok {
		return nil, fmt.Errorf("start state %q not declared", b.start)
	}
	return NewMachine(start, tape, startPoint, opts...)
}
