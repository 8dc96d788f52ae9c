// Package turinglib implements a deterministic single-tape Turing Machine
// as the classical 7-tuple: states, tape alphabet, blank symbol, input
// alphabet, transition function, initial state, halting states.
//
// The engine is intentionally minimal. A Machine owns a materialized window
// of the conceptually infinite tape, a head coordinate, and a current State.
// Each Step reads the symbol under the head, resolves it in the current
// state's transition table, writes the resulting symbol, moves the head, and
// switches state. Halting is represented by absence: a state with no rule for
// the symbol under the head halts the machine, and a halted machine has a nil
// current state. There is no explicit HALT state type; a State with an empty
// transition table serves that role.
//
// The tape grows on demand in both directions. Cells outside the materialized
// window are implicitly blank. Growth is bounded by a configurable cell
// ceiling (DefaultTapeLimit) so a non-halting machine that runs off the tape
// fails with ErrTapeLimit instead of exhausting memory.
//
// Construction is free-form: build States and wire transitions by hand, use
// the fluent Builder, or load a YAML/JSON definition via the def subpackage.
package turinglib
