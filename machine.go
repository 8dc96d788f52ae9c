package turinglib

import (
	"fmt"
	"log/slog"
)

// DefaultTapeLimit is the default ceiling on materialized tape cells.
const DefaultTapeLimit = 1_000_000

// Machine is the execution engine: it owns the materialized tape window, the
// head coordinate, and the current state, and drives the step/run loop.
//
// The tape is a window onto a conceptually infinite all-blank tape. tapeBegin
// is the logical coordinate of tape[0], so the cell under the head is
// tape[head-tapeBegin]; the window grows automatically whenever the head
// leaves it, both before the read and again after the move. While the
// machine is running, 0 <= head-tapeBegin < len(tape) holds at construction
// and between steps.
//
// A Machine is single-threaded: Step and Run are sequential procedures with
// no locking, and an instance must not be shared across goroutines.
type Machine struct {
	current   *State // nil once halted
	head      int
	tapeBegin int
	tape      []Symbol

	tapeLimit         int
	implicitBlankHalt bool
	logger            *slog.Logger
	steps             int
}

// NewMachine creates a machine in state start with the given tape window.
// The supplied tape's first element sits at coordinate startPoint, where the
// head also starts; startPoint may be any integer. The tape may be empty or
// nil, in which case a single blank cell is materialized under the head so
// the machine never holds an empty window.
func NewMachine(start *State, tape []Symbol, startPoint int, opts ...Option) (*Machine, error) {
	if start == nil {
		return nil, ErrNoStartState
	}
	window := append([]Symbol(nil), tape...)
	if len(window) == 0 {
		window = make([]Symbol, 1)
	}
	m := &Machine{
		current:           start,
		head:              startPoint,
		tapeBegin:         startPoint,
		tape:              window,
		tapeLimit:         DefaultTapeLimit,
		implicitBlankHalt: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Current returns the current state, or nil if the machine has halted.
func (m *Machine) Current() *State { return m.current }

// Halted reports whether the machine has reached its terminal state.
func (m *Machine) Halted() bool { return m.current == nil }

// Head returns the head's logical tape coordinate.
func (m *Machine) Head() int { return m.head }

// TapeBegin returns the logical coordinate of the first materialized cell.
func (m *Machine) TapeBegin() int { return m.tapeBegin }

// Tape returns a copy of the materialized tape window. Cells outside it are
// implicitly blank.
func (m *Machine) Tape() []Symbol {
	return append([]Symbol(nil), m.tape...)
}

// Steps returns the number of transitions applied so far. A Step call that
// only discovers a halt condition is not counted.
func (m *Machine) Steps() int { return m.steps }

// String summarizes the current configuration for diagnostics.
func (m *Machine) String() string {
	if m.current == nil {
		return fmt.Sprintf("state=HALTED head=%d", m.head)
	}
	return fmt.Sprintf("state=%s head=%d symbol=%s", m.current, m.head, m.symbolAt(m.head))
}

// symbolAt reads the cell at a logical coordinate without growing the tape.
func (m *Machine) symbolAt(coord int) Symbol {
	idx := coord - m.tapeBegin
	if idx < 0 || idx >= len(m.tape) {
		return Blank
	}
	return m.tape[idx]
}

// grow materializes cells until the head coordinate falls inside the window,
// returning the head's buffer index. Step calls it before the read, so the
// read/write index is always valid at the moment of access, and again after
// the move, so the head never sits outside the window between steps.
// Exceeding the tape limit is fatal.
func (m *Machine) grow() (int, error) {
	idx := m.head - m.tapeBegin
	switch {
	case idx < 0:
		if len(m.tape)-idx > m.tapeLimit {
			return 0, fmt.Errorf("growing tape to %d cells: %w", len(m.tape)-idx, ErrTapeLimit)
		}
		grown := make([]Symbol, len(m.tape)-idx)
		copy(grown[-idx:], m.tape)
		m.tape = grown
		m.tapeBegin = m.head
		idx = 0
	case idx >= len(m.tape):
		if idx+1 > m.tapeLimit {
			return 0, fmt.Errorf("growing tape to %d cells: %w", idx+1, ErrTapeLimit)
		}
		m.tape = append(m.tape, make([]Symbol, idx+1-len(m.tape))...)
	}
	return idx, nil
}

// Step executes one transition. It returns true if a transition was applied
// and false once the machine halts: either no rule matched the symbol under
// the head, or the machine had already halted (a halted machine is a stable
// terminal; further Step calls are no-ops). The only error is ErrTapeLimit
// when tape growth would exceed the cell ceiling.
func (m *Machine) Step() (bool, error) {
	if m.current == nil {
		return false, nil
	}

	idx, err := m.grow()
	if err != nil {
		return false, err
	}
	read := m.tape[idx]

	next, write, newHead := m.current.Update(read, m.head, m.implicitBlankHalt)

	// On halt write == read, so this is a no-op write; a single code path
	// keeps the write-then-move ordering uniform.
	m.tape[idx] = write
	m.head = newHead

	if next == nil {
		if m.logger != nil {
			m.logger.Info("machine halted: no defined transition",
				"state", m.current.Notation(), "head", m.head, "symbol", read.String(), "steps", m.steps)
		}
		m.current = nil
		return false, nil
	}
	m.current = next

	// Cover the post-move head so the access invariant holds between steps;
	// a no-op when the movement stayed inside the window.
	if _, err := m.grow(); err != nil {
		return false, err
	}
	m.steps++

	if m.logger != nil {
		m.logger.Info("step",
			"state", m.current.Notation(), "head", m.head, "symbol", m.symbolAt(m.head).String(), "steps", m.steps)
	}
	return true, nil
}

// Run repeatedly calls Step until the machine halts or maxSteps transitions
// have been applied, whichever comes first. It returns the number of
// transitions applied. Run is the only safety net against non-halting
// machines besides the tape ceiling: it bounds work, it does not detect
// cycles. Use Halted to distinguish a halt from a step cap.
func (m *Machine) Run(maxSteps int) (int, error) {
	taken := 0
	for taken < maxSteps {
		ok, err := m.Step()
		if err != nil {
			return taken, err
		}
		if !ok {
			break
		}
		taken++
	}
	return taken, nil
}
