package turinglib

// Transition is one rule of the transition function: on reading a symbol in
// some state, enter Next, write Write at the current cell, then apply Move
// to the head.
type Transition struct {
	Next  *State
	Write Symbol
	Move  Movement
}

// State is a named node of the machine's state graph holding a transition
// table keyed by the symbol under the head. Tables may be incomplete: a
// symbol with no rule halts the machine, it is not an error. Halting states
// are simply states with empty tables.
//
// States are shared mutable objects. Tables can be extended or overwritten
// with AddTransition after construction, which allows mutually recursive
// machines to be wired up incrementally. Mutating a table while a Machine is
// concurrently stepping through it is a race; the engine assumes
// single-writer discipline and takes no locks.
type State struct {
	notation    string
	transitions map[Symbol]Transition
}

// NewState creates a state with the given transition table. The table may be
// nil or empty and filled in later via AddTransition.
func NewState(notation string, transitions map[Symbol]Transition) *State {
	s := &State{notation: notation, transitions: make(map[Symbol]Transition, len(transitions))}
	for read, t := range transitions {
		s.transitions[read] = t
	}
	return s
}

// Notation returns the state's label.
func (s *State) Notation() string { return s.notation }

func (s *State) String() string { return s.notation }

// AddTransition inserts the rule for read, silently replacing any previous
// rule for the same symbol (last write wins).
func (s *State) AddTransition(read Symbol, next *State, write Symbol, move Movement) {
	s.transitions[read] = Transition{Next: next, Write: write, Move: move}
}

// Resolve looks up the rule for read. The second return is false when no
// rule is defined, which the engine interprets as a halt condition.
func (s *State) Resolve(read Symbol) (Transition, bool) {
	t, ok := s.transitions[read]
	return t, ok
}

// Update resolves one step of the transition function for the symbol under
// the head. On a match it returns the next state, the symbol to write, and
// the moved head coordinate. On a miss it returns (nil, read, head): halt,
// tape and head unchanged. Update is total over any Symbol, including ones
// never added to the table.
//
// implicitBlankHalt selects the policy for an unmatched blank. Both settings
// currently converge on the same halt tuple; the flag is threaded through so
// a future policy (e.g. writing a terminal marker) has a seam.
func (s *State) Update(read Symbol, head int, implicitBlankHalt bool) (*State, Symbol, int) {
	if implicitBlankHalt && read.IsBlank() {
		if _, ok := s.transitions[Blank]; !ok {
			return nil, read, head
		}
	}
	t, ok := s.transitions[read]
	if !ok {
		return nil, read, head
	}
	return t.Next, t.Write, t.Move.Apply(head)
}
