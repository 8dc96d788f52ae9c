package turinglib

import "errors"

var (
	// ErrTapeLimit reports that growing the tape would exceed the configured
	// cell ceiling. It is fatal: the run aborts immediately rather than
	// truncating or wrapping.
	ErrTapeLimit = errors.New("tape length exceeds safety limit")

	// ErrNoStartState reports a Machine constructed without a start state.
	ErrNoStartState = errors.New("no start state provided")
)
