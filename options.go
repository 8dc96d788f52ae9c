package turinglib

import "log/slog"

// Option applies configuration to a Machine via the functional options
// pattern.
type Option func(*Machine)

// WithTapeLimit overrides the tape growth ceiling (DefaultTapeLimit cells).
// Values < 1 are ignored.
func WithTapeLimit(cells int) Option {
	return func(m *Machine) {
		if cells > 0 {
			m.tapeLimit = cells
		}
	}
}

// WithImplicitBlankHalt sets the policy for reading a blank with no blank
// rule defined. It defaults to true. Both settings currently halt the
// machine identically; see State.Update.
func WithImplicitBlankHalt(on bool) Option {
	return func(m *Machine) {
		m.implicitBlankHalt = on
	}
}

// WithLogger enables per-step trace diagnostics on the given logger. Each
// step emits one line describing the resulting state, head, and symbol under
// the head. A nil logger (the default) disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}
