package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/0xhunterkiller/turinglib"
	"github.com/0xhunterkiller/turinglib/def"
)

var (
	maxSteps  int
	tapeLimit int
	trace     bool
	traceFile string
)

var runCmd = &cobra.Command{
	Use:   "run <definition-file>",
	Short: "Load a machine definition and run it until it halts",
	Args:  cobra.ExactArgs(1),
	RunE:  runMachine,
}

func init() {
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "step ceiling for non-halting machines")
	runCmd.Flags().IntVar(&tapeLimit, "tape-limit", turinglib.DefaultTapeLimit, "materialized tape cell ceiling")
	runCmd.Flags().BoolVar(&trace, "trace", false, "log each step to stderr")
	runCmd.Flags().StringVar(&traceFile, "trace-file", "", "also write the step trace as JSON lines to this file")
	rootCmd.AddCommand(runCmd)
}

// traceLogger composes the step trace destinations: text on stderr when
// --trace is set, JSON lines in --trace-file when given. Returns nil when
// tracing is fully disabled.
func traceLogger() (*slog.Logger, func() error, error) {
	var handlers []slog.Handler
	closer := func() error { return nil }

	if trace {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, nil))
	}
	if traceFile != "" {
		f, err := os.Create(traceFile)
		if err != nil {
			return nil, nil, fmt.Errorf("create trace file: %w", err)
		}
		closer = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, nil))
	}
	if len(handlers) == 0 {
		return nil, closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

func runMachine(cmd *cobra.Command, args []string) error {
	d, err := def.LoadFile(args[0])
	if err != nil {
		return err
	}

	logger, closeTrace, err := traceLogger()
	if err != nil {
		return err
	}
	defer closeTrace()

	m, err := d.Machine(
		turinglib.WithTapeLimit(tapeLimit),
		turinglib.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	steps, err := m.Run(maxSteps)
	if err != nil {
		return err
	}

	if m.Halted() {
		fmt.Printf("Machine halted after %d steps.\n", steps)
	} else {
		fmt.Printf("Machine stopped at the %d step ceiling without halting.\n", maxSteps)
	}
	fmt.Printf("Final tape: %s\n", renderTape(m.Tape()))
	fmt.Printf("Head: %d (tape begins at %d)\n", m.Head(), m.TapeBegin())
	return nil
}

func renderTape(tape []turinglib.Symbol) string {
	cells := make([]string, len(tape))
	for i, s := range tape {
		cells[i] = s.String()
	}
	return strings.Join(cells, " ")
}
