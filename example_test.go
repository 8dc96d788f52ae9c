package turinglib_test

import (
	"fmt"

	"github.com/0xhunterkiller/turinglib"
)

// ExampleMachine inverts every bit on the tape with a single self-looping
// state, halting on the first implicit blank past the input.
func ExampleMachine() {
	zero, one := turinglib.SymInt(0), turinglib.SymInt(1)

	q0 := turinglib.NewState("q0", nil)
	q0.AddTransition(zero, q0, one, turinglib.Right)
	q0.AddTransition(one, q0, zero, turinglib.Right)

	tape := []turinglib.Symbol{zero, one, one, zero}
	m, err := turinglib.NewMachine(q0, tape, 0)
	if err != nil {
		panic(err)
	}

	steps, err := m.Run(1000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("steps=%d halted=%v head=%d\n", steps, m.Halted(), m.Head())
	for _, cell := range m.Tape() {
		fmt.Print(cell, " ")
	}
	fmt.Println()
	// Output:
	// steps=4 halted=true head=4
	// 1 0 0 1 _
}
