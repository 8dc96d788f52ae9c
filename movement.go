package turinglib

// Movement maps a head coordinate to a new head coordinate after a
// transition. Implementations must be pure and total over all integers.
//
// The built-ins Right, Left and None cover the classical model; Shift and
// Move create user-defined movements (e.g. jump-by-2) that unify with the
// built-ins at the call site.
type Movement interface {
	// Apply returns the new head coordinate.
	Apply(head int) int
	// String returns the movement's notation (e.g. "R").
	String() string
}

// shift is the closed built-in movement family: a constant head delta.
type shift struct {
	notation string
	delta    int
}

func (s shift) Apply(head int) int { return head + s.delta }
func (s shift) String() string     { return s.notation }

// Built-in head movements.
var (
	// Right moves the head one cell to the right.
	Right Movement = shift{"R", 1}
	// Left moves the head one cell to the left.
	Left Movement = shift{"L", -1}
	// None keeps the head in place.
	None Movement = shift{"N", 0}
)

// Shift returns a movement that moves the head by a constant delta.
func Shift(notation string, delta int) Movement {
	return shift{notation: notation, delta: delta}
}

// moveFunc adapts an arbitrary pure function to a Movement.
type moveFunc struct {
	notation string
	fn       func(int) int
}

func (m moveFunc) Apply(head int) int { return m.fn(head) }
func (m moveFunc) String() string     { return m.notation }

// Move returns a movement backed by fn. fn must be pure and defined for
// every integer; the engine calls it with any coordinate the head reaches.
func Move(notation string, fn func(int) int) Movement {
	return moveFunc{notation: notation, fn: fn}
}
