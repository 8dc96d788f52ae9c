package turinglib

import "testing"

func TestState_ResolveMissing(t *testing.T) {
	q0 := NewState("q0", nil)
	if _, ok := q0.Resolve(SymInt(0)); ok {
		t.Error("Resolve on an empty table must report no rule")
	}
}

func TestState_AddTransitionLastWriteWins(t *testing.T) {
	q0 := NewState("q0", nil)
	q1 := NewState("q1", nil)
	q2 := NewState("q2", nil)

	q0.AddTransition(SymInt(0), q1, SymInt(1), Right)
	q0.AddTransition(SymInt(0), q2, SymInt(0), Left)

	tr, ok := q0.Resolve(SymInt(0))
	if !ok {
		t.Fatal("Resolve after AddTransition reported no rule")
	}
	if tr.Next != q2 {
		t.Errorf("Next = %v, want q2 (last write wins)", tr.Next)
	}
	if tr.Write != SymInt(0) {
		t.Errorf("Write = %v, want 0", tr.Write)
	}
}

func TestState_UpdateTotality(t *testing.T) {
	// Update must return the halt tuple for any symbol never added,
	// leaving symbol and head untouched.
	q0 := NewState("q0", map[Symbol]Transition{
		SymInt(0): {Next: nil, Write: SymInt(0), Move: Right},
	})

	for _, read := range []Symbol{SymInt(99), Sym("never-seen"), Blank} {
		next, write, head := q0.Update(read, 7, true)
		if next != nil {
			t.Errorf("Update(%v) next = %v, want nil", read, next)
		}
		if write != read {
			t.Errorf("Update(%v) write = %v, want the read symbol unchanged", read, write)
		}
		if head != 7 {
			t.Errorf("Update(%v) head = %d, want 7 unchanged", read, head)
		}
	}
}

func TestState_UpdateAppliesMovement(t *testing.T) {
	halt := NewState("HALT", nil)
	q0 := NewState("q0", nil)
	q0.AddTransition(SymInt(1), halt, SymInt(0), Left)

	next, write, head := q0.Update(SymInt(1), 3, true)
	if next != halt {
		t.Errorf("next = %v, want HALT", next)
	}
	if write != SymInt(0) {
		t.Errorf("write = %v, want 0", write)
	}
	if head != 2 {
		t.Errorf("head = %d, want 2", head)
	}
}

func TestState_UpdateBlankPolicyConverges(t *testing.T) {
	// With no blank rule, both implicitBlankHalt settings produce the same
	// halt tuple.
	q0 := NewState("q0", nil)
	for _, implicit := range []bool{true, false} {
		next, write, head := q0.Update(Blank, 5, implicit)
		if next != nil || write != Blank || head != 5 {
			t.Errorf("Update(Blank, 5, %v) = (%v, %v, %d), want (nil, _, 5)",
				implicit, next, write, head)
		}
	}
}

func TestState_UpdateBlankWithRule(t *testing.T) {
	q0 := NewState("q0", nil)
	q0.AddTransition(Blank, q0, SymInt(0), Right)

	next, write, head := q0.Update(Blank, 0, true)
	if next != q0 {
		t.Errorf("next = %v, want q0 (blank rule defined)", next)
	}
	if write != SymInt(0) || head != 1 {
		t.Errorf("(write, head) = (%v, %d), want (0, 1)", write, head)
	}
}
