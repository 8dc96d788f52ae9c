package turinglib

import "testing"

func TestSymbol_Equality(t *testing.T) {
	if Sym("a") != Sym("a") {
		t.Error("equal text symbols must compare equal")
	}
	if SymInt(3) != SymInt(3) {
		t.Error("equal integer symbols must compare equal")
	}
	if Sym("0") == SymInt(0) {
		t.Error(`Sym("0") and SymInt(0) are distinct symbols`)
	}
	if Sym("a") == Sym("b") {
		t.Error("distinct notations must not compare equal")
	}
}

func TestSymbol_BlankZeroValue(t *testing.T) {
	var zero Symbol
	if zero != Blank {
		t.Error("zero-value Symbol must equal Blank")
	}
	if !Blank.IsBlank() {
		t.Error("Blank.IsBlank() = false, want true")
	}
	if Sym("_").IsBlank() {
		t.Error(`Sym("_") is a text symbol, not blank`)
	}
	if Blank.Notation() != nil {
		t.Errorf("Blank.Notation() = %v, want nil", Blank.Notation())
	}
}

func TestSymbol_MapKey(t *testing.T) {
	table := map[Symbol]string{
		SymInt(0): "zero",
		Sym("x"):  "ex",
		Blank:     "blank",
	}

	// Independently constructed symbols must collide as keys.
	if got, want := table[SymInt(0)], "zero"; got != want {
		t.Errorf("table[SymInt(0)] = %q, want %q", got, want)
	}
	if got, want := table[Sym("x")], "ex"; got != want {
		t.Errorf(`table[Sym("x")] = %q, want %q`, got, want)
	}
	var zero Symbol
	if got, want := table[zero], "blank"; got != want {
		t.Errorf("table[zero-value] = %q, want %q", got, want)
	}
}

func TestSymbol_String(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{Blank, "_"},
		{SymInt(42), "42"},
		{SymInt(-1), "-1"},
		{Sym("abc"), "abc"},
	}
	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSymbol_Notation(t *testing.T) {
	if got := Sym("a").Notation(); got != "a" {
		t.Errorf(`Sym("a").Notation() = %v, want "a"`, got)
	}
	if got := SymInt(7).Notation(); got != 7 {
		t.Errorf("SymInt(7).Notation() = %v, want 7", got)
	}
}
