package turinglib

import "strconv"

// symbolKind discriminates the notation domain of a Symbol.
// The zero value is the blank symbol.
type symbolKind uint8

const (
	kindBlank symbolKind = iota
	kindText
	kindNumber
)

// Symbol is a single immutable tape-cell value, an element of the tape
// alphabet. Symbols are comparable value types: two Symbols are equal iff
// their notations are equal, so they can be used directly as map keys in
// transition tables. The zero value is the blank symbol.
//
// Symbols carry either a text or an integer notation; the two domains are
// distinct, so Sym("0") and SymInt(0) are different symbols. There is no
// mutation API: fields are unexported and all methods use value receivers.
type Symbol struct {
	kind   symbolKind
	text   string
	number int
}

// Blank is the canonical blank symbol, the content of every tape cell that
// has never been written. It prints as "_". Independently constructed blank
// symbols (the Symbol zero value) compare equal to it.
var Blank Symbol

// Sym returns the symbol with the given text notation.
// Note that Sym("_") is a regular text symbol, not Blank.
func Sym(text string) Symbol {
	return Symbol{kind: kindText, text: text}
}

// SymInt returns the symbol with the given integer notation.
func SymInt(n int) Symbol {
	return Symbol{kind: kindNumber, number: n}
}

// IsBlank reports whether s is the blank symbol.
func (s Symbol) IsBlank() bool {
	return s.kind == kindBlank
}

// Notation returns the underlying notation value: a string for text symbols,
// an int for integer symbols, and nil for the blank symbol.
func (s Symbol) Notation() any {
	switch s.kind {
	case kindText:
		return s.text
	case kindNumber:
		return s.number
	}
	return nil
}

// String renders the symbol for diagnostics: "_" for blank, otherwise the
// notation itself.
func (s Symbol) String() string {
	switch s.kind {
	case kindText:
		return s.text
	case kindNumber:
		return strconv.Itoa(s.number)
	}
	return "_"
}
