// Package token implements the Cool compiler's interned-symbol tables.
//
// Three process-lifetime tables intern text into stable, comparable
// Symbol values: identifiers, integer literals, and string literals.
// Interning keeps equal source text mapped to a single representative
// value so later phases (the type checker, the code generator) can
// compare symbols by value instead of re-comparing strings, and so the
// code generator can name constants by insertion order.
package token

// Symbol is a value-typed wrapper over interned text. Equality and
// ordering are lexicographic on the underlying text; symbols produced
// by different Tables are not implicitly comparable for any meaning
// beyond their text — it is the producing Table that gives a Symbol
// its semantics (identifier vs. integer vs. string).
type Symbol struct {
	text string
}

// String returns the symbol's underlying text.
func (s Symbol) String() string { return s.text }

// Less reports whether s sorts before other, lexicographically on text.
func (s Symbol) Less(other Symbol) bool { return s.text < other.text }

// entry records a single interned symbol's insertion order.
type entry struct {
	sym   Symbol
	index int
}

// Table interns text to a Symbol and records insertion order. The zero
// value is not usable; construct with NewTable.
type Table struct {
	byText map[string]*entry
	order  []*entry
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{byText: make(map[string]*entry)}
}

// Add interns text, returning the existing Symbol if text was seen
// before (idempotent) or creating a new one and assigning it the next
// insertion index.
func (t *Table) Add(text string) Symbol {
	if e, ok := t.byText[text]; ok {
		return e.sym
	}
	e := &entry{sym: Symbol{text: text}, index: len(t.order) + 1}
	t.byText[text] = e
	t.order = append(t.order, e)
	return e.sym
}

// IndexOf returns the 1-based insertion index of text, or 0 if text was
// never interned. The code generator uses this to name constants
// (e.g. str_const<i>) with stable, insertion-order numbering.
func (t *Table) IndexOf(text string) int {
	if e, ok := t.byText[text]; ok {
		return e.index
	}
	return 0
}

// Contains reports whether text has been interned.
func (t *Table) Contains(text string) bool {
	_, ok := t.byText[text]
	return ok
}

// Elements returns interned symbols in the order they were first added.
func (t *Table) Elements() []Symbol {
	out := make([]Symbol, len(t.order))
	for i, e := range t.order {
		out[i] = e.sym
	}
	return out
}

// Len returns the number of distinct interned entries.
func (t *Table) Len() int { return len(t.order) }
