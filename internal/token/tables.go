package token

import "golang.org/x/text/unicode/norm"

// Tables bundles the three interner tables a Cool program needs: one
// for identifiers, one for integer literals (kept as their decimal
// text so arbitrary-width literals round-trip unchanged), and one for
// string literals.
//
// String literals are NFC-normalized before interning so that two
// source strings which are byte-distinct but canonically equivalent
// collapse onto a single str_const<i>, matching the teacher's practice
// of normalizing user text before any comparison or storage.
type Tables struct {
	Idents  *Table
	Ints    *Table
	Strings *Table
}

// NewTables constructs three empty interner tables.
func NewTables() *Tables {
	return &Tables{
		Idents:  NewTable(),
		Ints:    NewTable(),
		Strings: NewTable(),
	}
}

// AddIdent interns an identifier's text.
func (t *Tables) AddIdent(text string) Symbol { return t.Idents.Add(text) }

// AddInt interns an integer literal's decimal text.
func (t *Tables) AddInt(text string) Symbol { return t.Ints.Add(text) }

// AddString interns a string literal's decoded bytes after NFC
// normalization.
func (t *Tables) AddString(decoded string) Symbol {
	return t.Strings.Add(norm.NFC.String(decoded))
}
