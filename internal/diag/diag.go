// Package diag implements the compiler's diagnostic/error channel:
// errors are appended to a buffer rather than returned eagerly, so a
// phase can keep checking after a local failure and report everything
// it finds in one run (spec.md §7, §9 "From optional-return errors to
// a result/diagnostic channel").
package diag

import (
	"fmt"
	"strings"
)

// Kind names a diagnostic's originating check, for tests and for
// grouping summary counts. The taxonomy matches spec.md §7.
type Kind string

const (
	ParseError          Kind = "ParseError"
	BasicRedefined      Kind = "BasicRedefined"
	IllegalInheritance   Kind = "IllegalInheritance"
	DuplicateClass       Kind = "DuplicateClass"
	UnknownParent        Kind = "UnknownParent"
	MainMissing          Kind = "MainMissing"
	InheritanceCycle     Kind = "InheritanceCycle"
	UnboundIdentifier    Kind = "UnboundIdentifier"
	SubtypeViolation     Kind = "SubtypeViolation"
	PredicateNotBool     Kind = "PredicateNotBool"
	ArithOperandNotInt   Kind = "ArithOperandNotInt"
	CompareOperandNotInt Kind = "CompareOperandNotInt"
	EqualityTypeMismatch Kind = "EqualityTypeMismatch"
	NotOperandNotBool    Kind = "NotOperandNotBool"
	DispatchArgMismatch  Kind = "DispatchArgMismatch"
	OverrideMismatch     Kind = "OverrideMismatch"
	AttributeRedefined   Kind = "AttributeRedefined"
	IsVoidResult         Kind = "IsVoidResult"
)

// Diagnostic is a single compiler error: a source location, the check
// that raised it, and a terse English message.
type Diagnostic struct {
	File    string
	Line    int
	Kind    Kind
	Message string
}

// Error implements the error interface using the canonical one-line
// format required by spec.md §6: "<filename>:<line>: error: <message>".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d: error: %s", d.File, d.Line, d.Message)
}

// Bag accumulates diagnostics across a phase (or across the whole
// pipeline). It is the "error accumulator" the CompilerContext of
// spec.md §9 owns.
type Bag struct {
	items []Diagnostic
}

// Add appends a new diagnostic.
func (b *Bag) Add(file string, line int, kind Kind, format string, args ...any) {
	b.items = append(b.items, Diagnostic{
		File:    file,
		Line:    line,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// Count returns the number of accumulated diagnostics.
func (b *Bag) Count() int { return len(b.items) }

// Empty reports whether no diagnostics were accumulated.
func (b *Bag) Empty() bool { return len(b.items) == 0 }

// All returns the accumulated diagnostics in report order.
func (b *Bag) All() []Diagnostic { return b.items }

// String renders one diagnostic per line, in the canonical format.
func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.items {
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}
