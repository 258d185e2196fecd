// Package codegen implements the MIPS code generator (spec.md §4.5):
// object layout, activation records, the constant pool, dispatch
// tables, prototype objects, class initializers, and method bodies.
//
// Grounded on the teacher's internal/bytecode Compiler/Chunk split —
// a visitor walks the AST and calls into an emission target — but
// generalized from an in-process bytecode Chunk to the textual MIPS
// "Emitter facade" spec.md §9 calls for: word/label/instr/push/pop.
package codegen

import (
	"fmt"
	"strings"
)

// WordSize is the MIPS word size in bytes (spec.md §4.5).
const WordSize = 4

// Emitter is the small facade isolating textual MIPS formatting from
// the rest of the generator, so golden-file testing only needs to
// diff text (spec.md §9 "Emitter facade").
type Emitter struct {
	buf strings.Builder
}

// NewEmitter returns an empty Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Raw writes a line verbatim (used for section directives).
func (e *Emitter) Raw(line string) {
	e.buf.WriteString(line)
	e.buf.WriteByte('\n')
}

// Label emits a label definition.
func (e *Emitter) Label(name string) {
	e.buf.WriteString(name)
	e.buf.WriteString(":\n")
}

// Word emits a `.word` directive with the given operand text (a
// decimal literal or a label reference).
func (e *Emitter) Word(operand string) {
	fmt.Fprintf(&e.buf, "\t.word %s\n", operand)
}

// Asciiz emits zero-terminated bytes for a string constant's payload.
func (e *Emitter) Asciiz(text string) {
	fmt.Fprintf(&e.buf, "\t.asciiz %q\n", text)
}

// Align emits an `.align n` directive.
func (e *Emitter) Align(n int) {
	fmt.Fprintf(&e.buf, "\t.align %d\n", n)
}

// Instr emits one MIPS instruction with comma-separated operands.
func (e *Emitter) Instr(op string, operands ...string) {
	if len(operands) == 0 {
		fmt.Fprintf(&e.buf, "\t%s\n", op)
		return
	}
	fmt.Fprintf(&e.buf, "\t%s %s\n", op, strings.Join(operands, ", "))
}

// Comment emits a `#`-prefixed comment line.
func (e *Emitter) Comment(format string, args ...any) {
	fmt.Fprintf(&e.buf, "\t# %s\n", fmt.Sprintf(format, args...))
}

// Blank emits an empty line, used to separate emitted routines for
// readability.
func (e *Emitter) Blank() { e.buf.WriteByte('\n') }

// Push grows the stack by n words (a negative offset to $sp, per
// MIPS convention).
func (e *Emitter) Push(n int) {
	e.Instr("addiu", "$sp", "$sp", fmt.Sprintf("%d", -WordSize*n))
}

// Pop shrinks the stack by n words.
func (e *Emitter) Pop(n int) {
	e.Instr("addiu", "$sp", "$sp", fmt.Sprintf("%d", WordSize*n))
}

// String returns the accumulated assembly text.
func (e *Emitter) String() string { return e.buf.String() }
