package codegen

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/symtab"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/typecheck"
)

// primSlotType is the spec's prim_slot pseudo-type, reused from the
// semantic package's built-in class definitions so the generator and
// the installed Int/Bool/String attributes agree on the sentinel.
const primSlotType = semantic.PrimSlot

var basicClasses = map[string]bool{"Object": true, "IO": true, "Int": true, "Bool": true, "String": true}

// Generator walks a type-checked program and emits MIPS assembly text
// (spec.md §4.5). One Generator is used for an entire program; Emit
// methods below are grouped across emitter.go (text facade), ar.go
// (activation-record arithmetic), constants.go/dispatch.go/prototypes.go
// (the four data-section emission passes), init.go (class initializers),
// and methods.go (method-body expression emission).
type Generator struct {
	h       *semantic.Hierarchy
	layout  *Layout
	methods typecheck.MethodTables
	tables  *token.Tables
	e       *Emitter

	// vars maps a bound name (formal or let-local) to its byte offset
	// from $fp, scoped like the type checker's variable environment
	// (spec.md §4.4), reused here for the code generator's AR layout
	// instead of a declared type.
	vars *symtab.Table[string, int]

	curClass string
	localN   int // words currently pushed below fp by open let/case scopes
	labelN   int // monotonically increasing if/while label counter (spec.md §4.5)
}

// Generate emits a complete assembly program for prog (spec.md §4.5's
// five emission passes): the constant pool and object layout, then a
// class initializer and method bodies for every class.
func Generate(prog *ast.Program, h *semantic.Hierarchy, methods typecheck.MethodTables, tables *token.Tables) string {
	for _, name := range h.Order {
		tables.AddString(name)
	}
	internConstants(h, tables)

	l := BuildLayout(h)
	g := &Generator{h: h, layout: l, methods: methods, tables: tables, e: NewEmitter()}

	emitDataHeader(g.e)
	emitConstants(g.e, tables)
	emitDispatchTables(g.e, l)
	emitPrototypes(g.e, l)
	emitClassObjTab(g.e, l)
	emitParentTag(g.e, l)

	g.e.Raw(".text")
	g.e.Blank()

	for _, name := range h.Order {
		g.emitInit(h.Classes[name])
	}
	for _, name := range h.Order {
		if basicClasses[name] {
			continue
		}
		for _, feat := range h.Classes[name].Features {
			if m, ok := feat.(*ast.Method); ok {
				g.emitMethod(name, m)
			}
		}
	}

	return g.e.String()
}

func (g *Generator) nextLabel() int {
	g.labelN++
	return g.labelN
}
