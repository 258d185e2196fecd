package codegen

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/symtab"
)

// emitInit emits `<C>_init` (spec.md §4.5 "Object.copy / class
// initializer"): the routine that runs a class's attribute
// initializers, chaining up through its parent first.
func (g *Generator) emitInit(class *ast.Class) {
	name := class.Name
	g.e.Label(initLabel(name))
	g.e.Comment("activation record: saved fp, saved self, ra")
	g.e.Push(frameWords(0))
	g.e.Instr("sw", regFP, fpRel(fpSlotOffset(), regSP))
	g.e.Instr("sw", regSelf, fpRel(selfSlotOffset(), regSP))
	g.e.Instr("sw", regRA, fpRel(raSlotOffset(0), regSP))
	g.e.Instr("move", regFP, regSP)
	g.e.Instr("move", regSelf, regAcc)

	if name != "Object" {
		g.e.Instr("jal", initLabel(class.Parent))
	}

	g.curClass = name
	g.vars = symtab.New[string, int]()
	g.localN = 0
	for _, feat := range class.Features {
		attr, ok := feat.(*ast.Attribute)
		if !ok {
			continue
		}
		if _, isNoExpr := attr.Init.(*ast.NoExpr); isNoExpr {
			g.emitDefault(attr.Type)
		} else {
			g.emitExpr(attr.Init)
		}
		if attr.Type != primSlotType {
			idx := g.layout.AttrIndex(name, attr.Name)
			g.e.Instr("sw", regAcc, fpRel(attrOffset(idx), regSelf))
		}
	}

	g.e.Instr("move", regAcc, regSelf)
	g.e.Instr("lw", regSelf, offset(selfSlotOffset()))
	g.e.Instr("lw", regRA, offset(raSlotOffset(0)))
	g.e.Instr("lw", regFP, offset(fpSlotOffset()))
	g.e.Pop(frameWords(0))
	g.e.Instr("jr", regRA)
	g.e.Blank()
}

// emitDefault loads the Cool default value for a declared type with no
// initializer: 0 for Int, false for Bool, "" for String, void (null)
// for every other (object or SELF_TYPE) type. prim_slot attributes are
// never stored, so their default is irrelevant and skipped entirely.
func (g *Generator) emitDefault(declaredType string) {
	switch declaredType {
	case "Int":
		g.tables.AddInt("0")
		g.e.Instr("la", regAcc, intConstLabel(g.tables.Ints.IndexOf("0")))
	case "Bool":
		g.e.Instr("la", regAcc, boolConstLabel(false))
	case "String":
		g.tables.AddString("")
		g.e.Instr("la", regAcc, strConstLabel(g.tables.Strings.IndexOf("")))
	case primSlotType:
		// no-op: storage is runtime-controlled.
	default:
		g.e.Instr("li", regAcc, "0")
	}
}
