package codegen

import "github.com/coolc/coolc/internal/ast"

// emitDispatchTables emits `<Class>_disptable` for every class except
// the NoClass sentinel, one label per defining class the first time
// a method name appears on the chain from Object down to the class
// (spec.md §4.5 emission pass 3).
func emitDispatchTables(e *Emitter, l *Layout) {
	for _, name := range l.H.Order {
		if name == ast.NoClass {
			continue
		}
		e.Label(disptableLabel(name))
		for _, slot := range l.DispatchOrder[name] {
			e.Word(methodLabel(slot.DefiningClass, slot.Method))
		}
		e.Blank()
	}
}
