package codegen

import "fmt"

// emitPrototypes emits `<Class>_prototype` for every class: its class
// tag, its total word size, its dispatch-table label, and one zero
// word per attribute in ancestor-first order (spec.md §4.5 emission
// pass 4). Object.copy clones these images at runtime.
func emitPrototypes(e *Emitter, l *Layout) {
	for _, name := range l.H.Order {
		e.Label(prototypeLabel(name))
		e.Word(fmt.Sprintf("%d", l.ClassTag[name]))
		e.Word(fmt.Sprintf("%d", l.ObjectWords(name)))
		e.Word(disptableLabel(name))
		for range l.Attrs[name] {
			e.Word("0")
		}
		e.Blank()
	}
}
