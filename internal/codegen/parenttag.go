package codegen

import "fmt"

// emitParentTag emits a tag-indexed table mapping a class's tag to its
// parent's tag (Object maps to itself, a self-loop the case-dispatch
// walk recognizes as "stop"). `case` has no static receiver type
// precise enough to pick a branch at compile time, so the walk climbs
// the actual object's ancestor chain by tag at run time instead.
func emitParentTag(e *Emitter, l *Layout) {
	byTag := make(map[int]string, len(l.ClassTag))
	maxTag := 0
	for name, tag := range l.ClassTag {
		byTag[tag] = name
		if tag > maxTag {
			maxTag = tag
		}
	}

	e.Label("class_parentTag")
	for tag := 0; tag <= maxTag; tag++ {
		name, ok := byTag[tag]
		if !ok {
			e.Word("0")
			continue
		}
		if name == "Object" {
			e.Word(fmt.Sprintf("%d", tag))
			continue
		}
		parent := l.H.Parent[name]
		e.Word(fmt.Sprintf("%d", l.ClassTag[parent]))
	}
	e.Blank()
}
