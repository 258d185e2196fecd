package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
)

// CyclePass depth-first walks the parent map from each class, marking
// visited and processed sets; a node visited but not yet processed
// when re-encountered is a cycle (spec.md §4.3 "Cycle check"). Object
// and IO terminate the walk.
type CyclePass struct{}

func (CyclePass) Name() string { return "check-cycles" }

func (CyclePass) Run(program *ast.Program, ctx *Context) {
	h := ctx.Hierarchy
	visited := make(map[string]bool)
	processed := make(map[string]bool)
	reported := make(map[string]bool)

	var walk func(name string, onStack map[string]bool)
	walk = func(name string, onStack map[string]bool) {
		if processed[name] {
			return
		}
		if onStack[name] {
			if !reported[name] {
				c := h.Classes[name]
				ctx.Errors.Add(c.Filename(), c.Line(), diag.InheritanceCycle,
					"inheritance cycle involving class %s", name)
				reported[name] = true
			}
			return
		}
		if name == "Object" || name == "IO" {
			processed[name] = true
			return
		}
		onStack[name] = true
		visited[name] = true
		if parent, ok := h.Parent[name]; ok && parent != ast.NoClass {
			if _, known := h.Classes[parent]; known {
				walk(parent, onStack)
			}
		}
		delete(onStack, name)
		processed[name] = true
	}

	for _, name := range h.Order {
		if !processed[name] {
			walk(name, make(map[string]bool))
		}
	}
}
