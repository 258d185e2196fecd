// Package semantic implements the semantic analyzer (spec.md §4.3):
// installing built-in classes, building the parent map, and
// validating the class hierarchy (no redefinition, no illegal
// inheritance, no cycles, Main present).
//
// The pass architecture is grounded on the teacher's
// internal/semantic.Pass/PassManager/PassContext design, reduced from
// DWScript's many passes to the three Cool needs: installing the
// built-ins, building the hierarchy, and checking it for cycles.
package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/token"
)

// Hierarchy is the inheritance map built once during semantic
// analysis and read by both the type checker and the code generator.
type Hierarchy struct {
	// Classes maps a class name to its definition, including the
	// installed built-ins.
	Classes map[string]*ast.Class
	// Parent maps a class name to its parent's name. Object maps to
	// ast.NoClass.
	Parent map[string]string
	// Order lists class names in declaration order (built-ins first),
	// used by the code generator for stable class-tag assignment.
	Order []string
}

// NewHierarchy returns an empty Hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{Classes: make(map[string]*ast.Class), Parent: make(map[string]string)}
}

// Ancestors returns the chain from name up to and including Object,
// or nil if name is unknown.
func (h *Hierarchy) Ancestors(name string) []string {
	var out []string
	cur := name
	for {
		if _, ok := h.Classes[cur]; !ok {
			return nil
		}
		out = append(out, cur)
		if cur == "Object" {
			return out
		}
		cur = h.Parent[cur]
	}
}

// IsSubclass reports whether child is child==parent or a descendant
// of parent along the Parent chain.
func (h *Hierarchy) IsSubclass(child, parent string) bool {
	if child == parent {
		return true
	}
	cur := child
	for {
		p, ok := h.Parent[cur]
		if !ok {
			return false
		}
		if p == parent {
			return true
		}
		if p == ast.NoClass {
			return false
		}
		cur = p
	}
}

// Context is the shared state threaded through every semantic pass:
// the interner tables, the error accumulator, and the hierarchy being
// built. It is the "CompilerContext" spec.md §9 calls for.
type Context struct {
	Tables    *token.Tables
	Errors    *diag.Bag
	Hierarchy *Hierarchy
}

// NewContext returns an empty Context.
func NewContext(tables *token.Tables) *Context {
	return &Context{Tables: tables, Errors: &diag.Bag{}, Hierarchy: NewHierarchy()}
}
