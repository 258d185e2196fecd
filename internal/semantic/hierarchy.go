package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
)

var basicClassNames = map[string]bool{
	"Object": true, "IO": true, "Int": true, "Bool": true, "String": true,
}

var forbiddenParents = map[string]bool{
	"Int": true, "Bool": true, "String": true, "SELF_TYPE": true,
}

// HierarchyPass builds the parent map and validates each class
// definition in isolation: no redefinition of a basic class, no
// inheritance from a forbidden class, no duplicate class name, every
// parent resolves, and Main exists (spec.md §4.3 "Build parent map
// and validate").
type HierarchyPass struct{}

func (HierarchyPass) Name() string { return "build-hierarchy" }

func (HierarchyPass) Run(program *ast.Program, ctx *Context) {
	h := ctx.Hierarchy
	seen := make(map[string]bool)

	for _, c := range program.Classes {
		if c.Parent == ast.NoClass {
			// Object, installed by BuiltinsPass.
			h.Classes[c.Name] = c
			h.Parent[c.Name] = ast.NoClass
			h.Order = append(h.Order, c.Name)
			seen[c.Name] = true
			continue
		}

		if basicClassNames[c.Name] && c.Filename() != builtinFile {
			ctx.Errors.Add(c.Filename(), c.Line(), diag.BasicRedefined,
				"redefinition of basic class %s", c.Name)
			continue
		}
		if seen[c.Name] {
			ctx.Errors.Add(c.Filename(), c.Line(), diag.DuplicateClass,
				"class %s redefined", c.Name)
			continue
		}
		if forbiddenParents[c.Parent] {
			ctx.Errors.Add(c.Filename(), c.Line(), diag.IllegalInheritance,
				"class %s cannot inherit from %s", c.Name, c.Parent)
			continue
		}

		seen[c.Name] = true
		h.Classes[c.Name] = c
		h.Parent[c.Name] = c.Parent
		h.Order = append(h.Order, c.Name)
	}

	// Resolve parents: every non-Object class's parent must exist.
	for _, c := range program.Classes {
		if c.Parent == ast.NoClass {
			continue
		}
		if !seen[c.Name] {
			continue // already reported above
		}
		if _, ok := h.Classes[c.Parent]; !ok {
			ctx.Errors.Add(c.Filename(), c.Line(), diag.UnknownParent,
				"class %s inherits from undefined class %s", c.Name, c.Parent)
		}
	}

	if _, ok := h.Classes["Main"]; !ok {
		ctx.Errors.Add("<program>", 0, diag.MainMissing, "class Main is not defined")
	}
}
