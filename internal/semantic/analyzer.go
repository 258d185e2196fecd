package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/token"
)

// Analyze runs the full semantic-analysis phase: install built-ins,
// build the parent map, and check for inheritance cycles. It returns
// the Context other phases read (the hierarchy and the interner
// tables); the caller checks ctx.Errors before proceeding to type
// checking (spec.md §2, §7).
func Analyze(program *ast.Program, tables *token.Tables) *Context {
	ctx := NewContext(tables)
	mgr := NewPassManager(BuiltinsPass{}, HierarchyPass{}, CyclePass{})
	mgr.RunAll(program, ctx)
	return ctx
}
