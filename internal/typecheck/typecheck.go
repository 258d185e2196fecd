package typecheck

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/semantic"
)

// Result bundles the outcome of type checking: the resolved method
// tables the checker used for dispatch and argument checking, and the
// diagnostics accumulated. The code generator takes the method tables
// as a parameter but computes dispatch offsets from its own Layout.
type Result struct {
	Methods MethodTables
	Errors  *diag.Bag
}

// Run builds the method-signature table and type-checks every
// expression in program, per spec.md §4.4.
func Run(program *ast.Program, h *semantic.Hierarchy) *Result {
	errs := &diag.Bag{}
	methods := BuildMethodTables(h, errs)
	checker := NewChecker(h, methods, errs)
	checker.Run(program)
	return &Result{Methods: methods, Errors: errs}
}
