package semantic

import "github.com/coolc/coolc/internal/ast"

// Pass represents a single semantic analysis pass. Passes read and
// write the shared Context, collecting diagnostics there rather than
// returning them, so later passes can still run after an earlier one
// finds errors (the driver checks Context.Errors.Empty() only after
// every pass has run).
type Pass interface {
	Name() string
	Run(program *ast.Program, ctx *Context)
}

// PassManager runs a fixed sequence of passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager returns a manager running passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll runs every pass in order. A pass that leaves critical errors
// in ctx (duplicate/missing classes, cycles) still lets later passes
// in this manager run, since each pass here is self-contained; the
// driver is responsible for halting the *pipeline* before type
// checking when ctx.Errors is non-empty (spec.md §7).
func (pm *PassManager) RunAll(program *ast.Program, ctx *Context) {
	for _, pass := range pm.passes {
		pass.Run(program, ctx)
	}
}
