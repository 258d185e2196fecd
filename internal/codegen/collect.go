package codegen

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/token"
)

// internConstants walks every class's attribute initializers and
// method bodies, interning every IntConst/StringConst literal (and the
// implicit Int/String defaults of uninitialized attributes) into
// tables before emitConstants runs (spec.md §4.5 emission pass 2 must
// see every constant the program actually uses). Generate calls this
// before emitDataHeader/emitConstants, since those two passes run
// before any method or initializer body is otherwise visited.
func internConstants(h *semantic.Hierarchy, tables *token.Tables) {
	for _, name := range h.Order {
		for _, feat := range h.Classes[name].Features {
			switch f := feat.(type) {
			case *ast.Attribute:
				if _, isNoExpr := f.Init.(*ast.NoExpr); isNoExpr {
					internDefault(f.Type, tables)
					continue
				}
				internExpr(f.Init, tables)
			case *ast.Method:
				internExpr(f.Body, tables)
			}
		}
	}
}

// internDefault interns the constant backing an uninitialized
// attribute's default value, mirroring emitDefault's own type switch
// (init.go) so the two stay in lockstep.
func internDefault(declaredType string, tables *token.Tables) {
	switch declaredType {
	case "Int":
		tables.AddInt("0")
	case "String":
		tables.AddString("")
	}
}

func internExpr(e ast.Expression, tables *token.Tables) {
	if e == nil {
		return
	}
	e.Accept(&collectVisitor{tables: tables})
}

// collectVisitor implements ast.Visitor purely to recurse into every
// expression's children and intern the int/string literals it finds;
// it performs no code generation.
type collectVisitor struct {
	tables *token.Tables
}

func (v *collectVisitor) child(e ast.Expression) { internExpr(e, v.tables) }

func (v *collectVisitor) VisitStringConst(n *ast.StringConst) { v.tables.AddString(n.Value) }
func (v *collectVisitor) VisitIntConst(n *ast.IntConst)       { v.tables.AddInt(n.Value) }
func (v *collectVisitor) VisitBoolConst(n *ast.BoolConst)     {}
func (v *collectVisitor) VisitNew(n *ast.New)                 {}
func (v *collectVisitor) VisitIsVoid(n *ast.IsVoid)           { v.child(n.Expr) }
func (v *collectVisitor) VisitNot(n *ast.Not)                 { v.child(n.Expr) }
func (v *collectVisitor) VisitComplement(n *ast.Complement)   { v.child(n.Expr) }
func (v *collectVisitor) VisitPlus(n *ast.Plus)               { v.child(n.Left); v.child(n.Right) }
func (v *collectVisitor) VisitSub(n *ast.Sub)                 { v.child(n.Left); v.child(n.Right) }
func (v *collectVisitor) VisitMul(n *ast.Mul)                 { v.child(n.Left); v.child(n.Right) }
func (v *collectVisitor) VisitDiv(n *ast.Div)                 { v.child(n.Left); v.child(n.Right) }
func (v *collectVisitor) VisitLessThan(n *ast.LessThan)       { v.child(n.Left); v.child(n.Right) }
func (v *collectVisitor) VisitLessThanEqualTo(n *ast.LessThanEqualTo) {
	v.child(n.Left)
	v.child(n.Right)
}
func (v *collectVisitor) VisitEqualTo(n *ast.EqualTo) { v.child(n.Left); v.child(n.Right) }

func (v *collectVisitor) VisitIf(n *ast.If) {
	v.child(n.Pred)
	v.child(n.Then)
	v.child(n.Else)
}

func (v *collectVisitor) VisitWhile(n *ast.While) {
	v.child(n.Pred)
	v.child(n.Body)
}

func (v *collectVisitor) VisitBlock(n *ast.Block) {
	for _, e := range n.Exprs {
		v.child(e)
	}
}

func (v *collectVisitor) VisitLet(n *ast.Let) {
	if _, isNoExpr := n.Init.(*ast.NoExpr); isNoExpr {
		internDefault(n.Type, v.tables)
	} else {
		v.child(n.Init)
	}
	v.child(n.Body)
}

func (v *collectVisitor) VisitCase(n *ast.Case) {
	v.child(n.Expr)
	for _, b := range n.Branches {
		v.child(b.Body)
	}
}

func (v *collectVisitor) VisitAssign(n *ast.Assign) { v.child(n.Expr) }

func (v *collectVisitor) VisitObject(n *ast.Object) {}

func (v *collectVisitor) VisitStaticDispatch(n *ast.StaticDispatch) {
	v.child(n.Expr)
	for _, a := range n.Args {
		v.child(a)
	}
}

func (v *collectVisitor) VisitDynamicDispatch(n *ast.DynamicDispatch) {
	v.child(n.Expr)
	for _, a := range n.Args {
		v.child(a)
	}
}

func (v *collectVisitor) VisitNoExpr(n *ast.NoExpr) {}
