// Package printer implements the Cool pretty-printer (spec.md §4.6):
// an indented, depth-first dump of the AST used by tests and by the
// CLI's debug verbs. Read-only: unlike the type checker, it never
// writes to an expression's Type slot.
package printer

import (
	"fmt"
	"strings"

	"github.com/coolc/coolc/internal/ast"
)

// Print renders prog as an indented tree.
func Print(prog *ast.Program) string {
	var sb strings.Builder
	for _, c := range prog.Classes {
		printClass(&sb, c, 0)
	}
	return sb.String()
}

func printClass(sb *strings.Builder, c *ast.Class, depth int) {
	line(sb, depth, "class %s inherits %s", c.Name, c.Parent)
	for _, f := range c.Features {
		switch feat := f.(type) {
		case *ast.Attribute:
			line(sb, depth+1, "attribute %s : %s", feat.Name, feat.Type)
			printExpr(sb, feat.Init, depth+2)
		case *ast.Method:
			formals := make([]string, len(feat.Formals))
			for i, fm := range feat.Formals {
				formals[i] = fm.Name + " : " + fm.Type
			}
			line(sb, depth+1, "method %s(%s) : %s", feat.Name, strings.Join(formals, ", "), feat.ReturnType)
			printExpr(sb, feat.Body, depth+2)
		}
	}
}

func line(sb *strings.Builder, depth int, format string, args ...any) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, format, args...)
	sb.WriteByte('\n')
}

// printVisitor implements ast.Visitor, writing one header line per node
// then recursing into children at depth+1.
type printVisitor struct {
	sb    *strings.Builder
	depth int
}

func printExpr(sb *strings.Builder, e ast.Expression, depth int) {
	if e == nil {
		return
	}
	e.Accept(&printVisitor{sb: sb, depth: depth})
}

func (v *printVisitor) header(format string, args ...any) {
	line(v.sb, v.depth, format, args...)
}

func (v *printVisitor) child(e ast.Expression) { printExpr(v.sb, e, v.depth+1) }

func (v *printVisitor) VisitStringConst(n *ast.StringConst) { v.header("string_const %q", n.Value) }
func (v *printVisitor) VisitIntConst(n *ast.IntConst)       { v.header("int_const %s", n.Value) }
func (v *printVisitor) VisitBoolConst(n *ast.BoolConst)     { v.header("bool_const %v", n.Value) }
func (v *printVisitor) VisitNew(n *ast.New)                 { v.header("new %s", n.TypeName) }
func (v *printVisitor) VisitIsVoid(n *ast.IsVoid) {
	v.header("isvoid")
	v.child(n.Expr)
}
func (v *printVisitor) VisitNot(n *ast.Not) {
	v.header("not")
	v.child(n.Expr)
}
func (v *printVisitor) VisitComplement(n *ast.Complement) {
	v.header("complement")
	v.child(n.Expr)
}
func (v *printVisitor) VisitPlus(n *ast.Plus) { v.binary("plus", n.Left, n.Right) }
func (v *printVisitor) VisitSub(n *ast.Sub)   { v.binary("sub", n.Left, n.Right) }
func (v *printVisitor) VisitMul(n *ast.Mul)   { v.binary("mul", n.Left, n.Right) }
func (v *printVisitor) VisitDiv(n *ast.Div)   { v.binary("div", n.Left, n.Right) }
func (v *printVisitor) VisitLessThan(n *ast.LessThan) { v.binary("lt", n.Left, n.Right) }
func (v *printVisitor) VisitLessThanEqualTo(n *ast.LessThanEqualTo) {
	v.binary("leq", n.Left, n.Right)
}
func (v *printVisitor) VisitEqualTo(n *ast.EqualTo) { v.binary("eq", n.Left, n.Right) }

func (v *printVisitor) binary(name string, l, r ast.Expression) {
	v.header(name)
	v.child(l)
	v.child(r)
}

func (v *printVisitor) VisitIf(n *ast.If) {
	v.header("if")
	v.child(n.Pred)
	v.child(n.Then)
	v.child(n.Else)
}

func (v *printVisitor) VisitWhile(n *ast.While) {
	v.header("while")
	v.child(n.Pred)
	v.child(n.Body)
}

func (v *printVisitor) VisitBlock(n *ast.Block) {
	v.header("block")
	for _, e := range n.Exprs {
		v.child(e)
	}
}

func (v *printVisitor) VisitLet(n *ast.Let) {
	v.header("let %s : %s", n.Name, n.Type)
	v.child(n.Init)
	v.child(n.Body)
}

func (v *printVisitor) VisitCase(n *ast.Case) {
	v.header("case")
	v.child(n.Expr)
	for _, b := range n.Branches {
		line(v.sb, v.depth+1, "branch %s : %s", b.Name, b.Type)
		printExpr(v.sb, b.Body, v.depth+2)
	}
}

func (v *printVisitor) VisitAssign(n *ast.Assign) {
	v.header("assign %s", n.Name)
	v.child(n.Expr)
}

func (v *printVisitor) VisitObject(n *ast.Object) { v.header("object %s", n.Name) }

func (v *printVisitor) VisitStaticDispatch(n *ast.StaticDispatch) {
	v.header("static_dispatch %s@%s", n.Method, n.AncestorType)
	v.child(n.Expr)
	for _, a := range n.Args {
		v.child(a)
	}
}

func (v *printVisitor) VisitDynamicDispatch(n *ast.DynamicDispatch) {
	v.header("dispatch %s", n.Method)
	v.child(n.Expr)
	for _, a := range n.Args {
		v.child(a)
	}
}

func (v *printVisitor) VisitNoExpr(n *ast.NoExpr) { v.header("no_expr") }
