package typecheck

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/symtab"
)

// Checker walks the AST assigning a type to every expression node
// (spec.md §4.4). It implements ast.Visitor; each Visit method
// recurses into children itself (via check), computes the node's
// type, and writes it with SetType exactly once.
type Checker struct {
	H       *semantic.Hierarchy
	Methods MethodTables
	Errors  *diag.Bag

	env          *symtab.Table[string, string]
	currentClass string
}

// NewChecker returns a Checker ready to type-check a program against
// the given hierarchy and method tables.
func NewChecker(h *semantic.Hierarchy, methods MethodTables, errs *diag.Bag) *Checker {
	return &Checker{H: h, Methods: methods, Errors: errs, env: symtab.New[string, string]()}
}

// Run type-checks every class in the program.
func (c *Checker) Run(program *ast.Program) {
	for _, cls := range program.Classes {
		c.checkClass(cls)
	}
}

func (c *Checker) check(e ast.Expression) {
	e.Accept(c)
}

func (c *Checker) checkClass(cls *ast.Class) {
	c.currentClass = cls.Name
	c.env.Enter()
	c.env.Add("self", cls.Name)

	// Bind inherited attributes, root-to-parent order (order among
	// distinct names doesn't matter; redefinition is checked below).
	ancestors := c.H.Ancestors(cls.Parent)
	for i := len(ancestors) - 1; i >= 0; i-- {
		anc := c.H.Classes[ancestors[i]]
		for _, feat := range anc.Features {
			if attr, ok := feat.(*ast.Attribute); ok {
				c.env.Add(attr.Name, attr.Type)
			}
		}
	}

	for _, feat := range cls.Features {
		attr, ok := feat.(*ast.Attribute)
		if !ok {
			continue
		}
		if _, exists := c.env.Probe(attr.Name); exists {
			c.Errors.Add(attr.Filename(), attr.Line(), diag.AttributeRedefined,
				"attribute %s is redefined in class %s", attr.Name, cls.Name)
		}
		c.env.Add(attr.Name, attr.Type)
	}

	for _, feat := range cls.Features {
		switch f := feat.(type) {
		case *ast.Attribute:
			c.check(f.Init)
			if !Subtype(c.H, f.Init.Type(), f.Type, cls.Name) {
				c.Errors.Add(f.Filename(), f.Line(), diag.SubtypeViolation,
					"initializer type %s does not conform to declared type %s of attribute %s",
					f.Init.Type(), f.Type, f.Name)
			}
		case *ast.Method:
			c.env.Enter()
			for _, formal := range f.Formals {
				c.env.Add(formal.Name, formal.Type)
			}
			c.check(f.Body)
			if !Subtype(c.H, f.Body.Type(), f.ReturnType, cls.Name) {
				c.Errors.Add(f.Filename(), f.Line(), diag.SubtypeViolation,
					"body type %s does not conform to declared return type %s of method %s",
					f.Body.Type(), f.ReturnType, f.Name)
			}
			c.env.Exit()
		}
	}

	c.env.Exit()
}

// --- ast.Visitor ---

func (c *Checker) VisitStringConst(n *ast.StringConst) { n.SetType("String") }
func (c *Checker) VisitIntConst(n *ast.IntConst)        { n.SetType("Int") }
func (c *Checker) VisitBoolConst(n *ast.BoolConst)      { n.SetType("Bool") }

func (c *Checker) VisitNew(n *ast.New) { n.SetType(n.TypeName) }

func (c *Checker) VisitIsVoid(n *ast.IsVoid) {
	c.check(n.Expr)
	n.SetType("Bool")
}

func (c *Checker) VisitNot(n *ast.Not) {
	c.check(n.Expr)
	if n.Expr.Type() != "Bool" {
		c.Errors.Add(n.Filename(), n.Line(), diag.NotOperandNotBool,
			"operand of not has type %s, expected Bool", n.Expr.Type())
	}
	n.SetType("Bool")
}

func (c *Checker) VisitComplement(n *ast.Complement) {
	c.check(n.Expr)
	if n.Expr.Type() != "Int" {
		c.Errors.Add(n.Filename(), n.Line(), diag.ArithOperandNotInt,
			"operand of ~ has type %s, expected Int", n.Expr.Type())
	}
	n.SetType("Int")
}

func (c *Checker) checkArith(kind string, left, right ast.Expression, line int, file string) {
	if left.Type() != "Int" || right.Type() != "Int" {
		c.Errors.Add(file, line, diag.ArithOperandNotInt,
			"operands of %s must be Int, got %s and %s", kind, left.Type(), right.Type())
	}
}

func (c *Checker) VisitPlus(n *ast.Plus) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkArith("+", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Int")
}

func (c *Checker) VisitSub(n *ast.Sub) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkArith("-", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Int")
}

func (c *Checker) VisitMul(n *ast.Mul) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkArith("*", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Int")
}

func (c *Checker) VisitDiv(n *ast.Div) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkArith("/", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Int")
}

func (c *Checker) checkCompare(kind string, left, right ast.Expression, line int, file string) {
	if left.Type() != "Int" || right.Type() != "Int" {
		c.Errors.Add(file, line, diag.CompareOperandNotInt,
			"operands of %s must be Int, got %s and %s", kind, left.Type(), right.Type())
	}
}

func (c *Checker) VisitLessThan(n *ast.LessThan) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkCompare("<", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Bool")
}

func (c *Checker) VisitLessThanEqualTo(n *ast.LessThanEqualTo) {
	c.check(n.Left)
	c.check(n.Right)
	c.checkCompare("<=", n.Left, n.Right, n.Line(), n.Filename())
	n.SetType("Bool")
}

var basicEqualityTypes = map[string]bool{"Int": true, "Bool": true, "String": true}

func (c *Checker) VisitEqualTo(n *ast.EqualTo) {
	c.check(n.Left)
	c.check(n.Right)
	lt, rt := n.Left.Type(), n.Right.Type()
	if (basicEqualityTypes[lt] || basicEqualityTypes[rt]) && lt != rt {
		c.Errors.Add(n.Filename(), n.Line(), diag.EqualityTypeMismatch,
			"cannot compare %s with %s", lt, rt)
	}
	n.SetType("Bool")
}

func (c *Checker) VisitIf(n *ast.If) {
	c.check(n.Pred)
	if n.Pred.Type() != "Bool" {
		c.Errors.Add(n.Filename(), n.Line(), diag.PredicateNotBool,
			"if predicate has type %s, expected Bool", n.Pred.Type())
	}
	c.check(n.Then)
	c.check(n.Else)
	n.SetType(Lub(c.H, []string{n.Then.Type(), n.Else.Type()}, c.currentClass))
}

func (c *Checker) VisitWhile(n *ast.While) {
	c.check(n.Pred)
	if n.Pred.Type() != "Bool" {
		c.Errors.Add(n.Filename(), n.Line(), diag.PredicateNotBool,
			"while predicate has type %s, expected Bool", n.Pred.Type())
	}
	c.check(n.Body)
	n.SetType("Object")
}

func (c *Checker) VisitBlock(n *ast.Block) {
	var last string = "Object"
	for _, e := range n.Exprs {
		c.check(e)
		last = e.Type()
	}
	n.SetType(last)
}

func (c *Checker) VisitLet(n *ast.Let) {
	if _, ok := n.Init.(*ast.NoExpr); !ok {
		c.check(n.Init)
		if !Subtype(c.H, n.Init.Type(), n.Type, c.currentClass) {
			c.Errors.Add(n.Filename(), n.Line(), diag.SubtypeViolation,
				"let-bound %s initializer has type %s, expected %s", n.Name, n.Init.Type(), n.Type)
		}
	} else {
		c.check(n.Init)
	}
	c.env.Enter()
	c.env.Add(n.Name, n.Type)
	c.check(n.Body)
	c.env.Exit()
	n.SetType(n.Body.Type())
}

func (c *Checker) VisitCase(n *ast.Case) {
	c.check(n.Expr)
	branchTypes := make([]string, 0, len(n.Branches))
	for _, b := range n.Branches {
		c.env.Enter()
		c.env.Add(b.Name, b.Type)
		c.check(b.Body)
		c.env.Exit()
		branchTypes = append(branchTypes, b.Body.Type())
	}
	n.SetType(Lub(c.H, branchTypes, c.currentClass))
}

func (c *Checker) VisitAssign(n *ast.Assign) {
	c.check(n.Expr)
	declared, ok := c.env.Lookup(n.Name)
	if !ok {
		c.Errors.Add(n.Filename(), n.Line(), diag.UnboundIdentifier,
			"assignment to undeclared identifier %s", n.Name)
		n.SetType("Object")
		return
	}
	if !Subtype(c.H, n.Expr.Type(), declared, c.currentClass) {
		c.Errors.Add(n.Filename(), n.Line(), diag.SubtypeViolation,
			"cannot assign %s to %s of declared type %s", n.Expr.Type(), n.Name, declared)
		n.SetType("Object")
		return
	}
	n.SetType(n.Expr.Type())
}

func (c *Checker) VisitObject(n *ast.Object) {
	if n.Name == "self" {
		n.SetType(ast.SelfType)
		return
	}
	t, ok := c.env.Lookup(n.Name)
	if !ok {
		c.Errors.Add(n.Filename(), n.Line(), diag.UnboundIdentifier,
			"undeclared identifier %s", n.Name)
		n.SetType("Object")
		return
	}
	n.SetType(t)
}

func (c *Checker) checkArgs(recvType string, sig Signature, args []ast.Expression, line int, file, method string) {
	if len(args) != len(sig.Params) {
		c.Errors.Add(file, line, diag.DispatchArgMismatch,
			"method %s expects %d argument(s), got %d", method, len(sig.Params), len(args))
		return
	}
	for i, a := range args {
		if !Subtype(c.H, a.Type(), sig.Params[i], c.currentClass) {
			c.Errors.Add(file, line, diag.DispatchArgMismatch,
				"argument %d to %s has type %s, expected %s", i+1, method, a.Type(), sig.Params[i])
		}
	}
}

func (c *Checker) VisitStaticDispatch(n *ast.StaticDispatch) {
	c.check(n.Expr)
	for _, a := range n.Args {
		c.check(a)
	}
	if !Subtype(c.H, n.Expr.Type(), n.AncestorType, c.currentClass) {
		c.Errors.Add(n.Filename(), n.Line(), diag.DispatchArgMismatch,
			"static dispatch receiver type %s does not conform to %s", n.Expr.Type(), n.AncestorType)
		n.SetType("Object")
		return
	}
	sig, ok := c.Methods.Lookup(n.AncestorType, n.Method)
	if !ok {
		c.Errors.Add(n.Filename(), n.Line(), diag.UnboundIdentifier,
			"no method %s in class %s", n.Method, n.AncestorType)
		n.SetType("Object")
		return
	}
	c.checkArgs(n.AncestorType, sig, n.Args, n.Line(), n.Filename(), n.Method)
	if sig.Return == ast.SelfType {
		n.SetType(n.Expr.Type())
	} else {
		n.SetType(sig.Return)
	}
}

func (c *Checker) VisitDynamicDispatch(n *ast.DynamicDispatch) {
	c.check(n.Expr)
	for _, a := range n.Args {
		c.check(a)
	}
	recv := resolveSelf(n.Expr.Type(), c.currentClass)
	sig, ok := c.Methods.Lookup(recv, n.Method)
	if !ok {
		c.Errors.Add(n.Filename(), n.Line(), diag.UnboundIdentifier,
			"no method %s in class %s", n.Method, recv)
		n.SetType("Object")
		return
	}
	c.checkArgs(recv, sig, n.Args, n.Line(), n.Filename(), n.Method)
	if sig.Return == ast.SelfType {
		n.SetType(n.Expr.Type())
	} else {
		n.SetType(sig.Return)
	}
}

func (c *Checker) VisitNoExpr(n *ast.NoExpr) {
	n.SetType(ast.NoType)
}
