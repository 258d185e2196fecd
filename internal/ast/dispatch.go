package ast

// Object is a bare identifier reference, resolved against the
// variable environment or the enclosing class's attributes.
type Object struct {
	exprBase
	Name string
}

func NewObject(file string, line int, name string) *Object {
	return &Object{exprBase: base(file, line), Name: name}
}
func (n *Object) Accept(v Visitor) { v.VisitObject(n) }

// StaticDispatch is `expr@AncestorType.method(args)`: dispatch through
// the named ancestor's dispatch table rather than the receiver's
// runtime type (spec.md §9, correcting the source's omission).
type StaticDispatch struct {
	exprBase
	Expr         Expression
	AncestorType string
	Method       string
	Args         []Expression
}

func NewStaticDispatch(file string, line int, expr Expression, ancestor, method string, args []Expression) *StaticDispatch {
	return &StaticDispatch{exprBase: base(file, line), Expr: expr, AncestorType: ancestor, Method: method, Args: args}
}
func (n *StaticDispatch) Accept(v Visitor) { v.VisitStaticDispatch(n) }

// DynamicDispatch is `expr.method(args)` (or, with an implicit `self`
// receiver, bare `method(args)` as parsed by the parser).
type DynamicDispatch struct {
	exprBase
	Expr   Expression
	Method string
	Args   []Expression
}

func NewDynamicDispatch(file string, line int, expr Expression, method string, args []Expression) *DynamicDispatch {
	return &DynamicDispatch{exprBase: base(file, line), Expr: expr, Method: method, Args: args}
}
func (n *DynamicDispatch) Accept(v Visitor) { v.VisitDynamicDispatch(n) }
