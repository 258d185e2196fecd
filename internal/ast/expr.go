package ast

// Expression is the tagged union of every Cool expression form. Every
// variant carries a mutable Type slot, unset ("") until the type
// checker assigns it exactly once.
type Expression interface {
	Node
	Accept(Visitor)
	Type() string
	SetType(string)
}

// exprBase is embedded by every expression node.
type exprBase struct {
	baseNode
	typ string
}

func (e *exprBase) Type() string     { return e.typ }
func (e *exprBase) SetType(t string) { e.typ = t }

func base(file string, line int) exprBase {
	return exprBase{baseNode: baseNode{File: file, Ln: line}}
}

// StringConst is a string literal.
type StringConst struct {
	exprBase
	Value string
}

func NewStringConst(file string, line int, value string) *StringConst {
	return &StringConst{exprBase: base(file, line), Value: value}
}
func (n *StringConst) Accept(v Visitor) { v.VisitStringConst(n) }

// IntConst is an integer literal, kept as its original decimal text so
// arbitrary-width literals round-trip unchanged into the constant pool.
type IntConst struct {
	exprBase
	Value string
}

func NewIntConst(file string, line int, value string) *IntConst {
	return &IntConst{exprBase: base(file, line), Value: value}
}
func (n *IntConst) Accept(v Visitor) { v.VisitIntConst(n) }

// BoolConst is a boolean literal.
type BoolConst struct {
	exprBase
	Value bool
}

func NewBoolConst(file string, line int, value bool) *BoolConst {
	return &BoolConst{exprBase: base(file, line), Value: value}
}
func (n *BoolConst) Accept(v Visitor) { v.VisitBoolConst(n) }

// New is the `new T` object-construction expression.
type New struct {
	exprBase
	TypeName string
}

func NewNew(file string, line int, typeName string) *New {
	return &New{exprBase: base(file, line), TypeName: typeName}
}
func (n *New) Accept(v Visitor) { v.VisitNew(n) }

// IsVoid tests whether an expression evaluates to void.
type IsVoid struct {
	exprBase
	Expr Expression
}

func NewIsVoid(file string, line int, expr Expression) *IsVoid {
	return &IsVoid{exprBase: base(file, line), Expr: expr}
}
func (n *IsVoid) Accept(v Visitor) { v.VisitIsVoid(n) }

// Not is Boolean negation.
type Not struct {
	exprBase
	Expr Expression
}

func NewNot(file string, line int, expr Expression) *Not {
	return &Not{exprBase: base(file, line), Expr: expr}
}
func (n *Not) Accept(v Visitor) { v.VisitNot(n) }

// Complement is integer bitwise/arithmetic negation (`~e`).
type Complement struct {
	exprBase
	Expr Expression
}

func NewComplement(file string, line int, expr Expression) *Complement {
	return &Complement{exprBase: base(file, line), Expr: expr}
}
func (n *Complement) Accept(v Visitor) { v.VisitComplement(n) }

// binaryExpr is embedded by every two-operand expression form.
type binaryExpr struct {
	exprBase
	Left  Expression
	Right Expression
}

// Plus is integer addition.
type Plus struct{ binaryExpr }

func NewPlus(file string, line int, l, r Expression) *Plus {
	return &Plus{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *Plus) Accept(v Visitor) { v.VisitPlus(n) }

// Sub is integer subtraction.
type Sub struct{ binaryExpr }

func NewSub(file string, line int, l, r Expression) *Sub {
	return &Sub{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *Sub) Accept(v Visitor) { v.VisitSub(n) }

// Mul is integer multiplication.
type Mul struct{ binaryExpr }

func NewMul(file string, line int, l, r Expression) *Mul {
	return &Mul{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *Mul) Accept(v Visitor) { v.VisitMul(n) }

// Div is integer division.
type Div struct{ binaryExpr }

func NewDiv(file string, line int, l, r Expression) *Div {
	return &Div{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *Div) Accept(v Visitor) { v.VisitDiv(n) }

// LessThan is integer `<`.
type LessThan struct{ binaryExpr }

func NewLessThan(file string, line int, l, r Expression) *LessThan {
	return &LessThan{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *LessThan) Accept(v Visitor) { v.VisitLessThan(n) }

// LessThanEqualTo is integer `<=`.
type LessThanEqualTo struct{ binaryExpr }

func NewLessThanEqualTo(file string, line int, l, r Expression) *LessThanEqualTo {
	return &LessThanEqualTo{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *LessThanEqualTo) Accept(v Visitor) { v.VisitLessThanEqualTo(n) }

// EqualTo is `=`, valid between any two types but constrained to
// identical operand types when either side is Int/Bool/String.
type EqualTo struct{ binaryExpr }

func NewEqualTo(file string, line int, l, r Expression) *EqualTo {
	return &EqualTo{binaryExpr{exprBase: base(file, line), Left: l, Right: r}}
}
func (n *EqualTo) Accept(v Visitor) { v.VisitEqualTo(n) }

// NoExpr is the sentinel for a missing initializer (attribute with no
// `<- expr`, or `let x : T in ...` with no init).
type NoExpr struct {
	exprBase
}

func NewNoExpr(file string, line int) *NoExpr {
	n := &NoExpr{exprBase: base(file, line)}
	n.typ = NoType
	return n
}
func (n *NoExpr) Accept(v Visitor) { v.VisitNoExpr(n) }
