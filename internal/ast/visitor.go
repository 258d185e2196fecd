package ast

// Visitor is the traversal capability every expression node accepts.
// A concrete visitor (pretty-printer, type checker, code generator)
// implements one method per expression variant and is responsible for
// recursing into children itself — the acceptor only dispatches on
// variant (spec.md §4.2).
type Visitor interface {
	VisitStringConst(*StringConst)
	VisitIntConst(*IntConst)
	VisitBoolConst(*BoolConst)
	VisitNew(*New)
	VisitIsVoid(*IsVoid)
	VisitNot(*Not)
	VisitComplement(*Complement)
	VisitPlus(*Plus)
	VisitSub(*Sub)
	VisitMul(*Mul)
	VisitDiv(*Div)
	VisitLessThan(*LessThan)
	VisitLessThanEqualTo(*LessThanEqualTo)
	VisitEqualTo(*EqualTo)
	VisitIf(*If)
	VisitWhile(*While)
	VisitBlock(*Block)
	VisitLet(*Let)
	VisitCase(*Case)
	VisitAssign(*Assign)
	VisitObject(*Object)
	VisitStaticDispatch(*StaticDispatch)
	VisitDynamicDispatch(*DynamicDispatch)
	VisitNoExpr(*NoExpr)
}
