package codegen

import (
	"fmt"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/symtab"
)

// emitMethod emits `<class>.<m.Name>` (spec.md §4.5 "Method `<C>.<m>`").
// The caller (a dispatch site) has already pushed the AR, stored the
// caller's fp/self and the actual arguments, and pointed $fp at the
// frame; the callee only needs to save the return address jalr just
// set, bind self, generate the body, then restore self/ra and return,
// leaving stack teardown to the caller ("the caller is responsible for
// stack arrangement").
func (g *Generator) emitMethod(class string, m *ast.Method) {
	g.e.Label(methodLabel(class, m.Name))
	n := len(m.Formals)
	g.e.Instr("sw", regRA, fpRel(raSlotOffset(n), regFP))
	g.e.Instr("move", regSelf, regAcc)

	g.curClass = class
	g.vars = symtab.New[string, int]()
	for i, f := range m.Formals {
		g.vars.Add(f.Name, formalFPOffset(i+1))
	}
	g.localN = 0

	g.emitExpr(m.Body)

	g.e.Instr("lw", regSelf, fpRel(selfSlotOffset(), regFP))
	g.e.Instr("lw", regRA, fpRel(raSlotOffset(n), regFP))
	g.e.Instr("jr", regRA)
	g.e.Blank()
}

func (g *Generator) emitExpr(e ast.Expression) { e.Accept(g) }

func (g *Generator) resolveStatic(t string) string {
	if t == ast.SelfType {
		return g.curClass
	}
	return t
}

// --- constants ---

func (g *Generator) VisitStringConst(n *ast.StringConst) {
	g.tables.AddString(n.Value)
	g.e.Instr("la", regAcc, strConstLabel(g.tables.Strings.IndexOf(n.Value)))
}

func (g *Generator) VisitIntConst(n *ast.IntConst) {
	g.tables.AddInt(n.Value)
	g.e.Instr("la", regAcc, intConstLabel(g.tables.Ints.IndexOf(n.Value)))
}

func (g *Generator) VisitBoolConst(n *ast.BoolConst) {
	g.e.Instr("la", regAcc, boolConstLabel(n.Value))
}

func (g *Generator) VisitNoExpr(n *ast.NoExpr) {
	g.e.Comment("unreachable NoExpr reached at codegen time")
	g.e.Instr("li", regAcc, "0")
}

// --- object construction ---

func (g *Generator) VisitNew(n *ast.New) {
	if n.TypeName != ast.SelfType {
		g.e.Instr("la", regAcc, prototypeLabel(n.TypeName))
		g.e.Instr("jal", "Object.copy")
		g.e.Instr("jal", initLabel(n.TypeName))
		return
	}
	g.e.Comment("new SELF_TYPE: resolve prototype/init via self's tag")
	g.e.Instr("lw", "$t0", fpRel(tagOffset, regSelf))
	g.e.Instr("sll", "$t0", "$t0", "3")
	g.e.Instr("la", "$t1", "class_objTab")
	g.e.Instr("addu", "$t1", "$t1", "$t0")
	g.e.Instr("lw", regAcc, "0($t1)")
	// $s1 is callee-saved by MIPS convention, so it survives the call
	// to Object.copy below unlike a $t register would.
	g.e.Instr("lw", "$s1", "4($t1)")
	g.e.Instr("jal", "Object.copy")
	g.e.Instr("jalr", "$s1")
}

func (g *Generator) VisitIsVoid(n *ast.IsVoid) {
	g.emitExpr(n.Expr)
	g.e.Instr("jal", "isvoid")
}

func (g *Generator) VisitNot(n *ast.Not) {
	g.emitExpr(n.Expr)
	g.e.Instr("jal", "lnot")
}

func (g *Generator) VisitComplement(n *ast.Complement) {
	g.emitExpr(n.Expr)
	g.e.Instr("lw", "$t0", fpRel(attrOffset(0), regAcc))
	g.e.Instr("subu", "$t0", "$zero", "$t0")
	g.e.Instr("sw", "$t0", fpRel(attrOffset(0), regAcc))
}

// --- arithmetic ---

func (g *Generator) VisitPlus(n *ast.Plus) { g.emitArith("add", n.Left, n.Right) }
func (g *Generator) VisitSub(n *ast.Sub)   { g.emitArith("sub", n.Left, n.Right) }
func (g *Generator) VisitMul(n *ast.Mul)   { g.emitArith("mul", n.Left, n.Right) }
func (g *Generator) VisitDiv(n *ast.Div)   { g.emitArith("div", n.Left, n.Right) }

// emitArith implements spec.md §4.5's arithmetic bullet: evaluate lhs,
// push it; evaluate rhs and Object.copy it to get a fresh result box;
// load both operand values, apply op, store into the new box; pop.
// The rhs pointer and the result box live in $s1/$s2 (callee-saved, so
// Object.copy cannot disturb them) rather than a $t register; lhs has
// to go on the stack regardless, since its lifetime spans the
// recursive evaluation of rhs.
func (g *Generator) emitArith(op string, lhs, rhs ast.Expression) {
	g.emitExpr(lhs)
	g.e.Push(1)
	g.e.Instr("sw", regAcc, "0($sp)")

	g.emitExpr(rhs)
	g.e.Instr("move", "$s1", regAcc)
	g.e.Instr("jal", "Object.copy")
	g.e.Instr("move", "$s2", regAcc)

	g.e.Instr("lw", "$t0", "0($sp)")
	g.e.Instr("lw", "$t3", fpRel(attrOffset(0), "$t0"))
	g.e.Instr("lw", "$t4", fpRel(attrOffset(0), "$s1"))
	g.e.Instr(op, "$t5", "$t3", "$t4")
	g.e.Instr("sw", "$t5", fpRel(attrOffset(0), "$s2"))

	g.e.Instr("move", regAcc, "$s2")
	g.e.Pop(1)
}

// --- comparisons ---

func (g *Generator) VisitLessThan(n *ast.LessThan) { g.emitCompare("less", n.Left, n.Right) }
func (g *Generator) VisitLessThanEqualTo(n *ast.LessThanEqualTo) {
	g.emitCompare("less_eq", n.Left, n.Right)
}
func (g *Generator) VisitEqualTo(n *ast.EqualTo) { g.emitCompare("eq", n.Left, n.Right) }

// emitCompare evaluates lhs then rhs and calls the runtime comparison
// helper with lhs in $a1, rhs in $a0. lhs is staged through the stack
// rather than straight into $a1, since rhs's own evaluation may itself
// call through $a1 on the way to some nested dispatch.
func (g *Generator) emitCompare(helper string, lhs, rhs ast.Expression) {
	g.emitExpr(lhs)
	g.e.Push(1)
	g.e.Instr("sw", regAcc, "0($sp)")
	g.emitExpr(rhs)
	g.e.Instr("lw", "$a1", "0($sp)")
	g.e.Pop(1)
	g.e.Instr("jal", helper)
}

// --- control flow ---

func (g *Generator) VisitIf(n *ast.If) {
	id := g.nextLabel()
	trueLabel := fmt.Sprintf("iftrue%d", id)
	endLabel := fmt.Sprintf("ifend%d", id)

	g.emitExpr(n.Pred)
	g.e.Instr("la", "$t0", boolConstLabel(true))
	g.e.Instr("beq", regAcc, "$t0", trueLabel)
	g.emitExpr(n.Else)
	g.e.Instr("b", endLabel)
	g.e.Label(trueLabel)
	g.emitExpr(n.Then)
	g.e.Label(endLabel)
}

func (g *Generator) VisitWhile(n *ast.While) {
	id := g.nextLabel()
	loopLabel := fmt.Sprintf("whileloop%d", id)
	endLabel := fmt.Sprintf("whileend%d", id)

	g.e.Label(loopLabel)
	g.emitExpr(n.Pred)
	g.e.Instr("la", "$t0", boolConstLabel(true))
	g.e.Instr("bne", regAcc, "$t0", endLabel)
	g.emitExpr(n.Body)
	g.e.Instr("b", loopLabel)
	g.e.Label(endLabel)
	g.e.Instr("li", regAcc, "0")
}

func (g *Generator) VisitBlock(n *ast.Block) {
	for _, e := range n.Exprs {
		g.emitExpr(e)
	}
}

// --- names ---

func (g *Generator) VisitAssign(n *ast.Assign) {
	g.emitExpr(n.Expr)
	if off, ok := g.vars.Lookup(n.Name); ok {
		g.e.Instr("sw", regAcc, fpRel(off, regFP))
		return
	}
	idx := g.layout.AttrIndex(g.curClass, n.Name)
	g.e.Instr("sw", regAcc, fpRel(attrOffset(idx), regSelf))
}

func (g *Generator) VisitObject(n *ast.Object) {
	if n.Name == "self" {
		g.e.Instr("move", regAcc, regSelf)
		return
	}
	if off, ok := g.vars.Lookup(n.Name); ok {
		g.e.Instr("lw", regAcc, fpRel(off, regFP))
		return
	}
	idx := g.layout.AttrIndex(g.curClass, n.Name)
	g.e.Instr("lw", regAcc, fpRel(attrOffset(idx), regSelf))
}

// --- let / case ---

func (g *Generator) VisitLet(n *ast.Let) {
	g.localN++
	off := -WordSize * g.localN
	g.e.Push(1)

	if _, isNoExpr := n.Init.(*ast.NoExpr); isNoExpr {
		g.emitDefault(n.Type)
	} else {
		g.emitExpr(n.Init)
	}
	g.e.Instr("sw", regAcc, fpRel(off, regFP))

	g.vars.Enter()
	g.vars.Add(n.Name, off)
	g.emitExpr(n.Body)
	g.vars.Exit()

	g.e.Pop(1)
	g.localN--
}

func (g *Generator) VisitCase(n *ast.Case) {
	id := g.nextLabel()
	endLabel := fmt.Sprintf("caseend%d", id)
	abortLabel := fmt.Sprintf("caseabort%d", id)
	loopLabel := fmt.Sprintf("caseloop%d", id)

	g.emitExpr(n.Expr)
	g.e.Instr("beq", regAcc, "$zero", abortLabel)

	g.localN++
	scrutineeOff := -WordSize * g.localN
	g.e.Push(1)
	g.e.Instr("sw", regAcc, fpRel(scrutineeOff, regFP))

	g.e.Instr("lw", "$t0", fpRel(tagOffset, regAcc))
	g.e.Label(loopLabel)

	branchLabels := make([]string, len(n.Branches))
	for i, b := range n.Branches {
		branchLabels[i] = fmt.Sprintf("casebranch%d_%d", id, i)
		g.e.Instr("li", "$t1", fmt.Sprintf("%d", g.layout.ClassTag[b.Type]))
		g.e.Instr("beq", "$t0", "$t1", branchLabels[i])
	}
	objectTag := g.layout.ClassTag["Object"]
	g.e.Instr("li", "$t1", fmt.Sprintf("%d", objectTag))
	g.e.Instr("beq", "$t0", "$t1", abortLabel)
	g.e.Instr("la", "$t3", "class_parentTag")
	g.e.Instr("sll", "$t4", "$t0", "2")
	g.e.Instr("addu", "$t3", "$t3", "$t4")
	g.e.Instr("lw", "$t0", "0($t3)")
	g.e.Instr("b", loopLabel)

	for i, b := range n.Branches {
		g.e.Label(branchLabels[i])
		g.vars.Enter()
		g.vars.Add(b.Name, scrutineeOff)
		g.emitExpr(b.Body)
		g.vars.Exit()
		g.e.Instr("b", endLabel)
	}

	g.e.Label(abortLabel)
	g.e.Instr("jal", "Object.abort")

	g.e.Label(endLabel)
	g.e.Pop(1)
	g.localN--
}

// --- dispatch ---

func (g *Generator) VisitStaticDispatch(n *ast.StaticDispatch) {
	ancestor := n.AncestorType
	idx := g.layout.DispatchIndex(ancestor, n.Method)
	g.emitCall(n.Expr, n.Args, func() {
		g.e.Instr("la", "$t1", disptableLabel(ancestor))
		g.e.Instr("lw", "$t0", fmt.Sprintf("%d($t1)", WordSize*idx))
	})
}

func (g *Generator) VisitDynamicDispatch(n *ast.DynamicDispatch) {
	staticType := g.resolveStatic(n.Expr.Type())
	idx := g.layout.DispatchIndex(staticType, n.Method)
	g.emitCall(n.Expr, n.Args, func() {
		g.e.Instr("lw", "$t1", fpRel(disptablePtrOff, regAcc))
		g.e.Instr("lw", "$t0", fmt.Sprintf("%d($t1)", WordSize*idx))
	})
}

// emitCall implements spec.md §4.5's dispatch bullet: push an AR sized
// for the call, save the caller's fp/self into it, evaluate arguments
// into ascending slots, point fp at the new frame, evaluate the
// receiver, let loadTarget resolve the method address into $t0, then
// jalr. After return, the caller reloads its own fp (while the
// now-dead frame is still addressable) and pops — "the caller is
// responsible for stack arrangement".
func (g *Generator) emitCall(recv ast.Expression, args []ast.Expression, loadTarget func()) {
	n := len(args)
	g.e.Push(frameWords(n))
	g.e.Instr("sw", regFP, fpRel(fpSlotOffset(), regSP))
	g.e.Instr("sw", regSelf, fpRel(selfSlotOffset(), regSP))

	for i, a := range args {
		g.emitExpr(a)
		g.e.Instr("sw", regAcc, fpRel(argSlotOffset(i+1), regSP))
	}

	g.e.Instr("move", regFP, regSP)
	g.emitExpr(recv)
	loadTarget()
	g.e.Instr("jalr", "$t0")

	g.e.Instr("lw", regFP, fpRel(fpSlotOffset(), regFP))
	g.e.Pop(frameWords(n))
}
