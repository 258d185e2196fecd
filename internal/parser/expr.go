package parser

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
)

// parseExpr parses a full expression, starting at the lowest
// precedence level: assignment.
func (p *Parser) parseExpr() ast.Expression {
	if p.cur.Type == lexer.OBJECTID && p.peek.Type == lexer.ASSIGN {
		line := p.line()
		name := p.cur.Literal
		p.next() // name
		p.next() // <-
		rhs := p.parseExpr()
		return ast.NewAssign(p.file, line, name, rhs)
	}
	if p.cur.Type == lexer.NOT {
		line := p.line()
		p.next()
		return ast.NewNot(p.file, line, p.parseExpr())
	}
	return p.parseComparison()
}

// parseComparison handles the non-associative <, <=, = level.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	switch p.cur.Type {
	case lexer.LT:
		line := p.line()
		p.next()
		return ast.NewLessThan(p.file, line, left, p.parseAdditive())
	case lexer.LE:
		line := p.line()
		p.next()
		return ast.NewLessThanEqualTo(p.file, line, left, p.parseAdditive())
	case lexer.EQ:
		line := p.line()
		p.next()
		return ast.NewEqualTo(p.file, line, left, p.parseAdditive())
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		line := p.line()
		op := p.cur.Type
		p.next()
		right := p.parseMultiplicative()
		if op == lexer.PLUS {
			left = ast.NewPlus(p.file, line, left, right)
		} else {
			left = ast.NewSub(p.file, line, left, right)
		}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseIsVoid()
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH {
		line := p.line()
		op := p.cur.Type
		p.next()
		right := p.parseIsVoid()
		if op == lexer.STAR {
			left = ast.NewMul(p.file, line, left, right)
		} else {
			left = ast.NewDiv(p.file, line, left, right)
		}
	}
	return left
}

func (p *Parser) parseIsVoid() ast.Expression {
	if p.cur.Type == lexer.ISVOID {
		line := p.line()
		p.next()
		return ast.NewIsVoid(p.file, line, p.parseIsVoid())
	}
	return p.parseComplement()
}

func (p *Parser) parseComplement() ast.Expression {
	if p.cur.Type == lexer.TILDE {
		line := p.line()
		p.next()
		return ast.NewComplement(p.file, line, p.parseComplement())
	}
	return p.parseDispatchChain()
}

// parseDispatchChain parses a primary expression followed by any
// number of `.method(args)` or `@Ancestor.method(args)` suffixes.
func (p *Parser) parseDispatchChain() ast.Expression {
	expr := p.parsePrimary()
	for p.cur.Type == lexer.DOT || p.cur.Type == lexer.AT {
		line := p.line()
		if p.cur.Type == lexer.AT {
			p.next()
			ancestor := p.expect(lexer.TYPEID, "type identifier").Literal
			p.expect(lexer.DOT, "'.'")
			method := p.expect(lexer.OBJECTID, "identifier").Literal
			args := p.parseArgs()
			expr = ast.NewStaticDispatch(p.file, line, expr, ancestor, method, args)
			continue
		}
		p.next() // '.'
		method := p.expect(lexer.OBJECTID, "identifier").Literal
		args := p.parseArgs()
		expr = ast.NewDynamicDispatch(p.file, line, expr, method, args)
	}
	return expr
}

func (p *Parser) parseArgs() []ast.Expression {
	p.expect(lexer.LPAREN, "'('")
	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		args = append(args, p.parseExpr())
		if p.cur.Type == lexer.COMMA {
			p.next()
		} else {
			break
		}
	}
	p.expect(lexer.RPAREN, "')'")
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	line := p.line()
	switch p.cur.Type {
	case lexer.INT_CONST:
		lit := p.cur.Literal
		p.next()
		return ast.NewIntConst(p.file, line, lit)
	case lexer.STR_CONST:
		lit := p.cur.Literal
		p.next()
		return ast.NewStringConst(p.file, line, lit)
	case lexer.BOOL_CONST:
		lit := p.cur.Literal
		p.next()
		return ast.NewBoolConst(p.file, line, lit == "true")
	case lexer.NEW:
		p.next()
		typ := p.expect(lexer.TYPEID, "type identifier").Literal
		return ast.NewNew(p.file, line, typ)
	case lexer.LPAREN:
		p.next()
		e := p.parseExpr()
		p.expect(lexer.RPAREN, "')'")
		return e
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.LET:
		return p.parseLet()
	case lexer.CASE:
		return p.parseCase()
	case lexer.OBJECTID:
		name := p.cur.Literal
		p.next()
		if p.cur.Type == lexer.LPAREN {
			// self-dispatch: bare `method(args)`.
			args := p.parseArgs()
			return ast.NewDynamicDispatch(p.file, line, ast.NewObject(p.file, line, "self"), name, args)
		}
		return ast.NewObject(p.file, line, name)
	}

	p.errorf(p.cur.Pos, "unexpected token %q in expression", p.cur.Literal)
	tok := p.cur
	p.next()
	return ast.NewNoExpr(p.file, tok.Pos.Line)
}

func (p *Parser) parseBlock() ast.Expression {
	line := p.line()
	p.expect(lexer.LBRACE, "'{'")
	var exprs []ast.Expression
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		exprs = append(exprs, p.parseExpr())
		p.expect(lexer.SEMI, "';'")
	}
	p.expect(lexer.RBRACE, "'}'")
	return ast.NewBlock(p.file, line, exprs)
}

func (p *Parser) parseIf() ast.Expression {
	line := p.line()
	p.next() // if
	pred := p.parseExpr()
	p.expect(lexer.THEN, "'then'")
	then := p.parseExpr()
	p.expect(lexer.ELSE, "'else'")
	els := p.parseExpr()
	p.expect(lexer.FI, "'fi'")
	return ast.NewIf(p.file, line, pred, then, els)
}

func (p *Parser) parseWhile() ast.Expression {
	line := p.line()
	p.next() // while
	pred := p.parseExpr()
	p.expect(lexer.LOOP, "'loop'")
	body := p.parseExpr()
	p.expect(lexer.POOL, "'pool'")
	return ast.NewWhile(p.file, line, pred, body)
}

// parseLet desugars `let a:T1<-i1, b:T2<-i2 in body` into nested Let
// nodes, each one binding a single name, matching the standard Cool
// elaboration of multi-binding let.
func (p *Parser) parseLet() ast.Expression {
	line := p.line()
	p.next() // let

	type binding struct {
		name string
		typ  string
		init ast.Expression
		line int
	}
	var bindings []binding
	for {
		bline := p.line()
		name := p.expect(lexer.OBJECTID, "identifier").Literal
		p.expect(lexer.COLON, "':'")
		typ := p.expect(lexer.TYPEID, "type identifier").Literal
		var init ast.Expression = ast.NewNoExpr(p.file, bline)
		if p.cur.Type == lexer.ASSIGN {
			p.next()
			init = p.parseExpr()
		}
		bindings = append(bindings, binding{name, typ, init, bline})
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(lexer.IN, "'in'")
	body := p.parseExpr()

	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		body = ast.NewLet(p.file, b.line, b.name, b.typ, b.init, body)
	}
	_ = line
	return body
}

func (p *Parser) parseCase() ast.Expression {
	line := p.line()
	p.next() // case
	scrut := p.parseExpr()
	p.expect(lexer.OF, "'of'")
	var branches []*ast.CaseBranch
	for p.cur.Type != lexer.ESAC && p.cur.Type != lexer.EOF {
		bline := p.line()
		name := p.expect(lexer.OBJECTID, "identifier").Literal
		p.expect(lexer.COLON, "':'")
		typ := p.expect(lexer.TYPEID, "type identifier").Literal
		p.expect(lexer.DARROW, "'=>'")
		body := p.parseExpr()
		p.expect(lexer.SEMI, "';'")
		branches = append(branches, ast.NewCaseBranch(p.file, bline, name, typ, body))
	}
	p.expect(lexer.ESAC, "'esac'")
	return ast.NewCase(p.file, line, scrut, branches)
}
