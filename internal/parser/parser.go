// Package parser implements a recursive-descent/precedence-climbing
// parser for Cool, producing the internal/ast tree the rest of the
// pipeline consumes. Like the lexer, the parser is external to the
// compiler's specified core (spec.md §1) but is required to drive it
// from real source text.
package parser

import (
	"fmt"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
)

// Error is a single parse error with source position.
type Error struct {
	Pos     lexer.Position
	Message string
}

// Parser consumes a token stream from a Lexer and builds an AST.
type Parser struct {
	file string
	l    *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []Error
}

// New constructs a Parser reading from l, attributing nodes to file.
func New(file string, l *lexer.Lexer) *Parser {
	p := &Parser{file: file, l: l}
	p.next()
	p.next()
	for _, e := range l.Errors() {
		p.errors = append(p.errors, Error{Message: e})
	}
	return p
}

// Errors returns accumulated parse errors.
func (p *Parser) Errors() []Error { return p.errors }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) expect(t lexer.Type, what string) lexer.Token {
	if p.cur.Type != t {
		p.errorf(p.cur.Pos, "expected %s, got %q", what, p.cur.Literal)
		return p.cur
	}
	tok := p.cur
	p.next()
	return tok
}

func (p *Parser) line() int { return p.cur.Pos.Line }

// ParseProgram parses the token stream into classes, appended to prog
// (so multiple source files share one Program, per spec.md §5/§6).
func (p *Parser) ParseProgram(prog *ast.Program) {
	for p.cur.Type != lexer.EOF {
		if p.cur.Type != lexer.CLASS {
			p.errorf(p.cur.Pos, "expected class definition, got %q", p.cur.Literal)
			p.next()
			continue
		}
		c := p.parseClass()
		if c != nil {
			prog.Classes = append(prog.Classes, c)
		}
		p.expect(lexer.SEMI, "';'")
	}
}

func (p *Parser) parseClass() *ast.Class {
	line := p.line()
	p.next() // 'class'
	name := p.expect(lexer.TYPEID, "type identifier").Literal

	parent := "Object"
	if p.cur.Type == lexer.INHERITS {
		p.next()
		parent = p.expect(lexer.TYPEID, "type identifier").Literal
	}

	p.expect(lexer.LBRACE, "'{'")
	var features []ast.Feature
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		f := p.parseFeature()
		if f != nil {
			features = append(features, f)
		}
		p.expect(lexer.SEMI, "';'")
	}
	p.expect(lexer.RBRACE, "'}'")

	return ast.NewClass(p.file, line, name, parent, features)
}

func (p *Parser) parseFeature() ast.Feature {
	line := p.line()
	name := p.expect(lexer.OBJECTID, "identifier").Literal

	if p.cur.Type == lexer.LPAREN {
		p.next()
		var formals []*ast.Formal
		for p.cur.Type != lexer.RPAREN {
			formals = append(formals, p.parseFormal())
			if p.cur.Type == lexer.COMMA {
				p.next()
			} else {
				break
			}
		}
		p.expect(lexer.RPAREN, "')'")
		p.expect(lexer.COLON, "':'")
		retType := p.expect(lexer.TYPEID, "type identifier").Literal
		p.expect(lexer.LBRACE, "'{'")
		body := p.parseExpr()
		p.expect(lexer.RBRACE, "'}'")
		return ast.NewMethod(p.file, line, name, formals, retType, body)
	}

	p.expect(lexer.COLON, "':'")
	typ := p.expect(lexer.TYPEID, "type identifier").Literal
	var init ast.Expression = ast.NewNoExpr(p.file, line)
	if p.cur.Type == lexer.ASSIGN {
		p.next()
		init = p.parseExpr()
	}
	return ast.NewAttribute(p.file, line, name, typ, init)
}

func (p *Parser) parseFormal() *ast.Formal {
	line := p.line()
	name := p.expect(lexer.OBJECTID, "identifier").Literal
	p.expect(lexer.COLON, "':'")
	typ := p.expect(lexer.TYPEID, "type identifier").Literal
	return ast.NewFormal(p.file, line, name, typ)
}
