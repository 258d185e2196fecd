package parser

import (
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	l := lexer.New("test.cl", src)
	p := New("test.cl", l)
	program := &ast.Program{}
	p.ParseProgram(program)
	return program, p
}

func TestParseClassWithInheritance(t *testing.T) {
	program, p := parseSrc(t, `
class Dog inherits Animal {
	name : String;
	bark() : String { "woof" };
};
`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(program.Classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(program.Classes))
	}
	c := program.Classes[0]
	if c.Name != "Dog" || c.Parent != "Animal" {
		t.Errorf("got class %s inherits %s, want Dog inherits Animal", c.Name, c.Parent)
	}
	if len(c.Features) != 2 {
		t.Fatalf("got %d features, want 2", len(c.Features))
	}
	attr, ok := c.Features[0].(*ast.Attribute)
	if !ok || attr.Name != "name" || attr.Type != "String" {
		t.Errorf("got feature %#v, want attribute name : String", c.Features[0])
	}
	method, ok := c.Features[1].(*ast.Method)
	if !ok || method.Name != "bark" || method.ReturnType != "String" {
		t.Errorf("got feature %#v, want method bark() : String", c.Features[1])
	}
}

func TestParseClassDefaultsToObjectParent(t *testing.T) {
	program, p := parseSrc(t, `class Foo { };`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if program.Classes[0].Parent != "Object" {
		t.Errorf("got parent %s, want Object", program.Classes[0].Parent)
	}
}

func TestParseMultipleFormals(t *testing.T) {
	program, p := parseSrc(t, `
class Adder {
	add(a : Int, b : Int) : Int { a + b };
};
`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	method := program.Classes[0].Features[0].(*ast.Method)
	if len(method.Formals) != 2 {
		t.Fatalf("got %d formals, want 2", len(method.Formals))
	}
	if method.Formals[0].Name != "a" || method.Formals[1].Name != "b" {
		t.Errorf("got formals %v", method.Formals)
	}
	if _, ok := method.Body.(*ast.Plus); !ok {
		t.Errorf("got body %#v, want *ast.Plus", method.Body)
	}
}

func TestParseDispatchChainOnParenthesizedReceiver(t *testing.T) {
	program, p := parseSrc(t, `
class Greeter {
	greet(name : String) : String { name };
};
class Main inherits IO {
	main() : SELF_TYPE {
		{
			(new Greeter).greet("x");
			self;
		}
	};
};
`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	main := program.Classes[1].Features[0].(*ast.Method)
	block, ok := main.Body.(*ast.Block)
	if !ok {
		t.Fatalf("got body %#v, want *ast.Block", main.Body)
	}
	if len(block.Exprs) != 2 {
		t.Fatalf("got %d statements, want 2", len(block.Exprs))
	}
	dispatch, ok := block.Exprs[0].(*ast.DynamicDispatch)
	if !ok {
		t.Fatalf("got %#v, want *ast.DynamicDispatch", block.Exprs[0])
	}
	if _, ok := dispatch.Expr.(*ast.New); !ok {
		t.Errorf("got receiver %#v, want *ast.New", dispatch.Expr)
	}
	if dispatch.Method != "greet" {
		t.Errorf("got method %s, want greet", dispatch.Method)
	}
}

func TestParseIfWhileLetCase(t *testing.T) {
	_, p := parseSrc(t, `
class Main inherits IO {
	main() : Object {
		let x : Int <- 0 in
			if x < 10 then
				while x < 10 loop x <- x + 1 pool
			else
				case x of
					n : Int => n;
					o : Object => o;
				esac
			fi
	};
};
`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseStaticDispatch(t *testing.T) {
	program, p := parseSrc(t, `
class Animal {
	speak() : String { "..." };
};
class Dog inherits Animal {
	speak() : String { self@Animal.speak() };
};
`)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	method := program.Classes[1].Features[0].(*ast.Method)
	dispatch, ok := method.Body.(*ast.StaticDispatch)
	if !ok {
		t.Fatalf("got %#v, want *ast.StaticDispatch", method.Body)
	}
	if dispatch.AncestorType != "Animal" || dispatch.Method != "speak" {
		t.Errorf("got ancestor %s method %s, want Animal/speak", dispatch.AncestorType, dispatch.Method)
	}
}

func TestParseMissingSemiRecordsError(t *testing.T) {
	_, p := parseSrc(t, `class Foo { a : Int }`)
	if errs := p.Errors(); len(errs) == 0 {
		t.Error("expected a parse error for the missing ';' after the attribute")
	}
}
