package typecheck

import (
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/token"
)

func analyze(t *testing.T, src string) (*ast.Program, *semantic.Hierarchy) {
	t.Helper()
	l := lexer.New("test.cl", src)
	p := parser.New("test.cl", l)
	program := &ast.Program{}
	p.ParseProgram(program)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ctx := semantic.Analyze(program, token.NewTables())
	if !ctx.Errors.Empty() {
		t.Fatalf("unexpected semantic errors: %v", ctx.Errors.All())
	}
	return program, ctx.Hierarchy
}

func TestSubtypeBasics(t *testing.T) {
	_, h := analyze(t, `
class Animal {};
class Dog inherits Animal {};
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	if !Subtype(h, "Dog", "Animal", "Main") {
		t.Error("Dog should be a subtype of Animal")
	}
	if Subtype(h, "Animal", "Dog", "Main") {
		t.Error("Animal should not be a subtype of Dog")
	}
	if !Subtype(h, ast.NoType, "Dog", "Main") {
		t.Error("NoType should be a subtype of everything")
	}
	if !Subtype(h, ast.SelfType, "Main", "Main") {
		t.Error("SELF_TYPE should be a subtype of the enclosing class")
	}
	if !Subtype(h, "Main", ast.SelfType, "Main") {
		t.Error("the enclosing class should be a subtype of SELF_TYPE (permissive rule)")
	}
}

func TestLubCommonAncestor(t *testing.T) {
	_, h := analyze(t, `
class Animal {};
class Dog inherits Animal {};
class Cat inherits Animal {};
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	if got := Lub(h, []string{"Dog", "Cat"}, "Main"); got != "Animal" {
		t.Errorf("Lub(Dog, Cat) = %s, want Animal", got)
	}
	if got := Lub(h, []string{"Dog", "Dog"}, "Main"); got != "Dog" {
		t.Errorf("Lub(Dog, Dog) = %s, want Dog", got)
	}
	if got := Lub(h, []string{ast.SelfType, ast.SelfType}, "Main"); got != ast.SelfType {
		t.Errorf("Lub(SELF_TYPE, SELF_TYPE) = %s, want SELF_TYPE", got)
	}
}

func TestCheckerIfLubType(t *testing.T) {
	program, h := analyze(t, `
class Animal {};
class Dog inherits Animal {};
class Cat inherits Animal {};
class Main inherits IO {
	main() : Animal {
		if true then new Dog else new Cat fi
	};
};
`)
	result := Run(program, h)
	if !result.Errors.Empty() {
		t.Fatalf("unexpected type errors: %v", result.Errors.All())
	}

	var mainBody ast.Expression
	for _, c := range program.Classes {
		if c.Name == "Main" {
			mainBody = c.Features[0].(*ast.Method).Body
		}
	}
	if mainBody.Type() != "Animal" {
		t.Errorf("if-expression type = %s, want Animal", mainBody.Type())
	}
}

func TestCheckerDispatchArgMismatch(t *testing.T) {
	program, h := analyze(t, `
class Greeter {
	greet(name : String) : String { name };
};
class Main inherits IO {
	main() : SELF_TYPE {
		{
			(new Greeter).greet(1);
			self;
		}
	};
};
`)
	result := Run(program, h)
	found := false
	for _, d := range result.Errors.All() {
		if d.Kind == "DispatchArgMismatch" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DispatchArgMismatch diagnostic, got %v", result.Errors.All())
	}
}
