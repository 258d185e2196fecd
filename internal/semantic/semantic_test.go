package semantic

import (
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/token"
)

func parseAndAnalyze(t *testing.T, src string) *Context {
	t.Helper()
	l := lexer.New("test.cl", src)
	p := parser.New("test.cl", l)
	program := &ast.Program{}
	p.ParseProgram(program)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return Analyze(program, token.NewTables())
}

func TestAnalyzeInstallsBuiltins(t *testing.T) {
	ctx := parseAndAnalyze(t, `class Main inherits IO { main() : SELF_TYPE { self }; };`)
	if !ctx.Errors.Empty() {
		t.Fatalf("unexpected errors: %v", ctx.Errors.All())
	}
	for _, name := range []string{"Object", "IO", "Int", "Bool", "String", "Main"} {
		if _, ok := ctx.Hierarchy.Classes[name]; !ok {
			t.Errorf("expected builtin class %s to be installed", name)
		}
	}
	if ctx.Hierarchy.Parent["Main"] != "IO" {
		t.Errorf("Main's parent = %s, want IO", ctx.Hierarchy.Parent["Main"])
	}
	if ctx.Hierarchy.Parent["Object"] != ast.NoClass {
		t.Errorf("Object's parent = %s, want NoClass", ctx.Hierarchy.Parent["Object"])
	}
}

func TestAnalyzeMissingMain(t *testing.T) {
	ctx := parseAndAnalyze(t, `class Foo { };`)
	found := false
	for _, d := range ctx.Errors.All() {
		if d.Kind == diag.MainMissing {
			found = true
		}
	}
	if !found {
		t.Errorf("expected MainMissing diagnostic, got %v", ctx.Errors.All())
	}
}

func TestAnalyzeInheritanceCycle(t *testing.T) {
	ctx := parseAndAnalyze(t, `
class A inherits B { };
class B inherits A { };
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	found := false
	for _, d := range ctx.Errors.All() {
		if d.Kind == diag.InheritanceCycle {
			found = true
		}
	}
	if !found {
		t.Errorf("expected InheritanceCycle diagnostic, got %v", ctx.Errors.All())
	}
}

func TestAnalyzeForbiddenParent(t *testing.T) {
	ctx := parseAndAnalyze(t, `
class Weird inherits Int { };
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	found := false
	for _, d := range ctx.Errors.All() {
		if d.Kind == diag.IllegalInheritance {
			found = true
		}
	}
	if !found {
		t.Errorf("expected IllegalInheritance diagnostic, got %v", ctx.Errors.All())
	}
}

func TestAnalyzeDuplicateClass(t *testing.T) {
	ctx := parseAndAnalyze(t, `
class Foo { };
class Foo { };
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	found := false
	for _, d := range ctx.Errors.All() {
		if d.Kind == diag.DuplicateClass {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DuplicateClass diagnostic, got %v", ctx.Errors.All())
	}
}

func TestAnalyzeUnknownParent(t *testing.T) {
	ctx := parseAndAnalyze(t, `
class Foo inherits Ghost { };
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	found := false
	for _, d := range ctx.Errors.All() {
		if d.Kind == diag.UnknownParent {
			found = true
		}
	}
	if !found {
		t.Errorf("expected UnknownParent diagnostic, got %v", ctx.Errors.All())
	}
}

func TestHierarchyAncestorsAndIsSubclass(t *testing.T) {
	ctx := parseAndAnalyze(t, `
class Animal { };
class Dog inherits Animal { };
class Main inherits IO { main() : SELF_TYPE { self }; };
`)
	h := ctx.Hierarchy
	ancestors := h.Ancestors("Dog")
	want := []string{"Dog", "Animal", "Object"}
	if len(ancestors) != len(want) {
		t.Fatalf("got %v, want %v", ancestors, want)
	}
	for i := range want {
		if ancestors[i] != want[i] {
			t.Errorf("ancestor %d: got %s, want %s", i, ancestors[i], want[i])
		}
	}
	if !h.IsSubclass("Dog", "Animal") {
		t.Error("Dog should be a subclass of Animal")
	}
	if h.IsSubclass("Animal", "Dog") {
		t.Error("Animal should not be a subclass of Dog")
	}
	if !h.IsSubclass("Dog", "Dog") {
		t.Error("a class should be its own subclass")
	}
}
