package printer

import (
	"strings"
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New("test.cl", src)
	p := parser.New("test.cl", l)
	program := &ast.Program{}
	p.ParseProgram(program)
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return program
}

func TestPrintClassWithAttributeAndMethod(t *testing.T) {
	program := parse(t, `
class Counter inherits IO {
	count : Int <- 0;
	bump() : Int { count <- count + 1 };
};
`)
	out := Print(program)
	if !strings.Contains(out, "class Counter inherits IO") {
		t.Errorf("missing class header, got:\n%s", out)
	}
	if !strings.Contains(out, "attribute count : Int") {
		t.Errorf("missing attribute line, got:\n%s", out)
	}
	if !strings.Contains(out, "method bump() : Int") {
		t.Errorf("missing method line, got:\n%s", out)
	}
}

func TestPrintIfWhileLetCase(t *testing.T) {
	program := parse(t, `
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
	snaps.MatchSnapshot(t, Print(program))
}
