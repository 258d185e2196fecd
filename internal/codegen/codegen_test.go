package codegen

import (
	"strings"
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/typecheck"
	"github.com/gkampitakis/go-snaps/snaps"
)

func compileForCodegen(t *testing.T, src string) string {
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

	tc := typecheck.Run(program, ctx.Hierarchy)
	if !tc.Errors.Empty() {
		t.Fatalf("unexpected type errors: %v", tc.Errors.All())
	}

	return Generate(program, ctx.Hierarchy, tc.Methods, ctx.Tables)
}

func TestGenerateMinimalClassLayout(t *testing.T) {
	asm := compileForCodegen(t, `
class Main inherits IO {
	main() : SELF_TYPE { out_string("hi") };
};
`)

	for _, want := range []string{
		"Main_prototype:",
		"Main_init:",
		"Main_disptable:",
		"Main.main:",
		"class_objTab:",
		"class_parentTag:",
	} {
		if !strings.Contains(asm, want) {
			t.Errorf("expected assembly to contain %q, got:\n%s", want, asm)
		}
	}
}

// labelReference finds the operand of the first `la $a0, <label>`
// instruction emitted for a `la $a0, <prefix><N>` pattern, returning
// the full label name, or "" if none is found.
func labelReference(asm, prefix string) string {
	idx := strings.Index(asm, "la $a0, "+prefix)
	if idx == -1 {
		return ""
	}
	rest := asm[idx+len("la $a0, "):]
	end := strings.IndexAny(rest, "\n")
	if end == -1 {
		end = len(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// labelBody returns the text of asm from label (inclusive) up to the
// next blank line, or "" if label is never defined.
func labelBody(asm, label string) string {
	start := strings.Index(asm, label+":")
	if start == -1 {
		return ""
	}
	body := asm[start:]
	if end := strings.Index(body, "\n\n"); end != -1 {
		body = body[:end]
	}
	return body
}

func TestGenerateMethodBodyLiteralsProduceDefinedConstants(t *testing.T) {
	asm := compileForCodegen(t, `
class Main inherits IO {
	main() : SELF_TYPE { out_string("hi") };
};
`)

	label := labelReference(asm, "str_const")
	if label == "" {
		t.Fatalf("expected a `la $a0, str_const<i>` reference for the \"hi\" literal, got:\n%s", asm)
	}
	body := labelBody(asm, label)
	if body == "" {
		t.Fatalf("label %s referenced by out_string(\"hi\") was never defined in .data, got:\n%s", label, asm)
	}
	if !strings.Contains(body, "hi") {
		t.Errorf("expected %s's payload to contain \"hi\", got:\n%s", label, body)
	}

	asm = compileForCodegen(t, `
class Main inherits IO {
	main() : Int { 1 + 2 * 3 };
};
`)
	for _, literal := range []string{"1", "2", "3"} {
		found := false
		for i := 0; i < 8; i++ {
			body := labelBody(asm, intConstLabel(i))
			if body == "" {
				continue
			}
			for _, line := range strings.Split(body, "\n") {
				if strings.TrimSpace(line) == ".word "+literal {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("expected an int_const<i> defined in .data with payload %s, got:\n%s", literal, asm)
		}
	}
}

func TestGenerateArithmeticAndDispatchSnapshot(t *testing.T) {
	asm := compileForCodegen(t, `
class Adder {
	add(a : Int, b : Int) : Int { a + b };
};
class Main inherits IO {
	adder : Adder <- new Adder;
	main() : SELF_TYPE { out_int(adder.add(2, 3)) };
};
`)
	snaps.MatchSnapshot(t, asm)
}

func TestGenerateOverrideKeepsDispatchSlot(t *testing.T) {
	asm := compileForCodegen(t, `
class A {
	greet() : String { "a" };
};
class B inherits A {
	greet() : String { "b" };
};
class Main inherits IO {
	main() : SELF_TYPE { out_string((new B).greet()) };
};
`)
	if !strings.Contains(asm, "B.greet:") {
		t.Errorf("expected override B.greet label, got:\n%s", asm)
	}

	disptableStart := strings.Index(asm, "B_disptable:")
	if disptableStart == -1 {
		t.Fatalf("expected B_disptable label, got:\n%s", asm)
	}
	disptableBody := asm[disptableStart:]
	if end := strings.Index(disptableBody, "\n\n"); end != -1 {
		disptableBody = disptableBody[:end]
	}
	if !strings.Contains(disptableBody, "B.greet") {
		t.Errorf("expected B_disptable's greet slot to point at B.greet, got:\n%s", disptableBody)
	}
	if strings.Contains(disptableBody, "A.greet") {
		t.Errorf("B_disptable's greet slot should have been overwritten to B.greet, not A.greet, got:\n%s", disptableBody)
	}
}
