// Package driver sequences the compiler pipeline end to end: lexing,
// parsing, semantic analysis, type checking, and code generation,
// stopping after the first phase that reports a diagnostic (spec.md
// §2, §7, §9's "CompilerContext"). Grounded on the teacher's
// cmd/dwscript/cmd.compileScript, generalized from one bytecode-chunk
// target to Cool's multi-file, MIPS-emitting pipeline.
package driver

import (
	"fmt"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/codegen"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/typecheck"
)

// Source is one unit of input: a name used for diagnostics (a path, or
// "<stdin>") and its text.
type Source struct {
	Name string
	Text string
}

// Result is everything a caller might want out of a run: the emitted
// assembly on success, and every diagnostic collected before the run
// stopped.
type Result struct {
	Assembly    string
	Diagnostics []diag.Diagnostic
}

// Compile runs the full pipeline over one or more sources sharing a
// single Program and a single set of interner tables (spec.md §5:
// "the AST and interners are shared across files so that a program can
// be split into multiple files"). It returns as soon as a phase
// reports any diagnostic; later phases are skipped.
func Compile(sources []Source) (*Result, error) {
	tables := token.NewTables()
	program := &ast.Program{}

	for _, src := range sources {
		l := lexer.New(src.Name, src.Text)
		p := parser.New(src.Name, l)
		p.ParseProgram(program)

		if errs := p.Errors(); len(errs) > 0 {
			return &Result{Diagnostics: parseErrorsToDiagnostics(src.Name, errs)},
				fmt.Errorf("parsing failed with %d error(s)", len(errs))
		}
	}

	ctx := semantic.Analyze(program, tables)
	if !ctx.Errors.Empty() {
		return &Result{Diagnostics: ctx.Errors.All()},
			fmt.Errorf("semantic analysis failed with %d error(s)", ctx.Errors.Count())
	}

	tcResult := typecheck.Run(program, ctx.Hierarchy)
	if !tcResult.Errors.Empty() {
		return &Result{Diagnostics: tcResult.Errors.All()},
			fmt.Errorf("type checking failed with %d error(s)", tcResult.Errors.Count())
	}

	asm := codegen.Generate(program, ctx.Hierarchy, tcResult.Methods, tables)
	return &Result{Assembly: asm}, nil
}

func parseErrorsToDiagnostics(file string, errs []parser.Error) []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = diag.Diagnostic{File: file, Line: e.Pos.Line, Kind: "ParseError", Message: e.Message}
	}
	return out
}
