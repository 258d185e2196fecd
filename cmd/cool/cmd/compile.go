package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/driver"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/printer"
	"github.com/spf13/cobra"
)

var (
	outputFile     string
	compileVerbose bool
	dumpAST        bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "Compile Cool source files to MIPS assembly",
	Long: `Compile one or more Cool (.cl) source files to SPIM-style MIPS
assembly.

All files are parsed into a single program, so classes may be split
across files. With no files, the source is read from standard input
(named <stdin>) and the assembly is written to output.s. Compilation stops at the first phase (parsing, semantic
analysis, type checking, code generation) that reports a diagnostic;
every diagnostic from that phase is printed.

Examples:
  # Compile a single file, writing <input>.s
  cool compile hello.cl

  # Compile several files into one assembly file
  cool compile list.cl main.cl -o list.s`,
	Args: cobra.ArbitraryArgs,
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <first input>.s, or output.s for stdin)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
	compileCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed AST to stderr before compiling")
}

func compileScript(_ *cobra.Command, args []string) error {
	sources := make([]driver.Source, len(args))
	for i, name := range args {
		content, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", name, err)
		}
		sources[i] = driver.Source{Name: name, Text: string(content)}
	}
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		sources = []driver.Source{{Name: "<stdin>", Text: string(content)}}
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", strings.Join(args, ", "))
	}

	if dumpAST {
		dumpParsedAST(sources)
	}

	result, err := driver.Compile(sources)
	if err != nil {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return err
	}

	out := outputFile
	if out == "" && len(args) == 0 {
		out = "output.s"
	} else if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".s"
	}

	if err := os.WriteFile(out, []byte(result.Assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", out, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
	}

	return nil
}

// dumpParsedAST re-parses sources independently of driver.Compile just
// to print the tree; parse errors here are silently left for the real
// compile pass to report.
func dumpParsedAST(sources []driver.Source) {
	program := &ast.Program{}
	for _, src := range sources {
		l := lexer.New(src.Name, src.Text)
		p := parser.New(src.Name, l)
		p.ParseProgram(program)
		if len(p.Errors()) > 0 {
			return
		}
	}
	fmt.Fprint(os.Stderr, printer.Print(program))
}
