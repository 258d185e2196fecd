package cmd

import (
	"fmt"
	"os"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/printer"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Parse a Cool file and pretty-print its AST",
	Long: `Parse Cool source code and print an indented, depth-first dump of
its abstract syntax tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(_ *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	l := lexer.New(filename, string(data))
	p := parser.New(filename, l)
	program := &ast.Program{}
	p.ParseProgram(program)

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s:%d: error: %s\n", filename, e.Pos.Line, e.Message)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Print(printer.Print(program))
	return nil
}
