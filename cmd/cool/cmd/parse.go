package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/printer"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Cool file and print its AST",
	Long: `Parse Cool source code and print its abstract syntax tree.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	var input, filename string

	if len(args) == 1 {
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	} else {
		filename = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(filename, input)
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
