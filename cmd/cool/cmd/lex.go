package cmd

import (
	"fmt"
	"os"

	"github.com/coolc/coolc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Cool file and print the resulting tokens",
	Long: `Tokenize (lex) a Cool program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Cool source code is scanned.

Examples:
  # Tokenize a source file
  cool lex hello.cl

  # Tokenize inline code
  cool lex -e "class Main inherits IO {};"

  # Show token types and positions
  cool lex --show-type --show-pos hello.cl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexEval != "":
		input, filename = lexEval, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(filename, input)

	tokenCount := 0
	for {
		tok := l.NextToken()
		if onlyErrors && tok.Type != lexer.ILLEGAL {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}

		tokenCount++
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}

	switch tok.Type {
	case lexer.EOF:
		output += " EOF"
	case lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	default:
		if tok.Literal == "" {
			output += fmt.Sprintf(" %s", tok.Type)
		} else {
			output += fmt.Sprintf(" %q", tok.Literal)
		}
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
