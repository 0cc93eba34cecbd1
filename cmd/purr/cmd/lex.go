package cmd

import (
	"fmt"

	"github.com/purrlang/purr/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Purr file or inline program",
	Long: `Tokenize (lex) a Purr program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Purr source code is tokenized.

Examples:
  # Tokenize a script file
  purr lex script.purr

  # Tokenize inline code
  purr lex -e 'x = 42'

  # Show token types and positions
  purr lex --show-type --show-pos script.purr

  # Show only errors (illegal tokens)
  purr lex --only-errors script.purr`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
		if onlyErrors && tok.Type != lexer.ILLEGAL {
			continue
		}

		line := fmt.Sprintf("%q", tok.Literal)
		if showType {
			line = fmt.Sprintf("%-12s %s", tok.Type, line)
		}
		if showPos {
			line = fmt.Sprintf("%8s  %s", tok.Pos, line)
		}
		fmt.Println(line)
	}
	return nil
}
