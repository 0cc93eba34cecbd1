package cmd

import (
	"fmt"
	"os"

	"github.com/purrlang/purr/internal/ast"
	"github.com/purrlang/purr/internal/errors"
	"github.com/purrlang/purr/internal/lexer"
	"github.com/purrlang/purr/internal/parser"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Purr source code and display the AST",
	Long: `Parse Purr source code and display the Abstract Syntax Tree (AST).

Examples:
  # Show the parsed program
  purr parse script.purr

  # Dump the AST as JSON
  purr parse --json script.purr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "dump the AST as JSON")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		diags := errors.FromStringErrors(p.Errors(), input, filename)
		fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseJSON {
		out, err := ast.EncodeJSON(program)
		if err != nil {
			return fmt.Errorf("failed to encode AST: %w", err)
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(program.String())
	return nil
}
