package cmd

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/purrlang/purr/internal/errors"
	"github.com/purrlang/purr/internal/interp"
	"github.com/purrlang/purr/internal/lexer"
	"github.com/purrlang/purr/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	noMemo   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Purr file or inline program",
	Long: `Execute a Purr program from a file or inline source.

Examples:
  # Run a script file
  purr run script.purr

  # Evaluate an inline program
  purr run -e 'println "Hello, World!"'

  # Run with AST dump (for debugging)
  purr run --dump-ast script.purr

  # Run without function call memoization
  purr run --no-memo script.purr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&noMemo, "no-memo", false, "disable function call memoization")
}

func runScript(_ *cobra.Command, args []string) error {
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

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	interpreter := interp.New(os.Stdout,
		interp.WithVerbose(verbose),
		interp.WithMemoization(!noMemo),
	)

	if _, err := interpreter.Interpret(program); err != nil {
		var ie *interp.Error
		if goerrors.As(err, &ie) {
			diag := errors.New(ie.Start, ie.End, ie.Error(), input, filename)
			fmt.Fprintln(os.Stderr, diag.Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}

// readInput resolves the program source from the -e flag or a file path.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
