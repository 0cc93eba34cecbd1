package cmd

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/purrlang/purr/internal/interp"
	"github.com/purrlang/purr/internal/lexer"
	"github.com/purrlang/purr/internal/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Purr session",
	Long: `Start an interactive read-eval-print loop.

Bindings persist between inputs. A line whose braces are not yet
balanced continues on the next line. Exit with Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "purr> ",
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	interpreter := interp.New(os.Stdout, interp.WithVerbose(verbose))

	fmt.Printf("purr %s — interactive session (Ctrl-D to exit)\n", Version)

	for {
		source, ok := readSnippet(rl)
		if !ok {
			return nil
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		l := lexer.New(source)
		p := parser.New(l)
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			for _, msg := range p.Errors() {
				fmt.Fprintln(os.Stderr, "parse error:", msg)
			}
			continue
		}

		result, err := interpreter.Interpret(program)
		if err != nil {
			var ie *interp.Error
			if goerrors.As(err, &ie) {
				fmt.Fprintln(os.Stderr, ie.Error())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		if result != nil {
			fmt.Println(result.String())
		}
	}
}

// readSnippet reads one input, continuing across lines until braces
// balance. Returns false when the session ends.
func readSnippet(rl *readline.Instance) (string, bool) {
	var lines []string
	depth := 0

	for {
		if len(lines) == 0 {
			rl.SetPrompt("purr> ")
		} else {
			rl.SetPrompt("  ... ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Discard the pending snippet on Ctrl-C.
			lines = nil
			depth = 0
			continue
		}
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}

		lines = append(lines, line)
		depth += braceDelta(line)
		if depth <= 0 {
			return strings.Join(lines, "\n"), true
		}
	}
}

// braceDelta counts brace nesting on a line, ignoring braces inside
// string literals and after a // line comment. Braces inside /* */ block
// comments are counted.
func braceDelta(line string) int {
	depth := 0
	inString := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return depth
		case ch == '{':
			depth++
		case ch == '}':
			depth--
		}
	}
	return depth
}
