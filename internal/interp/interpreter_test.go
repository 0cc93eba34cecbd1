package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/purrlang/purr/internal/lexer"
	"github.com/purrlang/purr/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runProgram parses and evaluates source, returning stdout, the terminal
// value and any interpreter error.
func runProgram(t *testing.T, source, stdin string, opts ...Option) (string, Value, error) {
	t.Helper()

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors for source:\n%s", source)

	var out bytes.Buffer
	opts = append([]Option{WithInput(strings.NewReader(stdin))}, opts...)
	i := New(&out, opts...)
	result, err := i.Interpret(program)
	return out.String(), result, err
}

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "print with concatenation",
			source: `print "hello", "world" + "!"`,
			want:   "hello world!",
		},
		{
			name:   "println arithmetic",
			source: "a = 3\nb = 4\nprintln a * b",
			want:   "12\n",
		},
		{
			name:   "semicolon separated statements",
			source: `a = 3; b = 4; println a * b`,
			want:   "12\n",
		},
		{
			name:   "consecutive prints stay space separated",
			source: "print 1\nprint 2\nprint 3",
			want:   "1 2 3",
		},
		{
			name:   "println resets the line",
			source: "print 1\nprintln 2\nprint 3",
			want:   "1 2\n3",
		},
		{
			name:   "bare println",
			source: "println",
			want:   "\n",
		},
		{
			name:   "print booleans",
			source: `println true, false`,
			want:   "true false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runProgram(t, tt.source, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestForLoopPrints(t *testing.T) {
	out, _, err := runProgram(t, `for i in 0..3 { print i }`, "")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2", out)
}

func TestFactorial(t *testing.T) {
	source := `
func fact(n) {
	if n <= 1 { return 1 }
	return n * fact(n - 1)
}
println fact(5)
`
	out, _, err := runProgram(t, source, "")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestArrayLiteralAccess(t *testing.T) {
	out, _, err := runProgram(t, "a = [10, 20, 30]\nprintln a[1]", "")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)
}

func TestInputEcho(t *testing.T) {
	source := "x = input(\"? \")\nprintln x"
	out, _, err := runProgram(t, source, "hi\n")
	require.NoError(t, err)
	assert.Equal(t, "? hi\n", out)
}

func TestInputWithoutTrailingNewline(t *testing.T) {
	out, _, err := runProgram(t, "x = input()\nprintln x", "partial")
	require.NoError(t, err)
	assert.Equal(t, "partial\n", out)
}

func TestInputAtEOF(t *testing.T) {
	_, _, err := runProgram(t, "x = input()", "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
}

func TestTerminalValue(t *testing.T) {
	source := `
func answer() {
	return 6 * 7
}
answer()
`
	_, result, err := runProgram(t, source, "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "42", result.String())
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := runProgram(t, `print 1 / 0`, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "division by zero")
}

func TestArrayOutOfBounds(t *testing.T) {
	_, _, err := runProgram(t, "a = [1, 2]\nprintln a[5]", "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "out of bounds")
}

func TestInvalidOperation(t *testing.T) {
	_, _, err := runProgram(t, `print "x" - 1`, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "invalid operation")
}

func TestRecursionLimit(t *testing.T) {
	source := `
func f(n) {
	return f(n + 1)
}
f(0)
`
	_, _, err := runProgram(t, source, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RecursionError, ie.Kind)
}

func TestVisitorDepthLimit(t *testing.T) {
	// A long left-nested additive chain exhausts the visitor depth
	// before the host stack is at risk.
	source := "x = 0" + strings.Repeat(" + 1", 6000)
	_, _, err := runProgram(t, source, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RecursionError, ie.Kind)
	assert.Contains(t, ie.Message, "visitor depth")
}

func TestUndefinedName(t *testing.T) {
	_, _, err := runProgram(t, `println missing`, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "not defined")
}

func TestArityMismatch(t *testing.T) {
	source := `
func add(a, b) {
	return a + b
}
println add(1)
`
	_, _, err := runProgram(t, source, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "number of arguments")
}

func TestDuplicateParameter(t *testing.T) {
	source := `
func f(a, a) {
	return a
}
`
	_, _, err := runProgram(t, source, "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuntimeError, ie.Kind)
	assert.Contains(t, ie.Message, "duplicate parameter")
}

func TestFunctionScopesSeeGlobalsNotCaller(t *testing.T) {
	// inner reads the global x, not outer's local binding.
	source := `
func inner() {
	return x
}
func outer() {
	x = 99
	return inner()
}
x = 7
println outer()
`
	out, _, err := runProgram(t, source, "")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestErrorCarriesPosition(t *testing.T) {
	_, _, err := runProgram(t, "a = 1\nprintln missing", "")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 2, ie.Start.Line)
	assert.Greater(t, ie.Start.Column, 0)
}

func TestVerboseTrace(t *testing.T) {
	out, _, err := runProgram(t, "x = 1", "", WithVerbose(true))
	require.NoError(t, err)
	assert.Contains(t, out, "Visiting Assignment")
	assert.Contains(t, out, "Returned --> NumericLiteral: 1")
}

func TestMemoizationConsistency(t *testing.T) {
	// Re-running a pure program after Reset, which clears the call cache,
	// prints the same output as the first run.
	source := `
func fib(n) {
	if n < 2 { return n }
	return fib(n - 1) + fib(n - 2)
}
println fib(15)
`
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	var shared bytes.Buffer
	i := New(&shared)
	_, err := i.Interpret(program)
	require.NoError(t, err)

	first := shared.String()
	require.Equal(t, "610\n", first)

	i.Reset()
	shared.Reset()
	_, err = i.Interpret(program)
	require.NoError(t, err)
	assert.Equal(t, first, shared.String())
}

func TestMemoizationDisabled(t *testing.T) {
	source := `
func double(n) {
	return n * 2
}
println double(4)
println double(4)
`
	out, _, err := runProgram(t, source, "", WithMemoization(false))
	require.NoError(t, err)
	assert.Equal(t, "8\n8\n", out)
}
