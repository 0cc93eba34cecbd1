// Package interp implements the tree-walking evaluator for Purr.
//
// The interpreter consumes a fully constructed AST and interacts with the
// host only through its input reader and output writer. Evaluation is
// single-threaded and synchronous; environments are owned by their
// creating activation and dropped when it returns.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/purrlang/purr/internal/ast"
)

const (
	// maxVisitDepth bounds total node-visit nesting. The guard is an
	// explicit counter rather than a host stack limit so behavior is
	// portable.
	maxVisitDepth = 5470

	// internalRecursionLimit bounds active user function calls.
	internalRecursionLimit = 1010
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithInput sets the reader consumed by input expressions. Defaults to
// standard input.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) {
		i.in = bufio.NewReader(r)
	}
}

// WithVerbose enables the per-visit diagnostic trace.
func WithVerbose(verbose bool) Option {
	return func(i *Interpreter) {
		i.verbose = verbose
	}
}

// WithMemoization enables or disables the function call cache. It is on
// by default; see CallCache for the purity assumption it makes.
func WithMemoization(enabled bool) Option {
	return func(i *Interpreter) {
		i.memoize = enabled
	}
}

// Interpreter evaluates a program AST.
type Interpreter struct {
	out     io.Writer
	in      *bufio.Reader
	verbose bool
	memoize bool

	globalEnv  *Environment
	currentEnv *Environment

	cache *CallCache

	visitorDepth   int
	recursionCount int

	// pendingSpace tracks the print contract: consecutive print output on
	// one line is separated by exactly one space.
	pendingSpace bool
}

// New creates an Interpreter writing to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		out:     out,
		in:      bufio.NewReader(os.Stdin),
		memoize: true,
		cache:   NewCallCache(),
	}
	i.globalEnv = NewEnvironment("global", 1)
	i.currentEnv = i.globalEnv

	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GlobalEnv returns the global environment. It persists across calls to
// Interpret until Reset replaces it.
func (i *Interpreter) GlobalEnv() *Environment {
	return i.globalEnv
}

// Reset discards all bindings, cached call results and counters so the
// interpreter can run another independent program.
func (i *Interpreter) Reset() {
	i.globalEnv = NewEnvironment("global", 1)
	i.currentEnv = i.globalEnv
	i.cache.Reset()
	i.visitorDepth = 0
	i.recursionCount = 0
	i.pendingSpace = false
}

// Interpret evaluates a program and returns the last evaluated value of
// its body, which may be nil.
func (i *Interpreter) Interpret(program *ast.Program) (Value, error) {
	return i.evalProgram(program)
}

func (i *Interpreter) trace(format string, args ...any) {
	if i.verbose {
		fmt.Fprintf(i.out, format+"\n", args...)
	}
}

// nodeLabel names a node for trace output.
func nodeLabel(node ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

// eval dispatches a node to its handler. The visitor-depth counter guards
// against unbounded nesting independently of the call-recursion counter.
func (i *Interpreter) eval(node ast.Node) (Value, error) {
	if i.visitorDepth >= maxVisitDepth {
		return nil, newRecursionErrorf(node, "visitor depth exceeded (limit %d)", maxVisitDepth)
	}
	i.visitorDepth++
	defer func() { i.visitorDepth-- }()

	label := nodeLabel(node)
	i.trace("Visiting %s", label)

	var result Value
	var err error

	switch n := node.(type) {
	case *ast.Program:
		result, err = i.evalProgram(n)
	case *ast.FuncDef:
		err = i.evalFuncDef(n)
	case *ast.Body:
		result, err = i.evalBody(n)
	case *ast.Return:
		result, err = i.evalReturn(n)
	case *ast.Break:
		result = &BreakSignal{}
	case *ast.Continue:
		result = &ContinueSignal{}
	case *ast.If:
		result, err = i.evalIf(n)
	case *ast.While:
		result, err = i.evalWhile(n)
	case *ast.For:
		result, err = i.evalFor(n)
	case *ast.ArrayDef:
		err = i.evalArrayDef(n)
	case *ast.ArrayAccess:
		result, err = i.evalArrayAccess(n)
	case *ast.ArrayUpdate:
		err = i.evalArrayUpdate(n)
	case *ast.Assignment:
		err = i.evalAssignment(n)
	case *ast.Call:
		result, err = i.evalCall(n)
	case *ast.Input:
		result, err = i.evalInput(n)
	case *ast.Print:
		err = i.evalPrint(n)
	case *ast.PostfixExpr:
		result, err = i.evalPostfix(n)
	case *ast.Expr:
		result, err = i.evalBinary(n, n.Left, n.Operator, n.Right)
	case *ast.SimpleExpr:
		result, err = i.evalBinary(n, n.Left, n.Operator, n.Right)
	case *ast.Term:
		result, err = i.evalBinary(n, n.Left, n.Operator, n.Right)
	case *ast.Factor:
		result, err = i.evalFactor(n)
	case *ast.Operator:
		result = &OperatorValue{Op: n.Value}
	case *ast.Identifier:
		result = &IdentifierValue{Name: n.Value}
	case *ast.NumericLiteral:
		if n.IsFloat {
			result = &FloatValue{Value: n.Float}
		} else {
			result = &IntegerValue{Value: n.Int}
		}
	case *ast.StringLiteral:
		result = &StringValue{Value: n.Value}
	case *ast.BooleanLiteral:
		result = &BooleanValue{Value: n.Value}
	default:
		err = newRuntimeErrorf(node, "no handler for node %s", label)
	}

	if err != nil {
		return nil, err
	}
	if result != nil {
		i.trace("Returned --> %s: %s", label, result)
	}
	return result, nil
}

// evalProgram installs the program's functions in the global scope and
// then runs its body, returning the body's last evaluated value. Control
// outcomes that reach the top level are consumed here.
func (i *Interpreter) evalProgram(program *ast.Program) (Value, error) {
	for _, fn := range program.Functions {
		if _, err := i.eval(fn); err != nil {
			return nil, err
		}
	}
	if program.Body == nil {
		return nil, nil
	}

	result, err := i.eval(program.Body)
	if err != nil {
		return nil, err
	}
	switch v := result.(type) {
	case *ReturnValue:
		return v.Value, nil
	case *BreakSignal, *ContinueSignal:
		return nil, nil
	}
	return result, nil
}

// evalFuncDef installs a function binding in the current scope.
func (i *Interpreter) evalFuncDef(fn *ast.FuncDef) error {
	var params []string
	if fn.Args != nil {
		seen := make(map[string]struct{}, len(fn.Args.Items))
		for _, item := range fn.Args.Items {
			ident, ok := item.(*ast.Identifier)
			if !ok {
				return newRuntimeErrorf(item, "function parameter must be an identifier")
			}
			if _, dup := seen[ident.Value]; dup {
				return newRuntimeErrorf(fn.Args, "duplicate parameter %q", ident.Value)
			}
			seen[ident.Value] = struct{}{}
			params = append(params, ident.Value)
		}
	}

	sym := &FunctionSymbol{Name: fn.Name, Params: params, Body: fn.Body}
	if err := i.currentEnv.DefineFunction(sym); err != nil {
		return newRuntimeErrorf(fn, "%s", err)
	}
	return nil
}

// evalBody runs the statements of a body in order. The first control
// outcome stops the body and propagates; otherwise the body yields the
// last non-null statement value.
func (i *Interpreter) evalBody(body *ast.Body) (Value, error) {
	var last Value
	for _, stmt := range body.Statements {
		result, err := i.eval(stmt)
		if err != nil {
			return nil, err
		}
		if result != nil && isControl(result) {
			return result, nil
		}
		if result != nil {
			last = result
		}
	}
	return last, nil
}

func (i *Interpreter) evalReturn(stmt *ast.Return) (Value, error) {
	if stmt.Value == nil {
		return &ReturnValue{}, nil
	}
	result, err := i.eval(stmt.Value)
	if err != nil {
		return nil, err
	}
	result, err = i.resolveValue(result, stmt.Value)
	if err != nil {
		return nil, err
	}
	return &ReturnValue{Value: result}, nil
}

// evalCall executes a user function. Arguments are evaluated in the
// caller's scope; the function body runs in a fresh scope parented to the
// global environment. Results are memoized by the local environment's
// fingerprint when memoization is enabled.
func (i *Interpreter) evalCall(call *ast.Call) (Value, error) {
	if i.recursionCount > internalRecursionLimit {
		i.recursionCount = 0
		return nil, newRecursionErrorf(call, "recursion limit exceeded (limit %d)", internalRecursionLimit)
	}
	i.recursionCount++
	defer func() {
		if i.recursionCount > 0 {
			i.recursionCount--
		}
	}()

	fn, ok := i.currentEnv.LookupFunction(call.Name)
	if !ok {
		return nil, newRuntimeErrorf(call, "function %q is not defined", call.Name)
	}

	args, err := i.evalArgs(call.Args)
	if err != nil {
		return nil, err
	}
	if len(args) != len(fn.Params) {
		return nil, newRuntimeErrorf(call.Args,
			"invalid number of arguments: expected %d but got %d",
			len(fn.Params), len(args))
	}

	local := NewEnclosedEnvironment(call.Name, i.currentEnv.Level()+1, i.globalEnv)
	for idx, param := range fn.Params {
		local.DefineVariable(param, args[idx])
	}

	caller := i.currentEnv
	i.currentEnv = local
	defer func() { i.currentEnv = caller }()

	key := local.Fingerprint()
	if i.memoize {
		if cached, ok := i.cache.Get(key); ok {
			return cached, nil
		}
	}

	result, err := i.eval(fn.Body)
	if err != nil {
		return nil, err
	}
	switch v := result.(type) {
	case *ReturnValue:
		result = v.Value
	case *BreakSignal, *ContinueSignal:
		// A loop signal cannot cross a call boundary.
		result = nil
	}

	if i.memoize {
		i.cache.Put(key, result)
	}
	return result, nil
}

// evalArgs evaluates an argument list in the current scope, resolving
// identifier references.
func (i *Interpreter) evalArgs(args *ast.Args) ([]Value, error) {
	if args == nil {
		return nil, nil
	}
	values := make([]Value, 0, len(args.Items))
	for _, item := range args.Items {
		v, err := i.evalOperand(item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// evalInput writes the prompt (if any) and reads one line from the
// interpreter's input.
func (i *Interpreter) evalInput(in *ast.Input) (Value, error) {
	if in.Prompt != "" {
		fmt.Fprint(i.out, in.Prompt)
		i.pendingSpace = false
	}

	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return nil, newRuntimeErrorf(in, "unexpected end of input")
	}
	line = strings.TrimRight(line, "\r\n")
	return &StringValue{Value: line}, nil
}

// evalPrint writes the arguments separated by single spaces. Output from
// consecutive prints on the same line stays single-space separated;
// println ends the line.
func (i *Interpreter) evalPrint(p *ast.Print) error {
	args, err := i.evalArgs(p.Args)
	if err != nil {
		return err
	}

	parts := make([]string, len(args))
	for idx, arg := range args {
		parts[idx] = arg.String()
	}

	if len(parts) > 0 {
		if i.pendingSpace {
			fmt.Fprint(i.out, " ")
		}
		fmt.Fprint(i.out, strings.Join(parts, " "))
		i.pendingSpace = true
	}
	if p.Newline {
		fmt.Fprintln(i.out)
		i.pendingSpace = false
	}
	return nil
}
