package interp

import (
	"fmt"

	"github.com/purrlang/purr/internal/ast"
	"github.com/purrlang/purr/internal/lexer"
)

// ErrorKind categorises interpreter errors.
type ErrorKind string

const (
	// RuntimeError covers semantic violations: undefined names, arity
	// mismatches, array bounds, division by zero, invalid operand
	// combinations, non-integer loop ranges.
	RuntimeError ErrorKind = "Runtime"
	// TypeError covers unary operators applied to incompatible operands.
	TypeError ErrorKind = "Type"
	// RecursionError is raised when the internal recursion limit or the
	// visitor depth limit is exceeded.
	RecursionError ErrorKind = "Recursion"
)

// Error is an interpreter error with its kind and the source span of the
// offending node.
type Error struct {
	Kind    ErrorKind
	Message string
	Start   lexer.Position
	End     lexer.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s",
		e.Kind, e.Start.Line, e.Start.Column, e.Message)
}

func newError(kind ErrorKind, node ast.Node, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Start:   node.Pos(),
		End:     node.End(),
	}
}

func newRuntimeErrorf(node ast.Node, format string, args ...any) *Error {
	return newError(RuntimeError, node, format, args...)
}

func newTypeErrorf(node ast.Node, format string, args ...any) *Error {
	return newError(TypeError, node, format, args...)
}

func newRecursionErrorf(node ast.Node, format string, args ...any) *Error {
	return newError(RecursionError, node, format, args...)
}

// invalidOperationError standardises the message for an operator applied
// to an unsupported operand combination.
func invalidOperationError(left ValueType, op string, right ValueType, node ast.Node) *Error {
	return newRuntimeErrorf(node, "invalid operation: %s %s %s", left, op, right)
}

// unaryTypeError standardises the message for a unary operator applied to
// an incompatible operand.
func unaryTypeError(op string, operand Value, node ast.Node) *Error {
	return newTypeErrorf(node, "unary %q is not defined for %s", op, operand.Type())
}
