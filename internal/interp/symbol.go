package interp

import "github.com/purrlang/purr/internal/ast"

// Symbols are the binding records stored in an Environment. Variables,
// arrays and functions occupy disjoint namespaces within a scope.

// VariableSymbol binds a name to a runtime value. The evaluator mutates
// Value in place for postfix increment/decrement and loop iteration.
type VariableSymbol struct {
	Name  string
	Value Value
}

// UnboundedSize marks an array declared without a size (empty or
// literal-initialised).
const UnboundedSize = -1

// ArraySymbol binds a name to an ordered list of runtime values.
type ArraySymbol struct {
	Name   string
	Size   int
	Values []Value
}

// NewSizedArray creates an array of the given size with every slot set to
// null.
func NewSizedArray(name string, size int) *ArraySymbol {
	values := make([]Value, size)
	for i := range values {
		values[i] = &NullValue{}
	}
	return &ArraySymbol{Name: name, Size: size, Values: values}
}

// FunctionSymbol binds a name to a parameter list and a body. The body is
// shared with the AST and never mutated.
type FunctionSymbol struct {
	Name   string
	Params []string
	Body   *ast.Body
}
