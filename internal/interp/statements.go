package interp

import (
	"github.com/purrlang/purr/internal/ast"
)

// evalConditionalBody runs the body of a conditional or loop branch and
// returns only control outcomes; a branch's ordinary values do not leak
// into the enclosing body's result.
func (i *Interpreter) evalConditionalBody(body *ast.Body) (Value, error) {
	if body == nil {
		return nil, nil
	}
	result, err := i.eval(body)
	if err != nil {
		return nil, err
	}
	if result != nil && isControl(result) {
		return result, nil
	}
	return nil, nil
}

// evalIf evaluates the condition, then the first truthy branch.
func (i *Interpreter) evalIf(stmt *ast.If) (Value, error) {
	cond, err := i.evalOperand(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if !IsFalsey(cond) {
		return i.evalConditionalBody(stmt.Body)
	}

	for _, elif := range stmt.ElseIfs {
		cond, err := i.evalOperand(elif.Cond)
		if err != nil {
			return nil, err
		}
		if !IsFalsey(cond) {
			return i.evalConditionalBody(elif.Body)
		}
	}

	if stmt.Else != nil {
		return i.evalConditionalBody(stmt.Else.Body)
	}
	return nil, nil
}

// evalWhile re-evaluates the condition before every iteration. Break
// stops the loop; Continue starts the next iteration; Return propagates
// outward.
func (i *Interpreter) evalWhile(stmt *ast.While) (Value, error) {
	for {
		cond, err := i.evalOperand(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if IsFalsey(cond) {
			return nil, nil
		}

		result, err := i.evalConditionalBody(stmt.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *BreakSignal:
			return nil, nil
		case *ContinueSignal:
			continue
		case *ReturnValue:
			return result, nil
		}
	}
}

// evalFor evaluates the range endpoints once, then iterates the loop
// variable over the exclusive range in the direction of its sign. The
// loop variable is a binding in the current scope, mutated per iteration.
func (i *Interpreter) evalFor(stmt *ast.For) (Value, error) {
	start, err := i.evalRangeValue(stmt.RangeStart)
	if err != nil {
		return nil, err
	}
	end, err := i.evalRangeValue(stmt.RangeEnd)
	if err != nil {
		return nil, err
	}

	i.currentEnv.DefineVariable(stmt.Var.Value, &IntegerValue{Value: start})
	iter, _ := i.currentEnv.LookupVariable(stmt.Var.Value, true)

	step := int64(1)
	if start >= end {
		step = -1
	}

	for n := start; n != end; n += step {
		iter.Value = &IntegerValue{Value: n}

		result, err := i.evalConditionalBody(stmt.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *BreakSignal:
			return nil, nil
		case *ContinueSignal:
			continue
		case *ReturnValue:
			return result, nil
		}
	}
	return nil, nil
}

// evalRangeValue evaluates a for-range endpoint, which must resolve to an
// integer.
func (i *Interpreter) evalRangeValue(expr ast.Expression) (int64, error) {
	v, err := i.evalOperand(expr)
	if err != nil {
		return 0, err
	}
	n, ok := asInteger(v)
	if !ok {
		return 0, newRuntimeErrorf(expr, "range value %q cannot be used as an integer", v.String())
	}
	return n, nil
}

// evalAssignment evaluates the right-hand side and upserts the result
// into the current scope.
func (i *Interpreter) evalAssignment(stmt *ast.Assignment) error {
	result, err := i.evalOperand(stmt.Right)
	if err != nil {
		return err
	}
	i.currentEnv.DefineVariable(stmt.Left.Value, result)
	return nil
}

// evalArrayDef allocates an array: a sized array filled with nulls, a
// literal-initialised array, or an empty unbounded one.
func (i *Interpreter) evalArrayDef(stmt *ast.ArrayDef) error {
	var sym *ArraySymbol

	switch {
	case stmt.Size != nil:
		v, err := i.evalOperand(stmt.Size)
		if err != nil {
			return err
		}
		size, ok := asInteger(v)
		if !ok || size < 0 {
			return newRuntimeErrorf(stmt.Size, "array size must be a non-negative integer, got %s", v.String())
		}
		sym = NewSizedArray(stmt.Name, int(size))

	case stmt.InitialValues != nil:
		values := make([]Value, 0, len(stmt.InitialValues))
		for _, expr := range stmt.InitialValues {
			v, err := i.evalOperand(expr)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		sym = &ArraySymbol{Name: stmt.Name, Size: len(values), Values: values}

	default:
		sym = &ArraySymbol{Name: stmt.Name, Size: UnboundedSize, Values: []Value{}}
	}

	if err := i.currentEnv.DefineArray(sym); err != nil {
		return newRuntimeErrorf(stmt, "%s", err)
	}
	return nil
}

// evalArrayAccess reads one element after bounds-checking the index.
func (i *Interpreter) evalArrayAccess(expr *ast.ArrayAccess) (Value, error) {
	sym, ok := i.currentEnv.LookupArray(expr.Name)
	if !ok {
		return nil, newRuntimeErrorf(expr, "array %q is not defined", expr.Name)
	}

	index, err := i.evalIndex(expr.Index)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= int64(len(sym.Values)) {
		return nil, newRuntimeErrorf(expr, "array index out of bounds")
	}
	return sym.Values[index], nil
}

// evalArrayUpdate replaces one element in place after bounds-checking the
// index.
func (i *Interpreter) evalArrayUpdate(stmt *ast.ArrayUpdate) error {
	sym, ok := i.currentEnv.LookupArray(stmt.Name)
	if !ok {
		return newRuntimeErrorf(stmt, "array %q is not defined", stmt.Name)
	}

	index, err := i.evalIndex(stmt.Index)
	if err != nil {
		return err
	}
	if index < 0 || index >= int64(len(sym.Values)) {
		return newRuntimeErrorf(stmt, "array index out of bounds")
	}

	value, err := i.evalOperand(stmt.Value)
	if err != nil {
		return err
	}
	sym.Values[index] = value
	return nil
}

// evalIndex evaluates an array index expression, which must resolve to an
// integer.
func (i *Interpreter) evalIndex(expr ast.Expression) (int64, error) {
	v, err := i.evalOperand(expr)
	if err != nil {
		return 0, err
	}
	index, ok := asInteger(v)
	if !ok {
		return 0, newRuntimeErrorf(expr, "array index must be an integer, got %s", v.Type())
	}
	return index, nil
}
