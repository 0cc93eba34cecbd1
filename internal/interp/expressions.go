package interp

import (
	"github.com/purrlang/purr/internal/ast"
)

// resolveValue replaces an identifier-tagged value with the value of the
// variable it names, walking the scope chain. All other values pass
// through untouched.
func (i *Interpreter) resolveValue(v Value, node ast.Node) (Value, error) {
	ident, ok := v.(*IdentifierValue)
	if !ok {
		return v, nil
	}
	sym, found := i.currentEnv.LookupVariable(ident.Name, false)
	if !found {
		return nil, newRuntimeErrorf(node, "name %q is not defined", ident.Name)
	}
	return sym.Value, nil
}

// evalOperand evaluates an expression that must produce a value, with
// identifier references resolved through the scope chain.
func (i *Interpreter) evalOperand(expr ast.Expression) (Value, error) {
	v, err := i.eval(expr)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, newRuntimeErrorf(expr, "expression yields no value")
	}
	return i.resolveValue(v, expr)
}

// evalBinary evaluates a binary expression: left first, then right, with
// identifier operands resolved before the operator is applied. An empty
// operator means the node wraps a single operand.
func (i *Interpreter) evalBinary(node ast.Node, left ast.Expression, op string, right ast.Expression) (Value, error) {
	lv, err := i.evalOperand(left)
	if err != nil {
		return nil, err
	}

	if op == "" {
		return lv, nil
	}

	rv, err := i.evalOperand(right)
	if err != nil {
		return nil, err
	}

	switch op {
	case "+", "-", "or":
		return i.evalAdditive(lv, op, rv, node)
	case "*", "/", "and":
		return i.evalMultiplicative(lv, op, rv, node)
	case "==", "!=", "<", ">", "<=", ">=":
		return i.evalRelational(lv, op, rv, node)
	}
	return nil, invalidOperationError(lv.Type(), op, rv.Type(), node)
}

// evalAdditive handles + - or.
func (i *Interpreter) evalAdditive(left Value, op string, right Value, node ast.Node) (Value, error) {
	switch op {
	case "+":
		if ls, ok := left.(*StringValue); ok {
			if rs, ok := right.(*StringValue); ok {
				return &StringValue{Value: ls.Value + rs.Value}, nil
			}
		}
		if isNumber(left) && isNumber(right) {
			return addNumbers(left, right), nil
		}

	case "-":
		if isNumber(left) && isNumber(right) {
			return subNumbers(left, right), nil
		}

	case "or":
		// The truthy operand wins, left biased.
		if !IsFalsey(left) {
			return left, nil
		}
		return right, nil
	}

	return nil, invalidOperationError(left.Type(), op, right.Type(), node)
}

// evalMultiplicative handles * / and.
func (i *Interpreter) evalMultiplicative(left Value, op string, right Value, node ast.Node) (Value, error) {
	switch op {
	case "*":
		if isNumber(left) && isNumber(right) {
			return mulNumbers(left, right), nil
		}
		// String repetition works with an integer count on either side.
		if ls, ok := left.(*StringValue); ok {
			if n, ok := asInteger(right); ok {
				return &StringValue{Value: repeatString(ls.Value, n)}, nil
			}
		}
		if rs, ok := right.(*StringValue); ok {
			if n, ok := asInteger(left); ok {
				return &StringValue{Value: repeatString(rs.Value, n)}, nil
			}
		}

	case "/":
		if isNumber(left) && isNumber(right) {
			rf, _ := asFloat(right)
			if rf == 0 {
				return nil, newRuntimeErrorf(node, "division by zero")
			}
			lf, _ := asFloat(left)
			return &FloatValue{Value: lf / rf}, nil
		}

	case "and":
		// The falsey operand wins, left biased.
		if IsFalsey(left) {
			return left, nil
		}
		return right, nil
	}

	return nil, invalidOperationError(left.Type(), op, right.Type(), node)
}

// evalRelational handles == != < > <= >=. Strings compare to numbers by
// length, to strings lexicographically; numbers compare numerically;
// booleans compare as 0 and 1.
func (i *Interpreter) evalRelational(left Value, op string, right Value, node ast.Node) (Value, error) {
	if ls, ok := left.(*StringValue); ok {
		if isNumber(right) {
			rf, _ := asFloat(right)
			return compareFloats(float64(len(ls.Value)), op, rf), nil
		}
		if rs, ok := right.(*StringValue); ok {
			return compareStrings(ls.Value, op, rs.Value), nil
		}
	}

	if isNumber(left) && isNumber(right) {
		lf, _ := asFloat(left)
		rf, _ := asFloat(right)
		return compareFloats(lf, op, rf), nil
	}

	if lb, ok := left.(*BooleanValue); ok {
		if rb, ok := right.(*BooleanValue); ok {
			return compareFloats(boolToFloat(lb.Value), op, boolToFloat(rb.Value)), nil
		}
	}

	return nil, invalidOperationError(left.Type(), op, right.Type(), node)
}

// evalFactor reduces a unary factor: the left operand is an operator
// value (not or -) applied to the right operand.
func (i *Interpreter) evalFactor(node *ast.Factor) (Value, error) {
	lv, err := i.evalOperand(node.Left)
	if err != nil {
		return nil, err
	}

	if node.Right == nil {
		return lv, nil
	}

	rv, err := i.evalOperand(node.Right)
	if err != nil {
		return nil, err
	}

	op, ok := lv.(*OperatorValue)
	if !ok {
		return nil, newRuntimeErrorf(node, "invalid unary expression")
	}

	switch op.Op {
	case "not":
		switch rv.(type) {
		case *StringValue, *IntegerValue, *FloatValue, *BooleanValue:
			return &BooleanValue{Value: IsFalsey(rv)}, nil
		}
		return nil, unaryTypeError("not", rv, node)

	case "-":
		switch n := rv.(type) {
		case *IntegerValue:
			return &IntegerValue{Value: -n.Value}, nil
		case *FloatValue:
			return &FloatValue{Value: -n.Value}, nil
		}
		return nil, unaryTypeError("-", rv, node)
	}

	return nil, newRuntimeErrorf(node, "unknown unary operator %q", op.Op)
}

// evalPostfix applies ++ or -- to a variable, mutating the binding in
// place and yielding the new value.
func (i *Interpreter) evalPostfix(node *ast.PostfixExpr) (Value, error) {
	ident, ok := node.Left.(*ast.Identifier)
	if !ok {
		return nil, newRuntimeErrorf(node, "%q requires a variable operand", node.Operator)
	}
	sym, found := i.currentEnv.LookupVariable(ident.Value, false)
	if !found {
		return nil, newRuntimeErrorf(node, "name %q is not defined", ident.Value)
	}

	delta := int64(1)
	if node.Operator == "--" {
		delta = -1
	}

	switch n := sym.Value.(type) {
	case *IntegerValue:
		sym.Value = &IntegerValue{Value: n.Value + delta}
	case *FloatValue:
		sym.Value = &FloatValue{Value: n.Value + float64(delta)}
	default:
		return nil, newTypeErrorf(node, "%q is not defined for %s", node.Operator, sym.Value.Type())
	}
	return sym.Value, nil
}

// Numeric helpers. Integer arithmetic stays integral; mixing an integer
// with a float widens to float.

func addNumbers(left, right Value) Value {
	if li, ok := asInteger(left); ok {
		if ri, ok := asInteger(right); ok {
			return &IntegerValue{Value: li + ri}
		}
	}
	lf, _ := asFloat(left)
	rf, _ := asFloat(right)
	return &FloatValue{Value: lf + rf}
}

func subNumbers(left, right Value) Value {
	if li, ok := asInteger(left); ok {
		if ri, ok := asInteger(right); ok {
			return &IntegerValue{Value: li - ri}
		}
	}
	lf, _ := asFloat(left)
	rf, _ := asFloat(right)
	return &FloatValue{Value: lf - rf}
}

func mulNumbers(left, right Value) Value {
	if li, ok := asInteger(left); ok {
		if ri, ok := asInteger(right); ok {
			return &IntegerValue{Value: li * ri}
		}
	}
	lf, _ := asFloat(left)
	rf, _ := asFloat(right)
	return &FloatValue{Value: lf * rf}
}

func compareFloats(left float64, op string, right float64) Value {
	var res bool
	switch op {
	case "==":
		res = left == right
	case "!=":
		res = left != right
	case "<":
		res = left < right
	case ">":
		res = left > right
	case "<=":
		res = left <= right
	case ">=":
		res = left >= right
	}
	return &BooleanValue{Value: res}
}

func compareStrings(left, op, right string) Value {
	var res bool
	switch op {
	case "==":
		res = left == right
	case "!=":
		res = left != right
	case "<":
		res = left < right
	case ">":
		res = left > right
	case "<=":
		res = left <= right
	case ">=":
		res = left >= right
	}
	return &BooleanValue{Value: res}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
