package ast

import "encoding/json"

// EncodeJSON renders a node (usually the Program root) as indented JSON.
// The encoding is a debugging surface: every node becomes a map carrying a
// "node" label, its source span, and its children.
func EncodeJSON(node Node) (string, error) {
	data, err := json.MarshalIndent(toJSON(node), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toJSON(node Node) map[string]any {
	if node == nil {
		return nil
	}

	m := map[string]any{}
	switch n := node.(type) {
	case *Program:
		m["node"] = "Program"
		funcs := make([]any, len(n.Functions))
		for i, fn := range n.Functions {
			funcs[i] = toJSON(fn)
		}
		m["functions"] = funcs
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
	case *FuncDef:
		m["node"] = "FuncDef"
		m["name"] = n.Name
		if n.Args != nil {
			m["args"] = toJSON(n.Args)
		}
		m["body"] = toJSON(n.Body)
	case *Body:
		m["node"] = "Body"
		m["statements"] = exprListJSON(statementsAsNodes(n.Statements))
	case *Return:
		m["node"] = "Return"
		m["value"] = toJSON(n.Value)
	case *Break:
		m["node"] = "Break"
	case *Continue:
		m["node"] = "Continue"
	case *If:
		m["node"] = "If"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)
		elifs := make([]any, len(n.ElseIfs))
		for i, e := range n.ElseIfs {
			elifs[i] = toJSON(e)
		}
		m["elifs"] = elifs
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
	case *Elif:
		m["node"] = "Elif"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)
	case *Else:
		m["node"] = "Else"
		m["body"] = toJSON(n.Body)
	case *While:
		m["node"] = "While"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)
	case *For:
		m["node"] = "For"
		m["var"] = n.Var.Value
		m["rangeStart"] = toJSON(n.RangeStart)
		m["rangeEnd"] = toJSON(n.RangeEnd)
		m["body"] = toJSON(n.Body)
	case *ArrayDef:
		m["node"] = "ArrayDef"
		m["name"] = n.Name
		m["size"] = toJSON(n.Size)
		if n.InitialValues != nil {
			m["initialValues"] = exprListJSON(expressionsAsNodes(n.InitialValues))
		}
	case *ArrayAccess:
		m["node"] = "ArrayAccess"
		m["name"] = n.Name
		m["index"] = toJSON(n.Index)
	case *ArrayUpdate:
		m["node"] = "ArrayUpdate"
		m["name"] = n.Name
		m["index"] = toJSON(n.Index)
		m["value"] = toJSON(n.Value)
	case *Assignment:
		m["node"] = "Assignment"
		m["left"] = toJSON(n.Left)
		m["right"] = toJSON(n.Right)
	case *Call:
		m["node"] = "Call"
		m["name"] = n.Name
		m["args"] = toJSON(n.Args)
	case *Input:
		m["node"] = "Input"
		m["prompt"] = n.Prompt
	case *Print:
		m["node"] = "Print"
		m["println"] = n.Newline
		m["args"] = toJSON(n.Args)
	case *PostfixExpr:
		m["node"] = "PostfixExpr"
		m["operator"] = n.Operator
		m["left"] = toJSON(n.Left)
	case *Expr:
		m["node"] = "Expr"
		m["operator"] = n.Operator
		m["left"] = toJSON(n.Left)
		m["right"] = toJSON(n.Right)
	case *SimpleExpr:
		m["node"] = "SimpleExpr"
		m["operator"] = n.Operator
		m["left"] = toJSON(n.Left)
		m["right"] = toJSON(n.Right)
	case *Term:
		m["node"] = "Term"
		m["operator"] = n.Operator
		m["left"] = toJSON(n.Left)
		m["right"] = toJSON(n.Right)
	case *Factor:
		m["node"] = "Factor"
		m["left"] = toJSON(n.Left)
		m["right"] = toJSON(n.Right)
	case *Operator:
		m["node"] = "Operator"
		m["value"] = n.Value
	case *Identifier:
		m["node"] = "Identifier"
		m["value"] = n.Value
	case *NumericLiteral:
		m["node"] = "NumericLiteral"
		if n.IsFloat {
			m["value"] = n.Float
		} else {
			m["value"] = n.Int
		}
	case *StringLiteral:
		m["node"] = "StringLiteral"
		m["value"] = n.Value
	case *BooleanLiteral:
		m["node"] = "BooleanLiteral"
		m["value"] = n.Value
	case *Args:
		m["node"] = "Args"
		m["items"] = exprListJSON(expressionsAsNodes(n.Items))
	default:
		m["node"] = "Unknown"
	}

	m["start"] = posJSON(node.Pos())
	m["end"] = posJSON(node.End())
	return m
}

func posJSON(p interface{ String() string }) string {
	return p.String()
}

func exprListJSON(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = toJSON(n)
	}
	return out
}

func statementsAsNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}

func expressionsAsNodes(exprs []Expression) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}
