// Package ast defines the Abstract Syntax Tree node types for Purr.
//
// The node set mirrors the grammar: statement nodes live in statements.go
// and control_flow.go, function nodes in functions.go, and the expression
// ladder (Expr → SimpleExpr → Term → Factor) plus literals here. The tree
// is immutable after parsing; nodes own their children.
package ast

import (
	"bytes"
	"strings"

	"github.com/purrlang/purr/internal/lexer"
)

// Node is the base interface for all AST nodes. Every node reports the
// literal of its anchor token, a debug string, and the start and end
// positions of its source span.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is
	// associated with.
	TokenLiteral() string

	// String returns a string representation of the node for debugging
	// and testing.
	String() string

	// Pos returns the start position of the node in the source code.
	Pos() lexer.Position

	// End returns the end position of the node in the source code.
	End() lexer.Position
}

// Expression represents any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement represents a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node of the AST. Function definitions are collected
// separately from the executable body; the evaluator installs all
// functions before the body runs.
type Program struct {
	Functions []*FuncDef
	Body      *Body
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	if p.Body != nil {
		return p.Body.TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, fn := range p.Functions {
		out.WriteString(fn.String())
		out.WriteString("\n")
	}
	if p.Body != nil {
		out.WriteString(p.Body.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	if p.Body != nil {
		return p.Body.Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) End() lexer.Position {
	if p.Body != nil {
		return p.Body.End()
	}
	if n := len(p.Functions); n > 0 {
		return p.Functions[n-1].End()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Identifier represents a variable, array or function name.
type Identifier struct {
	Token lexer.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) End() lexer.Position  { return i.Token.End() }

// NumericLiteral represents an integer or float literal.
type NumericLiteral struct {
	Token   lexer.Token // the INT or FLOAT token
	IsFloat bool
	Int     int64
	Float   float64
}

func (nl *NumericLiteral) expressionNode()      {}
func (nl *NumericLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumericLiteral) String() string       { return nl.Token.Literal }
func (nl *NumericLiteral) Pos() lexer.Position  { return nl.Token.Pos }
func (nl *NumericLiteral) End() lexer.Position  { return nl.Token.End() }

// StringLiteral represents a string literal. Value holds the unquoted,
// unescaped text.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() lexer.Position  { return sl.Token.Pos }
func (sl *StringLiteral) End() lexer.Position  { return sl.Token.End() }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() lexer.Position  { return bl.Token.Pos }
func (bl *BooleanLiteral) End() lexer.Position  { return bl.Token.End() }

// Operator is an operator captured as a node of its own; the unary factor
// reduction evaluates it to a transient operator value.
type Operator struct {
	Token lexer.Token
	Value string
}

func (o *Operator) expressionNode()      {}
func (o *Operator) TokenLiteral() string { return o.Token.Literal }
func (o *Operator) String() string       { return o.Value }
func (o *Operator) Pos() lexer.Position  { return o.Token.Pos }
func (o *Operator) End() lexer.Position  { return o.Token.End() }

// Args is an ordered argument (or parameter) list.
type Args struct {
	Token lexer.Token // the token opening the list
	Items []Expression
	EndP  lexer.Position
}

func (a *Args) expressionNode()      {}
func (a *Args) TokenLiteral() string { return a.Token.Literal }
func (a *Args) Pos() lexer.Position  { return a.Token.Pos }
func (a *Args) End() lexer.Position  { return a.EndP }

func (a *Args) String() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

// Expr is the relational level of the expression ladder. Operator is one
// of == != < > <= >=, or empty when the node wraps a lone simple
// expression.
type Expr struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *Expr) expressionNode()      {}
func (e *Expr) TokenLiteral() string { return e.Token.Literal }
func (e *Expr) Pos() lexer.Position  { return e.Left.Pos() }

func (e *Expr) End() lexer.Position {
	if e.Right != nil {
		return e.Right.End()
	}
	return e.Left.End()
}

func (e *Expr) String() string {
	if e.Operator == "" {
		return e.Left.String()
	}
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// SimpleExpr is the additive level: + - or.
type SimpleExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (se *SimpleExpr) expressionNode()      {}
func (se *SimpleExpr) TokenLiteral() string { return se.Token.Literal }
func (se *SimpleExpr) Pos() lexer.Position  { return se.Left.Pos() }
func (se *SimpleExpr) End() lexer.Position  { return se.Right.End() }

func (se *SimpleExpr) String() string {
	return "(" + se.Left.String() + " " + se.Operator + " " + se.Right.String() + ")"
}

// Term is the multiplicative level: * / and.
type Term struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (t *Term) expressionNode()      {}
func (t *Term) TokenLiteral() string { return t.Token.Literal }
func (t *Term) Pos() lexer.Position  { return t.Left.Pos() }
func (t *Term) End() lexer.Position  { return t.Right.End() }

func (t *Term) String() string {
	return "(" + t.Left.String() + " " + t.Operator + " " + t.Right.String() + ")"
}

// Factor is the unary reduction: Left is an Operator node (not or -) and
// Right the operand.
type Factor struct {
	Token lexer.Token // the operator token
	Left  Expression
	Right Expression
}

func (f *Factor) expressionNode()      {}
func (f *Factor) TokenLiteral() string { return f.Token.Literal }
func (f *Factor) Pos() lexer.Position  { return f.Left.Pos() }
func (f *Factor) End() lexer.Position  { return f.Right.End() }

func (f *Factor) String() string {
	return "(" + f.Left.String() + f.Right.String() + ")"
}

// PostfixExpr is ++ or -- applied to a variable.
type PostfixExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
}

func (pe *PostfixExpr) expressionNode()      {}
func (pe *PostfixExpr) statementNode()       {}
func (pe *PostfixExpr) TokenLiteral() string { return pe.Token.Literal }
func (pe *PostfixExpr) Pos() lexer.Position  { return pe.Left.Pos() }
func (pe *PostfixExpr) End() lexer.Position  { return pe.Token.End() }

func (pe *PostfixExpr) String() string {
	return "(" + pe.Left.String() + pe.Operator + ")"
}

// Call is a function call; it appears both as an expression and as a
// standalone statement.
type Call struct {
	Token lexer.Token // the IDENT token of the function name
	Name  string
	Args  *Args
	EndP  lexer.Position
}

func (c *Call) expressionNode()      {}
func (c *Call) statementNode()       {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() lexer.Position  { return c.Token.Pos }
func (c *Call) End() lexer.Position  { return c.EndP }

func (c *Call) String() string {
	return c.Name + "(" + c.Args.String() + ")"
}

// Input reads a line from standard input, optionally printing a prompt
// first.
type Input struct {
	Token  lexer.Token // the INPUT token
	Prompt string
	EndP   lexer.Position
}

func (in *Input) expressionNode()      {}
func (in *Input) TokenLiteral() string { return in.Token.Literal }
func (in *Input) Pos() lexer.Position  { return in.Token.Pos }
func (in *Input) End() lexer.Position  { return in.EndP }

func (in *Input) String() string {
	return "input(\"" + in.Prompt + "\")"
}

// ArrayAccess reads one element of an array.
type ArrayAccess struct {
	Token lexer.Token // the IDENT token of the array name
	Name  string
	Index Expression
	EndP  lexer.Position
}

func (aa *ArrayAccess) expressionNode()      {}
func (aa *ArrayAccess) TokenLiteral() string { return aa.Token.Literal }
func (aa *ArrayAccess) Pos() lexer.Position  { return aa.Token.Pos }
func (aa *ArrayAccess) End() lexer.Position  { return aa.EndP }

func (aa *ArrayAccess) String() string {
	return aa.Name + "[" + aa.Index.String() + "]"
}
