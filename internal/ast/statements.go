package ast

import (
	"bytes"
	"strings"

	"github.com/purrlang/purr/internal/lexer"
)

// Body is a brace-delimited (or top-level) sequence of statements.
type Body struct {
	Token      lexer.Token // the token opening the body
	Statements []Statement
	EndP       lexer.Position
}

func (b *Body) statementNode()       {}
func (b *Body) TokenLiteral() string { return b.Token.Literal }
func (b *Body) Pos() lexer.Position  { return b.Token.Pos }
func (b *Body) End() lexer.Position  { return b.EndP }

func (b *Body) String() string {
	var out bytes.Buffer
	for _, stmt := range b.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Assignment binds the value of the right-hand expression to a variable in
// the current scope.
type Assignment struct {
	Token lexer.Token // the ASSIGN token
	Left  *Identifier
	Right Expression
}

func (a *Assignment) statementNode()       {}
func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() lexer.Position  { return a.Left.Pos() }
func (a *Assignment) End() lexer.Position  { return a.Right.End() }

func (a *Assignment) String() string {
	return a.Left.String() + " = " + a.Right.String()
}

// ArrayDef declares an array. Exactly one of Size or InitialValues may be
// set; with neither, the array is empty and unbounded.
type ArrayDef struct {
	Token         lexer.Token // the ARRAY or IDENT token
	Name          string
	Size          Expression
	InitialValues []Expression
	EndP          lexer.Position
}

func (ad *ArrayDef) statementNode()       {}
func (ad *ArrayDef) TokenLiteral() string { return ad.Token.Literal }
func (ad *ArrayDef) Pos() lexer.Position  { return ad.Token.Pos }
func (ad *ArrayDef) End() lexer.Position  { return ad.EndP }

func (ad *ArrayDef) String() string {
	if ad.Size != nil {
		return "array " + ad.Name + "[" + ad.Size.String() + "]"
	}
	if ad.InitialValues != nil {
		parts := make([]string, len(ad.InitialValues))
		for i, v := range ad.InitialValues {
			parts[i] = v.String()
		}
		return ad.Name + " = [" + strings.Join(parts, ", ") + "]"
	}
	return "array " + ad.Name
}

// ArrayUpdate replaces one element of an array in place.
type ArrayUpdate struct {
	Token lexer.Token // the IDENT token of the array name
	Name  string
	Index Expression
	Value Expression
}

func (au *ArrayUpdate) statementNode()       {}
func (au *ArrayUpdate) TokenLiteral() string { return au.Token.Literal }
func (au *ArrayUpdate) Pos() lexer.Position  { return au.Token.Pos }
func (au *ArrayUpdate) End() lexer.Position  { return au.Value.End() }

func (au *ArrayUpdate) String() string {
	return au.Name + "[" + au.Index.String() + "] = " + au.Value.String()
}

// Print writes its arguments to standard output, space-separated. Newline
// selects the println form.
type Print struct {
	Token   lexer.Token // the PRINT or PRINTLN token
	Args    *Args
	Newline bool
}

func (p *Print) statementNode()       {}
func (p *Print) TokenLiteral() string { return p.Token.Literal }
func (p *Print) Pos() lexer.Position  { return p.Token.Pos }

func (p *Print) End() lexer.Position {
	if p.Args != nil && len(p.Args.Items) > 0 {
		return p.Args.End()
	}
	return p.Token.End()
}

func (p *Print) String() string {
	name := "print"
	if p.Newline {
		name = "println"
	}
	if p.Args == nil || len(p.Args.Items) == 0 {
		return name
	}
	return name + " " + p.Args.String()
}
