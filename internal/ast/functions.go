package ast

import "github.com/purrlang/purr/internal/lexer"

// FuncDef declares a named function. Args holds the parameter names as
// Identifier expressions.
type FuncDef struct {
	Token lexer.Token // the FUNC token
	Name  string
	Args  *Args
	Body  *Body
}

func (fd *FuncDef) statementNode()       {}
func (fd *FuncDef) TokenLiteral() string { return fd.Token.Literal }
func (fd *FuncDef) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FuncDef) End() lexer.Position  { return fd.Body.End() }

func (fd *FuncDef) String() string {
	args := ""
	if fd.Args != nil {
		args = fd.Args.String()
	}
	return "func " + fd.Name + "(" + args + ") { " + fd.Body.String() + "}"
}
