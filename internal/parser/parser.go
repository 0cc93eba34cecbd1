// Package parser implements a recursive-descent parser for Purr. One
// function per grammar production; errors are accumulated rather than
// aborting at the first failure.
package parser

import (
	"fmt"
	"strconv"

	"github.com/purrlang/purr/internal/ast"
	"github.com/purrlang/purr/internal/lexer"
)

// Parser builds an AST from the token stream produced by a Lexer.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string
}

// New creates a Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	// Fill curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the parse errors collected so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// skipSeparators consumes newline and semicolon tokens between statements.
func (p *Parser) skipSeparators() {
	for p.curToken.Type == lexer.NEWLINE || p.curToken.Type == lexer.SEMICOLON {
		p.nextToken()
	}
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s: %s", pos, msg))
}

// expectPeek advances when the next token has the wanted type, otherwise
// records an error and leaves the parser where it is.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken.Pos, "expected %s, got %s (%q)",
		tt, p.peekToken.Type, p.peekToken.Literal)
	return false
}

// ParseProgram parses the whole input. Function definitions are collected
// separately from the executable body regardless of where they appear.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{
		Body: &ast.Body{Token: p.curToken},
	}

	p.skipSeparators()
	for p.curToken.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			if fn, ok := stmt.(*ast.FuncDef); ok {
				program.Functions = append(program.Functions, fn)
			} else {
				program.Body.Statements = append(program.Body.Statements, stmt)
			}
		} else {
			// Skip the offending token so a single error does not
			// cascade through the rest of the input.
			p.nextToken()
		}
		p.skipSeparators()
	}
	program.Body.EndP = p.curToken.Pos

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.FUNC:
		return p.parseFuncDef()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.BREAK:
		stmt := &ast.Break{Token: p.curToken}
		p.nextToken()
		return stmt
	case lexer.CONTINUE:
		stmt := &ast.Continue{Token: p.curToken}
		p.nextToken()
		return stmt
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.PRINT, lexer.PRINTLN:
		return p.parsePrint()
	case lexer.ARRAY:
		return p.parseArrayDecl()
	case lexer.IDENT:
		return p.parseIdentStatement()
	default:
		p.errorf(p.curToken.Pos, "unexpected token %s (%q) at start of statement",
			p.curToken.Type, p.curToken.Literal)
		return nil
	}
}

// parseBody parses a brace-delimited statement sequence.
func (p *Parser) parseBody() *ast.Body {
	body := &ast.Body{Token: p.curToken}

	if p.curToken.Type != lexer.LBRACE {
		p.errorf(p.curToken.Pos, "expected '{', got %s (%q)",
			p.curToken.Type, p.curToken.Literal)
		return body
	}
	p.nextToken()
	p.skipSeparators()

	for p.curToken.Type != lexer.RBRACE && p.curToken.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		} else {
			p.nextToken()
		}
		p.skipSeparators()
	}

	if p.curToken.Type != lexer.RBRACE {
		p.errorf(p.curToken.Pos, "expected '}' to close block")
	}
	body.EndP = p.curToken.End()
	p.nextToken() // consume '}'

	return body
}

// parseFuncDef parses: func name ( params? ) body
func (p *Parser) parseFuncDef() ast.Statement {
	fn := &ast.FuncDef{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	fn.Name = p.curToken.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	fn.Args = p.parseParameterList()

	p.nextToken()
	p.skipSeparators()
	fn.Body = p.parseBody()
	return fn
}

// parseParameterList parses the parenthesised parameter names of a
// function definition. The opening '(' is the current token on entry; the
// closing ')' is the current token on exit.
func (p *Parser) parseParameterList() *ast.Args {
	args := &ast.Args{Token: p.curToken}

	if p.peekToken.Type == lexer.RPAREN {
		p.nextToken()
		args.EndP = p.curToken.End()
		return args
	}

	for {
		if !p.expectPeek(lexer.IDENT) {
			return args
		}
		args.Items = append(args.Items, &ast.Identifier{
			Token: p.curToken,
			Value: p.curToken.Literal,
		})
		if p.peekToken.Type != lexer.COMMA {
			break
		}
		p.nextToken() // consume ','
	}

	if !p.expectPeek(lexer.RPAREN) {
		return args
	}
	args.EndP = p.curToken.End()
	return args
}

func (p *Parser) parseIf() ast.Statement {
	stmt := &ast.If{Token: p.curToken}

	p.nextToken()
	stmt.Cond = p.parseExpression()
	p.skipSeparators()
	stmt.Body = p.parseBody()

	p.skipSeparators()
	for p.curToken.Type == lexer.ELIF {
		elif := &ast.Elif{Token: p.curToken}
		p.nextToken()
		elif.Cond = p.parseExpression()
		p.skipSeparators()
		elif.Body = p.parseBody()
		stmt.ElseIfs = append(stmt.ElseIfs, elif)
		p.skipSeparators()
	}

	if p.curToken.Type == lexer.ELSE {
		els := &ast.Else{Token: p.curToken}
		p.nextToken()
		p.skipSeparators()
		els.Body = p.parseBody()
		stmt.Else = els
	}

	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	stmt := &ast.While{Token: p.curToken}

	p.nextToken()
	stmt.Cond = p.parseExpression()
	p.skipSeparators()
	stmt.Body = p.parseBody()
	return stmt
}

// parseFor parses: for ident in start .. end body
func (p *Parser) parseFor() ast.Statement {
	stmt := &ast.For{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Var = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	stmt.RangeStart = p.parseSimpleExpr()

	if p.curToken.Type != lexer.DOT_DOT {
		p.errorf(p.curToken.Pos, "expected '..' in for range, got %s (%q)",
			p.curToken.Type, p.curToken.Literal)
		return nil
	}
	p.nextToken()
	stmt.RangeEnd = p.parseSimpleExpr()

	p.skipSeparators()
	stmt.Body = p.parseBody()
	return stmt
}

// parseReturn parses a return statement. The value is optional: a
// newline, semicolon, closing brace or end of input ends the statement.
func (p *Parser) parseReturn() ast.Statement {
	stmt := &ast.Return{Token: p.curToken}
	p.nextToken()

	switch p.curToken.Type {
	case lexer.NEWLINE, lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return stmt
	}
	stmt.Value = p.parseExpression()
	return stmt
}

func (p *Parser) parsePrint() ast.Statement {
	stmt := &ast.Print{
		Token:   p.curToken,
		Newline: p.curToken.Type == lexer.PRINTLN,
		Args:    &ast.Args{Token: p.curToken},
	}
	p.nextToken()

	switch p.curToken.Type {
	case lexer.NEWLINE, lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		stmt.Args.EndP = stmt.Token.End()
		return stmt
	}

	for {
		arg := p.parseExpression()
		if arg == nil {
			break
		}
		stmt.Args.Items = append(stmt.Args.Items, arg)
		stmt.Args.EndP = arg.End()
		if p.curToken.Type != lexer.COMMA {
			break
		}
		p.nextToken() // consume ','
	}
	return stmt
}

// parseArrayDecl parses: array name [ size ]?   (declaration form)
func (p *Parser) parseArrayDecl() ast.Statement {
	stmt := &ast.ArrayDef{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal
	stmt.EndP = p.curToken.End()

	if p.peekToken.Type == lexer.LBRACKET {
		p.nextToken() // curToken = '['
		p.nextToken()
		stmt.Size = p.parseExpression()
		if p.curToken.Type != lexer.RBRACKET {
			p.errorf(p.curToken.Pos, "expected ']' after array size")
			return stmt
		}
		stmt.EndP = p.curToken.End()
	}
	p.nextToken()
	return stmt
}

// parseIdentStatement handles the statements that start with an
// identifier: assignment, array definition with initial values, array
// update, call statements and postfix increment/decrement.
func (p *Parser) parseIdentStatement() ast.Statement {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	switch p.peekToken.Type {
	case lexer.ASSIGN:
		p.nextToken() // curToken = '='
		assignTok := p.curToken
		p.nextToken()
		if p.curToken.Type == lexer.LBRACKET {
			return p.parseArrayLiteralDef(ident)
		}
		right := p.parseExpression()
		if right == nil {
			return nil
		}
		return &ast.Assignment{Token: assignTok, Left: ident, Right: right}

	case lexer.LBRACKET:
		p.nextToken() // curToken = '['
		p.nextToken()
		index := p.parseExpression()
		if p.curToken.Type != lexer.RBRACKET {
			p.errorf(p.curToken.Pos, "expected ']' after array index")
			return nil
		}
		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		return &ast.ArrayUpdate{
			Token: ident.Token,
			Name:  ident.Value,
			Index: index,
			Value: value,
		}

	case lexer.LPAREN:
		return p.parseCall(ident)

	case lexer.PLUS_PLUS, lexer.MINUS_MINUS:
		p.nextToken() // curToken = operator
		stmt := &ast.PostfixExpr{
			Token:    p.curToken,
			Left:     ident,
			Operator: p.curToken.Literal,
		}
		p.nextToken()
		return stmt

	default:
		p.errorf(p.peekToken.Pos, "unexpected token %s (%q) after identifier %q",
			p.peekToken.Type, p.peekToken.Literal, ident.Value)
		return nil
	}
}

// parseArrayLiteralDef parses: name = [ values? ]
// The '[' is the current token on entry.
func (p *Parser) parseArrayLiteralDef(ident *ast.Identifier) ast.Statement {
	stmt := &ast.ArrayDef{
		Token:         ident.Token,
		Name:          ident.Value,
		InitialValues: []ast.Expression{},
	}

	if p.peekToken.Type == lexer.RBRACKET {
		p.nextToken()
		stmt.EndP = p.curToken.End()
		p.nextToken()
		return stmt
	}

	p.nextToken()
	for {
		value := p.parseExpression()
		if value == nil {
			return stmt
		}
		stmt.InitialValues = append(stmt.InitialValues, value)
		if p.curToken.Type != lexer.COMMA {
			break
		}
		p.nextToken() // consume ','
	}

	if p.curToken.Type != lexer.RBRACKET {
		p.errorf(p.curToken.Pos, "expected ']' to close array literal")
		return stmt
	}
	stmt.EndP = p.curToken.End()
	p.nextToken()
	return stmt
}

func parseInt(literal string) int64 {
	v, _ := strconv.ParseInt(literal, 10, 64)
	return v
}

func parseFloat(literal string) float64 {
	v, _ := strconv.ParseFloat(literal, 64)
	return v
}
