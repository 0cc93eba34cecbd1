package parser

import (
	"github.com/purrlang/purr/internal/ast"
	"github.com/purrlang/purr/internal/lexer"
)

// Expression parsing follows the grammar ladder:
//
//	expression  := simple-expr (relop simple-expr)?
//	simple-expr := term ((+ | - | or) term)*
//	term        := factor ((* | / | and) factor)*
//	factor      := (not | -) factor | primary
//
// Every parse function leaves the cursor on the first token after the
// construct it parsed.

// ParseExpression parses a single expression starting at the current
// token. Statements parse expressions through the internal helpers.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpression()
}

func (p *Parser) parseExpression() ast.Expression {
	left := p.parseSimpleExpr()
	if left == nil {
		return nil
	}

	switch p.curToken.Type {
	case lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LT_EQ, lexer.GT_EQ:
		tok := p.curToken
		p.nextToken()
		right := p.parseSimpleExpr()
		if right == nil {
			return nil
		}
		return &ast.Expr{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseSimpleExpr() ast.Expression {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	for p.curToken.Type == lexer.PLUS || p.curToken.Type == lexer.MINUS ||
		p.curToken.Type == lexer.OR {
		tok := p.curToken
		p.nextToken()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		left = &ast.SimpleExpr{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	if left == nil {
		return nil
	}

	for p.curToken.Type == lexer.ASTERISK || p.curToken.Type == lexer.SLASH ||
		p.curToken.Type == lexer.AND {
		tok := p.curToken
		p.nextToken()
		right := p.parseFactor()
		if right == nil {
			return nil
		}
		left = &ast.Term{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseFactor() ast.Expression {
	if p.curToken.Type == lexer.NOT || p.curToken.Type == lexer.MINUS {
		tok := p.curToken
		op := &ast.Operator{Token: tok, Value: tok.Literal}
		p.nextToken()
		right := p.parseFactor()
		if right == nil {
			return nil
		}
		return &ast.Factor{Token: tok, Left: op, Right: right}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case lexer.INT:
		lit := &ast.NumericLiteral{Token: p.curToken, Int: parseInt(p.curToken.Literal)}
		p.nextToken()
		return lit

	case lexer.FLOAT:
		lit := &ast.NumericLiteral{
			Token:   p.curToken,
			IsFloat: true,
			Float:   parseFloat(p.curToken.Literal),
		}
		p.nextToken()
		return lit

	case lexer.STRING:
		lit := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return lit

	case lexer.TRUE, lexer.FALSE:
		lit := &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == lexer.TRUE}
		p.nextToken()
		return lit

	case lexer.INPUT:
		return p.parseInput()

	case lexer.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if p.curToken.Type != lexer.RPAREN {
			p.errorf(p.curToken.Pos, "expected ')' to close expression")
			return nil
		}
		p.nextToken()
		return expr

	case lexer.IDENT:
		return p.parseIdentExpression()

	default:
		p.errorf(p.curToken.Pos, "unexpected token %s (%q) in expression",
			p.curToken.Type, p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseIdentExpression() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	switch p.peekToken.Type {
	case lexer.LPAREN:
		return p.parseCall(ident)

	case lexer.LBRACKET:
		p.nextToken() // curToken = '['
		p.nextToken()
		index := p.parseExpression()
		if index == nil {
			return nil
		}
		if p.curToken.Type != lexer.RBRACKET {
			p.errorf(p.curToken.Pos, "expected ']' after array index")
			return nil
		}
		access := &ast.ArrayAccess{
			Token: ident.Token,
			Name:  ident.Value,
			Index: index,
			EndP:  p.curToken.End(),
		}
		p.nextToken()
		return access

	case lexer.PLUS_PLUS, lexer.MINUS_MINUS:
		p.nextToken() // curToken = operator
		expr := &ast.PostfixExpr{
			Token:    p.curToken,
			Left:     ident,
			Operator: p.curToken.Literal,
		}
		p.nextToken()
		return expr

	default:
		p.nextToken()
		return ident
	}
}

// parseCall parses a call with the function name as the current token.
func (p *Parser) parseCall(ident *ast.Identifier) *ast.Call {
	call := &ast.Call{Token: ident.Token, Name: ident.Value}

	p.nextToken() // curToken = '('
	call.Args = &ast.Args{Token: p.curToken}

	if p.peekToken.Type == lexer.RPAREN {
		p.nextToken()
		call.Args.EndP = p.curToken.End()
		call.EndP = p.curToken.End()
		p.nextToken()
		return call
	}

	p.nextToken()
	for {
		arg := p.parseExpression()
		if arg == nil {
			return call
		}
		call.Args.Items = append(call.Args.Items, arg)
		if p.curToken.Type != lexer.COMMA {
			break
		}
		p.nextToken() // consume ','
	}

	if p.curToken.Type != lexer.RPAREN {
		p.errorf(p.curToken.Pos, "expected ')' to close call arguments")
		return call
	}
	call.Args.EndP = p.curToken.End()
	call.EndP = p.curToken.End()
	p.nextToken()
	return call
}

// parseInput parses: input ( string? )
func (p *Parser) parseInput() ast.Expression {
	in := &ast.Input{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	if p.peekToken.Type == lexer.STRING {
		p.nextToken()
		in.Prompt = p.curToken.Literal
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	in.EndP = p.curToken.End()
	p.nextToken()
	return in
}
