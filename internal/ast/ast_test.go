package ast

import (
	"strings"
	"testing"

	"github.com/purrlang/purr/internal/lexer"
)

func ident(name string, line, col int) *Identifier {
	return &Identifier{
		Token: lexer.Token{
			Type:    lexer.IDENT,
			Literal: name,
			Pos:     lexer.Position{Line: line, Column: col},
		},
		Value: name,
	}
}

func intLit(v int64, literal string, line, col int) *NumericLiteral {
	return &NumericLiteral{
		Token: lexer.Token{
			Type:    lexer.INT,
			Literal: literal,
			Pos:     lexer.Position{Line: line, Column: col},
		},
		Int: v,
	}
}

func TestExpressionStrings(t *testing.T) {
	sum := &SimpleExpr{
		Token:    lexer.Token{Type: lexer.PLUS, Literal: "+"},
		Left:     ident("a", 1, 1),
		Operator: "+",
		Right:    intLit(2, "2", 1, 5),
	}
	if got := sum.String(); got != "(a + 2)" {
		t.Errorf("SimpleExpr.String() = %q", got)
	}

	rel := &Expr{
		Token:    lexer.Token{Type: lexer.LT_EQ, Literal: "<="},
		Left:     ident("n", 1, 1),
		Operator: "<=",
		Right:    intLit(1, "1", 1, 6),
	}
	if got := rel.String(); got != "(n <= 1)" {
		t.Errorf("Expr.String() = %q", got)
	}

	neg := &Factor{
		Token: lexer.Token{Type: lexer.MINUS, Literal: "-"},
		Left:  &Operator{Token: lexer.Token{Type: lexer.MINUS, Literal: "-"}, Value: "-"},
		Right: intLit(3, "3", 1, 2),
	}
	if got := neg.String(); got != "(-3)" {
		t.Errorf("Factor.String() = %q", got)
	}

	post := &PostfixExpr{
		Token:    lexer.Token{Type: lexer.PLUS_PLUS, Literal: "++", Pos: lexer.Position{Line: 1, Column: 2}},
		Left:     ident("i", 1, 1),
		Operator: "++",
	}
	if got := post.String(); got != "(i++)" {
		t.Errorf("PostfixExpr.String() = %q", got)
	}
}

func TestSpans(t *testing.T) {
	left := ident("a", 2, 3)
	right := intLit(2, "2", 2, 7)
	sum := &SimpleExpr{Left: left, Operator: "+", Right: right}

	if sum.Pos() != left.Pos() {
		t.Error("a binary expression starts at its left operand")
	}
	if sum.End() != right.End() {
		t.Error("a binary expression ends at its right operand")
	}

	ret := &Return{Token: lexer.Token{
		Type: lexer.RETURN, Literal: "return",
		Pos: lexer.Position{Line: 4, Column: 1},
	}}
	if ret.End().Column != 7 {
		t.Errorf("bare return End column = %d, want 7", ret.End().Column)
	}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Functions: []*FuncDef{{
			Token: lexer.Token{Type: lexer.FUNC, Literal: "func"},
			Name:  "f",
			Args:  &Args{Items: []Expression{ident("n", 1, 8)}},
			Body: &Body{Statements: []Statement{
				&Return{
					Token: lexer.Token{Type: lexer.RETURN, Literal: "return"},
					Value: ident("n", 1, 20),
				},
			}},
		}},
		Body: &Body{Statements: []Statement{
			&Print{
				Token:   lexer.Token{Type: lexer.PRINTLN, Literal: "println"},
				Newline: true,
				Args:    &Args{Items: []Expression{intLit(1, "1", 2, 9)}},
			},
		}},
	}

	out := program.String()
	if !strings.Contains(out, "func f(n)") {
		t.Errorf("missing function header in %q", out)
	}
	if !strings.Contains(out, "return n") {
		t.Errorf("missing return in %q", out)
	}
	if !strings.Contains(out, "println 1") {
		t.Errorf("missing println in %q", out)
	}
}

func TestEncodeJSON(t *testing.T) {
	program := &Program{
		Body: &Body{Statements: []Statement{
			&Assignment{
				Token: lexer.Token{Type: lexer.ASSIGN, Literal: "="},
				Left:  ident("x", 1, 1),
				Right: intLit(5, "5", 1, 5),
			},
		}},
	}

	out, err := EncodeJSON(program)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	for _, want := range []string{`"node": "Program"`, `"node": "Assignment"`, `"node": "NumericLiteral"`, `"value": 5`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %s:\n%s", want, out)
		}
	}
}
