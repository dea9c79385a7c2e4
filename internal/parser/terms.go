package parser

import (
	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// parseTerm implements:
//
//	term := term_left ( "." ( field_access | method_call ) )*
//
// left-associatively: a.b.c parses as (a.b).c.
func (p *Parser) parseTerm() ast.Term {
	startPos := p.c.cur().Pos
	t := p.parseTermLeft()
	if t == nil {
		return nil
	}
	for p.c.cur().Type == lexer.DOT {
		p.c.advance()
		nameTok, ok := p.expect(lexer.IDENT, "field or method name")
		if !ok {
			return t
		}
		if p.c.cur().Type == lexer.LPAREN {
			p.c.advance()
			args := p.parseTermArgList()
			p.expect(lexer.RPAREN, "')'")
			t = &ast.MethodCall{Object: t, Method: ast.MethodName(nameTok.Literal), Args: args, Position: startPos}
		} else {
			t = &ast.FieldAccess{Object: t, Field: ast.FieldName(nameTok.Literal), Position: startPos}
		}
	}
	return t
}

func (p *Parser) parseTermArgList() []ast.Term {
	var args []ast.Term
	if p.c.cur().Type == lexer.RPAREN {
		return args
	}
	for {
		args = append(args, p.parseTerm())
		if p.c.cur().Type != lexer.COMMA {
			break
		}
		p.c.advance()
	}
	return args
}

// startsTermLeft reports whether tt can begin a term_left production.
func startsTermLeft(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.THIS, lexer.LPAREN, lexer.NEW:
		return true
	default:
		return false
	}
}

// parseTermLeft implements:
//
//	term_left := "(" term ")" | cast | new_call | identifier
//
// The only genuine ambiguity is at "(": it may open a cast, "(" C ")"
// term, or a parenthesized term, "(" term ")". Both start identically
// ("(" IDENT), so a cast is attempted first and the cursor rewound to
// retry as a parenthesized term if that attempt doesn't hold up — i.e.
// if what follows the closing ")" cannot itself start a term.
func (p *Parser) parseTermLeft() ast.Term {
	switch p.c.cur().Type {
	case lexer.NEW:
		return p.parseNewCall()
	case lexer.THIS:
		tok := p.c.advance()
		return &ast.Variable{Name: ast.This, Position: tok.Pos}
	case lexer.IDENT:
		tok := p.c.advance()
		return &ast.Variable{Name: ast.FieldName(tok.Literal), Position: tok.Pos}
	case lexer.LPAREN:
		if cast := p.tryParseCast(); cast != nil {
			return cast
		}
		p.expect(lexer.LPAREN, "'('")
		inner := p.parseTerm()
		p.expect(lexer.RPAREN, "')'")
		return inner
	default:
		p.errorf(p.c.cur().Pos, "unexpected token %q, expected a term", p.c.cur().Literal)
		return nil
	}
}

func (p *Parser) tryParseCast() ast.Term {
	mark := p.c.mark()
	openTok := p.c.cur()

	if openTok.Type != lexer.LPAREN {
		return nil
	}
	p.c.advance()

	classTok := p.c.cur()
	if classTok.Type != lexer.IDENT {
		p.c.reset(mark)
		return nil
	}
	p.c.advance()

	if p.c.cur().Type != lexer.RPAREN {
		p.c.reset(mark)
		return nil
	}
	p.c.advance()

	if !startsTermLeft(p.c.cur().Type) {
		p.c.reset(mark)
		return nil
	}

	inner := p.parseTerm()
	return &ast.Cast{To: ast.ClassName(classTok.Literal), Term: inner, Position: openTok.Pos}
}

func (p *Parser) parseNewCall() ast.Term {
	newTok, _ := p.expect(lexer.NEW, "'new'")
	classTok, ok := p.expect(lexer.IDENT, "class name")
	if !ok {
		return nil
	}
	p.expect(lexer.LPAREN, "'('")
	args := p.parseTermArgList()
	p.expect(lexer.RPAREN, "')'")
	return &ast.NewCall{Class: ast.ClassName(classTok.Literal), Args: args, Position: newTok.Pos}
}
