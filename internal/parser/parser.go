// Package parser implements a hand-written recursive-descent parser for
// the two Featherweight Java grammars of spec.md §6.1: the class-library
// grammar (ParseProgram) and the single-term expression grammar
// (ParseTerm). There is no parser-generator or combinator library in the
// dependency graph — the grammar is small enough, and the one ambiguous
// production (cast vs. parenthesized term) is resolved by a short
// backtracking lookahead (see terms.go).
package parser

import (
	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Parser turns FJ source text into an AST, accumulating syntax errors
// rather than aborting at the first one where it safely can.
type Parser struct {
	c      *tokenCursor
	errors []*ParseError
}

// New creates a Parser over the given source text.
func New(input string) *Parser {
	return &Parser{c: newTokenCursor(input)}
}

// Errors returns every syntax error collected during parsing.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// ParseProgram parses a full class library: `program := class_definition*`.
func (p *Parser) ParseProgram() *ast.Ast {
	prog := &ast.Ast{}
	for p.c.cur().Type != lexer.EOF {
		cd := p.parseClassDefinition()
		if cd != nil {
			prog.Classes = append(prog.Classes, cd)
		} else {
			// Skip the offending token to avoid an infinite loop.
			p.c.advance()
		}
	}
	return prog
}

// ParseTerm parses a single expression followed by end-of-input, the
// second grammar entry point of spec.md §6.1.
func (p *Parser) ParseTerm() ast.Term {
	t := p.parseTerm()
	if p.c.cur().Type != lexer.EOF {
		p.errorf(p.c.cur().Pos, "unexpected trailing input %q", p.c.cur().Literal)
	}
	return t
}

func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, bool) {
	tok := p.c.cur()
	if tok.Type != tt {
		p.errorf(tok.Pos, "expected %s, got %q", what, tok.Literal)
		return tok, false
	}
	return p.c.advance(), true
}

func (p *Parser) parseClassDefinition() *ast.ClassDefinition {
	classTok, ok := p.expect(lexer.CLASS, "'class'")
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(lexer.IDENT, "class name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.EXTENDS, "'extends'"); !ok {
		return nil
	}
	superTok, ok := p.expect(lexer.IDENT, "superclass name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.LBRACE, "'{'"); !ok {
		return nil
	}

	cd := &ast.ClassDefinition{
		Name:     ast.ClassName(nameTok.Literal),
		Super:    ast.ClassName(superTok.Literal),
		Position: classTok.Pos,
	}

	for p.c.cur().Type != lexer.RBRACE && p.c.cur().Type != lexer.EOF {
		if p.c.cur().Type == lexer.IDENT && p.c.peek(1).Type == lexer.LPAREN {
			cd.Constructor = p.parseConstructor()
			continue
		}

		typeTok, ok := p.expect(lexer.IDENT, "field or method type")
		if !ok {
			p.c.advance()
			continue
		}
		nameTok, ok := p.expect(lexer.IDENT, "field or method name")
		if !ok {
			continue
		}

		switch p.c.cur().Type {
		case lexer.SEMI:
			p.c.advance()
			cd.Fields = append(cd.Fields, ast.Field{
				Type: ast.ClassName(typeTok.Literal),
				Name: ast.FieldName(nameTok.Literal),
			})
		case lexer.LPAREN:
			m := p.parseMethodDefinition(ast.ClassName(typeTok.Literal), ast.MethodName(nameTok.Literal), typeTok.Pos)
			if m != nil {
				cd.Methods = append(cd.Methods, m)
			}
		default:
			p.errorf(p.c.cur().Pos, "expected ';' or '(' after %s %s", typeTok.Literal, nameTok.Literal)
		}
	}

	p.expect(lexer.RBRACE, "'}'")
	return cd
}

func (p *Parser) parseArgList() []ast.Field {
	var args []ast.Field
	if p.c.cur().Type == lexer.RPAREN {
		return args
	}
	for {
		typeTok, ok := p.expect(lexer.IDENT, "argument type")
		if !ok {
			break
		}
		nameTok, ok := p.expect(lexer.IDENT, "argument name")
		if !ok {
			break
		}
		args = append(args, ast.Field{Type: ast.ClassName(typeTok.Literal), Name: ast.FieldName(nameTok.Literal)})
		if p.c.cur().Type != lexer.COMMA {
			break
		}
		p.c.advance()
	}
	return args
}

func (p *Parser) parseFieldList() []ast.FieldName {
	var names []ast.FieldName
	if p.c.cur().Type == lexer.RPAREN {
		return names
	}
	for {
		tok, ok := p.expect(lexer.IDENT, "field name")
		if !ok {
			break
		}
		names = append(names, ast.FieldName(tok.Literal))
		if p.c.cur().Type != lexer.COMMA {
			break
		}
		p.c.advance()
	}
	return names
}

func (p *Parser) parseConstructor() *ast.Constructor {
	nameTok, ok := p.expect(lexer.IDENT, "constructor name")
	if !ok {
		return nil
	}
	p.expect(lexer.LPAREN, "'('")
	args := p.parseArgList()
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.LBRACE, "'{'")
	p.expect(lexer.SUPER, "'super'")
	p.expect(lexer.LPAREN, "'('")
	superCall := p.parseFieldList()
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.SEMI, "';'")

	ctor := &ast.Constructor{
		Name:      ast.ClassName(nameTok.Literal),
		Args:      args,
		SuperCall: superCall,
		Position:  nameTok.Pos,
	}

	for p.c.cur().Type == lexer.THIS {
		p.c.advance()
		p.expect(lexer.DOT, "'.'")
		fieldTok, ok := p.expect(lexer.IDENT, "field name")
		if !ok {
			break
		}
		p.expect(lexer.ASSIGN, "'='")
		argTok, ok := p.expect(lexer.IDENT, "argument name")
		if !ok {
			break
		}
		p.expect(lexer.SEMI, "';'")
		ctor.Assigns = append(ctor.Assigns, ast.Assignment{
			Field: ast.FieldName(fieldTok.Literal),
			Arg:   ast.FieldName(argTok.Literal),
		})
	}

	p.expect(lexer.RBRACE, "'}'")
	return ctor
}

func (p *Parser) parseMethodDefinition(returnType ast.ClassName, name ast.MethodName, pos lexer.Position) *ast.MethodDefinition {
	p.expect(lexer.LPAREN, "'('")
	args := p.parseArgList()
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.LBRACE, "'{'")
	p.expect(lexer.RETURN, "'return'")
	body := p.parseTerm()
	p.expect(lexer.SEMI, "';'")
	p.expect(lexer.RBRACE, "'}'")

	return &ast.MethodDefinition{
		ReturnType: returnType,
		Name:       name,
		Args:       args,
		Body:       body,
		Position:   pos,
	}
}
