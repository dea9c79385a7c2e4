package parser

import (
	"fmt"

	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// ParseError is a single syntax error, positioned in the source text it
// was found in.
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *ParseError) Position() lexer.Position { return e.Pos }

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}
