// Package errors formats compiler and runtime diagnostics with source
// context — the line of text the error refers to and a caret pointing at
// the offending column — independently of which phase (parsing,
// class-table construction, typing, reduction) produced the diagnostic.
package errors

import (
	"fmt"
	"strings"

	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Positioned is implemented by any error that knows where in the source
// text it occurred. ClassTableError, TypingError, and EvalError all
// implement it.
type Positioned interface {
	error
	Position() lexer.Position
}

// CompilerError decorates a Positioned error with the source text and
// file name needed to render it with a caret.
type CompilerError struct {
	Err    error
	Pos    lexer.Position
	Source string
	File   string
}

// NewCompilerError wraps err, which occurred at pos in source, for display.
func NewCompilerError(pos lexer.Position, err error, source, file string) *CompilerError {
	return &CompilerError{Err: err, Pos: pos, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Unwrap exposes the wrapped error for errors.Is/As.
func (e *CompilerError) Unwrap() error {
	return e.Err
}

// Format renders the error with a file:line:col header, the offending
// source line, and a caret under the reported column. When color is true
// the caret and message are wrapped in ANSI bold/red escapes for terminal
// output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Err.Error())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FromPositioned wraps every Positioned error in errs as a CompilerError
// against source/file, preserving order.
func FromPositioned(errs []Positioned, source, file string) []*CompilerError {
	out := make([]*CompilerError, 0, len(errs))
	for _, e := range errs {
		out = append(out, NewCompilerError(e.Position(), e, source, file))
	}
	return out
}

// FormatAll renders each error in order, separated by blank lines.
func FormatAll(errs []*CompilerError, color bool) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Format(color))
	}
	return strings.Join(parts, "\n\n")
}
