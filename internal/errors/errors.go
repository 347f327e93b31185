// Package errors formats lexer and parser diagnostics with source context:
// a file:line:col header, the offending source line, and a caret pointing
// at the column. Grounded on the teacher's internal/errors package, adapted
// from DWScript's semantic-analysis error kinds to the LexError/ParseError
// kinds of the lexer and parser packages.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/grinder/internal/lexer"
	"github.com/cwbudde/grinder/internal/parser"
	"github.com/cwbudde/grinder/internal/token"
)

// CompilerError is a single lexer or parser diagnostic with enough context
// to render a caret pointing at the failing column.
type CompilerError struct {
	Kind    string
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError builds a CompilerError from its parts directly.
func NewCompilerError(kind, message string, pos token.Position, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Message: message, Pos: pos, Source: source, File: file}
}

// FromError adapts a *lexer.LexError or *parser.ParseError into a
// CompilerError carrying the source and file needed to render context. Any
// other error is wrapped with no position, so Format still produces a
// readable (if caret-less) message.
func FromError(err error, source, file string) *CompilerError {
	switch e := err.(type) {
	case *lexer.LexError:
		return NewCompilerError(e.Kind, e.Message, e.Pos, source, file)
	case *parser.ParseError:
		return NewCompilerError(e.Kind, e.Message, e.Pos, source, file)
	default:
		return NewCompilerError("Error", err.Error(), token.Position{}, source, file)
	}
}

// Error implements the error interface, matching the bare "kind: message at
// line:col" form the lexer and parser already return when used as a
// library (no file context).
func (e *CompilerError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Format renders the error with a file:line:col header, the source line,
// and a caret. If color is true, ANSI color codes highlight the caret and
// message for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
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
	if e.Kind != "" {
		sb.WriteString(e.Kind)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// getSourceLine extracts a single 1-indexed line from Source.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}
