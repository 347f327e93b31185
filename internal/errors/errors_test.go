package errors

import (
	"testing"

	"github.com/cwbudde/grinder/internal/lexer"
	"github.com/cwbudde/grinder/internal/parser"
	"github.com/cwbudde/grinder/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerError_ErrorFallsBackToBareForm(t *testing.T) {
	e := NewCompilerError("UnexpectedToken", "unexpected )", token.Position{Line: 2, Column: 5}, "", "")
	assert.Equal(t, "UnexpectedToken: unexpected ) at 2:5", e.Error())
}

func TestCompilerError_FormatShowsSourceLineAndCaret(t *testing.T) {
	src := "var x = ;\n"
	e := NewCompilerError("UnexpectedToken", "unexpected ;", token.Position{Line: 1, Column: 9}, src, "script.js")

	out := e.Format(false)
	assert.Contains(t, out, "Error in script.js:1:9")
	assert.Contains(t, out, "var x = ;")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "UnexpectedToken: unexpected ;")
}

func TestCompilerError_FormatWithoutFileUsesBareHeader(t *testing.T) {
	e := NewCompilerError("UnexpectedToken", "unexpected ;", token.Position{Line: 1, Column: 1}, "x;", "")
	out := e.Format(false)
	assert.Contains(t, out, "Error at line 1:1")
}

func TestCompilerError_FormatColorWrapsCaretAndMessage(t *testing.T) {
	e := NewCompilerError("UnexpectedToken", "bad", token.Position{Line: 1, Column: 1}, "x", "f.js")
	out := e.Format(true)
	assert.Contains(t, out, "\033[1;31m^\033[0m")
	assert.Contains(t, out, "\033[1m")
}

func TestCompilerError_FormatOutOfRangeLineOmitsSourceLine(t *testing.T) {
	e := NewCompilerError("UnexpectedToken", "bad", token.Position{Line: 99, Column: 1}, "x;", "f.js")
	out := e.Format(false)
	assert.NotContains(t, out, "99 | ")
}

func TestFromError_AdaptsLexError(t *testing.T) {
	le := &lexer.LexError{Kind: lexer.ErrUnexpectedString, Message: "unterminated string", Pos: token.Position{Line: 1, Column: 1}}
	cerr := FromError(le, "'abc", "f.js")
	assert.Equal(t, lexer.ErrUnexpectedString, cerr.Kind)
	assert.Equal(t, "unterminated string", cerr.Message)
}

func TestFromError_AdaptsParseError(t *testing.T) {
	_, err := parser.Parse("1 = 2;")
	require.Error(t, err)

	cerr := FromError(err, "1 = 2;", "<eval>")
	assert.Equal(t, parser.ErrUnexpectedToken, cerr.Kind)
	assert.Contains(t, cerr.Format(false), "<eval>")
}

func TestFromError_WrapsUnknownErrorWithNoPosition(t *testing.T) {
	cerr := FromError(assertErr{"boom"}, "src", "f.js")
	assert.Equal(t, "Error", cerr.Kind)
	assert.Equal(t, "boom", cerr.Message)
	assert.Equal(t, token.Position{}, cerr.Pos)
}

type assertErr struct{ msg string }

func (e assertErr) Error() string { return e.msg }
