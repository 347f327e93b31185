package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	assert.Equal(t, "3:7", p.String())
}

func TestSourceLocation_String(t *testing.T) {
	loc := SourceLocation{Start: Position{Line: 1, Column: 1}, End: Position{Line: 2, Column: 5}}
	assert.Equal(t, "1:1-2:5", loc.String())
}

func TestBinopFor(t *testing.T) {
	b, ok := BinopFor(PLUS)
	assert.True(t, ok)
	assert.Equal(t, BOP_PLUS, b)

	b, ok = BinopFor(PLUS_ASSIGN)
	assert.True(t, ok)
	assert.Equal(t, BOP_PLUS, b)

	_, ok = BinopFor(IDENT)
	assert.False(t, ok)
}

func TestIsCompoundAssign(t *testing.T) {
	assert.True(t, IsCompoundAssign(PLUS_ASSIGN))
	assert.False(t, IsCompoundAssign(PLUS))
}

func TestBinopString(t *testing.T) {
	assert.Equal(t, "+", BOP_PLUS.String())
	assert.Equal(t, ">>>", BOP_URSH.String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, ";", SEMICOLON.String())
	assert.Equal(t, "=>", ARROW.String())
	assert.Equal(t, "UNKNOWN", Type(9999).String())
}

func TestToken_Length(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "foobar"}
	assert.Equal(t, 6, tok.Length())

	tok = Token{Type: SEMICOLON}
	assert.Equal(t, 1, tok.Length())

	tok = Token{Type: STRICT_EQ}
	assert.Equal(t, 3, tok.Length())
}

func TestLookupKeyword(t *testing.T) {
	kw, ok := LookupKeyword("return")
	assert.True(t, ok)
	assert.Equal(t, RETURN, kw)

	_, ok = LookupKeyword("notakeyword")
	assert.False(t, ok)
}

func TestLookupStrictKeyword(t *testing.T) {
	kw, ok := LookupStrictKeyword("let")
	assert.True(t, ok)
	assert.Equal(t, LET, kw)

	_, ok = LookupStrictKeyword("var")
	assert.False(t, ok)
}

func TestKeywordString(t *testing.T) {
	assert.Equal(t, "instanceof", INSTANCEOF.String())
	assert.Equal(t, "let", LET.String())
}
