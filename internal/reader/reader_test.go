package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Window(t *testing.T) {
	r := New("abc")
	assert.Equal(t, 'a', r.Curr())
	assert.Equal(t, 'b', r.Next())
	assert.Equal(t, 'c', r.NextNext())
	assert.True(t, r.IsCurr('a'))
	assert.True(t, r.IsNext('b'))
	assert.True(t, r.IsNextNext('c'))
	assert.False(t, r.IsEOF())
}

func TestReader_EmptySource(t *testing.T) {
	r := New("")
	assert.True(t, r.IsEOF())
	assert.Equal(t, Nil, r.Curr())
}

func TestReader_BumpAdvancesWindow(t *testing.T) {
	r := New("xy")
	assert.Equal(t, 'x', r.BumpCurr())
	assert.Equal(t, 'y', r.Curr())
	r.Bump()
	assert.True(t, r.IsEOF())
}

func TestReader_BumpIf(t *testing.T) {
	r := New("==")
	assert.True(t, r.BumpIf('='))
	assert.False(t, r.BumpIf('x'))
	assert.True(t, r.BumpIf('='))
	assert.True(t, r.IsEOF())
}

func TestReader_LineColumnTracking(t *testing.T) {
	r := New("ab\ncd")
	r.Bump() // a -> b
	r.Bump() // b -> \n
	pos := r.CurrPos()
	require.Equal(t, 1, pos.Line)
	r.Bump() // \n -> c
	pos = r.CurrPos()
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 1, pos.Column)
}

func TestReader_CRLFIsSingleLineBreak(t *testing.T) {
	r := New("a\r\nb")
	r.Bump() // a -> \r
	assert.Equal(t, 1, r.CurrPos().Line)
	r.Bump() // \r -> \n
	assert.Equal(t, 1, r.CurrPos().Line)
	r.Bump() // \n -> b
	pos := r.CurrPos()
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 1, pos.Column)
}

func TestReader_WithStrFrom(t *testing.T) {
	r := New("hello world")
	start := r.CurrPosIdx()
	for !r.IsCurr(' ') {
		r.Bump()
	}
	assert.Equal(t, "hello", r.WithStrFrom(start))
}

func TestReader_ConsumeWhitespaceAndComments_LineComment(t *testing.T) {
	r := New("   // a comment\nrest")
	r.ConsumeWhitespaceAndComments()
	assert.Equal(t, 'r', r.Curr())
}

func TestReader_ConsumeWhitespaceAndComments_BlockComment(t *testing.T) {
	r := New("/* block\ncomment */ rest")
	r.ConsumeWhitespaceAndComments()
	assert.Equal(t, 'r', r.Curr())
}

func TestReader_ConsumeWhitespaceAndComments_Nested(t *testing.T) {
	r := New("  /* c1 */  // c2\n  done")
	r.ConsumeWhitespaceAndComments()
	assert.Equal(t, 'd', r.Curr())
}

func TestReader_UnterminatedBlockCommentReachesEOF(t *testing.T) {
	r := New("/* never closes")
	r.ConsumeWhitespaceAndComments()
	assert.True(t, r.IsEOF())
}
