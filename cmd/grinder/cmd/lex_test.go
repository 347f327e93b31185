package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/cwbudde/grinder/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource_EvalFlagTakesPriority(t *testing.T) {
	evalExpr = "var x = 1;"
	defer func() { evalExpr = "" }()

	input, filename, err := readSource(nil)
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;", input)
	assert.Equal(t, "<eval>", filename)
}

func TestReadSource_MissingFileIsIOError(t *testing.T) {
	_, _, err := readSource([]string{"/nonexistent/path/does-not-exist.js"})
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestReadSource_ReadsExistingFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "grinder-*.js")
	require.NoError(t, err)
	_, err = f.WriteString("a;")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	input, filename, err := readSource([]string{f.Name()})
	require.NoError(t, err)
	assert.Equal(t, "a;", input)
	assert.Equal(t, f.Name(), filename)
}

func TestLexScript_ReportsIllegalTokenCount(t *testing.T) {
	evalExpr = "@"
	onlyErrors = false
	showType, showPos = false, false
	defer func() { evalExpr = ""; onlyErrors = false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := lexScript(lexCmd, nil)
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	require.Error(t, err)
	assert.Equal(t, "found 1 illegal token(s)", err.Error())
}

func TestLexScript_TokenizesCleanSource(t *testing.T) {
	evalExpr = "var x = 1;"
	showType = true
	defer func() { evalExpr = ""; showType = false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := lexScript(lexCmd, nil)
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "KEYWORD")
}

func TestPrintToken_ShowsLiteralAndType(t *testing.T) {
	showType = true
	showPos = false
	defer func() { showType = false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	printToken(token.Token{Type: token.IDENT, Literal: "foo"})
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()
	assert.Contains(t, out, "IDENT")
	assert.Contains(t, out, "foo")
}
