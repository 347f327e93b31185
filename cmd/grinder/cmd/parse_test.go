package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParse_EvalExpressionPlainOutput(t *testing.T) {
	parseExpressionFlag, parseDumpAST, parseJSON = true, false, false
	defer func() { parseExpressionFlag = false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := runParse(parseCmd, []string{"1 + 2;"})
	w.Close()
	os.Stdout = old
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	assert.Contains(t, buf.String(), "+")
}

func TestRunParse_JSONOutput(t *testing.T) {
	parseExpressionFlag, parseDumpAST, parseJSON = true, false, true
	defer func() { parseExpressionFlag, parseJSON = false, false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := runParse(parseCmd, []string{"1;"})
	w.Close()
	os.Stdout = old
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Program", decoded["type"])
}

func TestRunParse_DumpASTOutput(t *testing.T) {
	parseExpressionFlag, parseDumpAST, parseJSON = true, true, false
	defer func() { parseExpressionFlag, parseDumpAST = false, false }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := runParse(parseCmd, []string{"var x = 1;"})
	w.Close()
	os.Stdout = old
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	assert.Contains(t, buf.String(), "VariableDeclaration")
}

func TestRunParse_SyntaxErrorReturnsExitCodeOne(t *testing.T) {
	parseExpressionFlag, parseDumpAST, parseJSON = true, false, false
	defer func() { parseExpressionFlag = false }()

	err := runParse(parseCmd, []string{"1 = 2;"})
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestRunParse_NoExpressionProvidedIsError(t *testing.T) {
	parseExpressionFlag, parseDumpAST, parseJSON = true, false, false
	defer func() { parseExpressionFlag = false }()

	err := runParse(parseCmd, nil)
	require.Error(t, err)
}

func TestDumpASTNode_BinaryAndCallExpressions(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	parseExpressionFlag, parseDumpAST, parseJSON = true, true, false
	defer func() { parseExpressionFlag, parseDumpAST = false, false }()
	err := runParse(parseCmd, []string{"foo(1, 2) + bar.baz;"})

	w.Close()
	os.Stdout = old
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()
	assert.Contains(t, out, "BinaryExpression")
	assert.Contains(t, out, "CallExpression")
	assert.Contains(t, out, "MemberExpression")
}
