package parser

import (
	"testing"

	"github.com/cwbudde/grinder/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprListToParams_SingleIdentifier(t *testing.T) {
	id := &ast.Identifier{Name: "x"}
	params, err := exprListToParams(id)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Same(t, id, params[0])
}

func TestExprListToParams_SequenceOfIdentifiers(t *testing.T) {
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{
		&ast.Identifier{Name: "a"},
		&ast.Identifier{Name: "b"},
	}}
	params, err := exprListToParams(seq)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].(*ast.Identifier).Name)
	assert.Equal(t, "b", params[1].(*ast.Identifier).Name)
}

func TestExprListToParams_RejectsNonIdentifierInSequence(t *testing.T) {
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{
		&ast.Identifier{Name: "a"},
		&ast.Literal{Kind: ast.LitNumeric, Number: 1},
	}}
	_, err := exprListToParams(seq)
	require.Error(t, err)
}

func TestExprListToParams_RejectsOtherExpressionKinds(t *testing.T) {
	_, err := exprListToParams(&ast.Literal{Kind: ast.LitNumeric, Number: 1})
	require.Error(t, err)
}

func TestParseFunctionDeclaration_ParamsHaveParallelDefaults(t *testing.T) {
	stmt := parseOne(t, "function f(a, b, c) {}")
	decl := stmt.(*ast.FunctionDeclaration)
	assert.Len(t, decl.Function.Defaults, len(decl.Function.Params))
}

func TestParseFunctionDeclaration_NoParams(t *testing.T) {
	stmt := parseOne(t, "function f() {}")
	decl := stmt.(*ast.FunctionDeclaration)
	assert.Len(t, decl.Function.Params, 0)
}

func TestParseFunctionExpression_Named(t *testing.T) {
	fn := exprOf(t, "(function named() {});").(*ast.FunctionExpression)
	require.NotNil(t, fn.Function.ID)
	assert.Equal(t, "named", fn.Function.ID.Name)
}
