package parser

import (
	"errors"

	"github.com/cwbudde/grinder/internal/ast"
	"github.com/cwbudde/grinder/internal/token"
)

// parseFunctionDeclaration parses `function` Identifier `(` Params `)`
// Block. A declaration always names its function, unlike an expression.
func (p *Parser) parseFunctionDeclaration() ast.Statement {
	start := p.cur.Pos
	p.bump() // function
	nameTok := p.bumpExpected(token.IDENT)
	id := &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
	params := p.parseParamList()
	body := p.parseBlockStatement()
	fn := &ast.Function{ID: id, Params: params, Defaults: make([]ast.Expression, len(params)), Body: body}
	return &ast.FunctionDeclaration{Base: locBase(p, start), Function: fn}
}

// parseFunctionExpression parses `function` [Identifier] `(` Params `)`
// Block, called from parsePrimaryExpression with start already pointing at
// the `function` keyword. The name is optional here, unlike a declaration.
func (p *Parser) parseFunctionExpression(start token.Position) ast.Expression {
	p.bump() // function
	var id *ast.Identifier
	if p.isCurr(token.IDENT) {
		nameTok := p.bumpCurr()
		id = &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
	}
	params := p.parseParamList()
	body := p.parseBlockStatement()
	fn := &ast.Function{ID: id, Params: params, Defaults: make([]ast.Expression, len(params)), Body: body}
	return &ast.FunctionExpression{Base: locBase(p, start), Function: fn}
}

// parseParamList parses a parenthesized, comma-separated Identifier list.
// Destructuring parameter patterns are not part of this grammar.
func (p *Parser) parseParamList() []ast.Pattern {
	p.bumpExpected(token.LPAREN)
	var params []ast.Pattern
	for !p.isCurr(token.RPAREN) {
		nameTok := p.bumpExpected(token.IDENT)
		params = append(params, &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal})
		if !p.bumpIf(token.COMMA) {
			break
		}
	}
	p.bumpExpected(token.RPAREN)
	return params
}

// parseArrowFunctionBody consumes the `=>` and its body, reusing the
// already-parsed parameter list. A block body yields Expression=false; a
// bare AssignmentExpression body yields Expression=true. Arrow functions
// reuse ast.Function with ID left nil, since they are always anonymous.
func (p *Parser) parseArrowFunctionBody(start token.Position, params []ast.Pattern) ast.Expression {
	p.bumpExpected(token.ARROW)
	var body ast.Node
	isExpr := true
	if p.isCurr(token.LBRACE) {
		body = p.parseBlockStatement()
		isExpr = false
	} else {
		body = p.parseAssignmentExpression()
	}
	fn := &ast.Function{Params: params, Defaults: make([]ast.Expression, len(params)), Body: body, Expression: isExpr}
	return &ast.ArrowFunctionExpression{Base: locBase(p, start), Function: fn}
}

// exprListToParams converts an already-parsed parenthesized expression
// (either a bare Identifier or a SequenceExpression of Identifiers, which
// is how `(a, b)` parses before the `=>` lookahead fires) into an arrow
// function's parameter list.
func exprListToParams(expr ast.Expression) ([]ast.Pattern, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return []ast.Pattern{e}, nil
	case *ast.SequenceExpression:
		params := make([]ast.Pattern, len(e.Expressions))
		for i, sub := range e.Expressions {
			id, ok := sub.(*ast.Identifier)
			if !ok {
				return nil, errors.New("arrow function parameters must be plain identifiers")
			}
			params[i] = id
		}
		return params, nil
	}
	return nil, errors.New("invalid arrow function parameter list")
}
