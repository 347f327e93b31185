package parser

import (
	"github.com/cwbudde/grinder/internal/ast"
	"github.com/cwbudde/grinder/internal/token"
)

// parseStatement dispatches on the current token, falling through to
// ExpressionStatement when nothing else matches.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.isCurr(token.SEMICOLON):
		return p.parseEmptyStatement()
	case p.isCurr(token.LBRACE):
		return p.parseBlockStatement()
	case p.isCurrKeyword(token.IF):
		return p.parseIfStatement()
	case p.isCurrKeyword(token.DO):
		return p.parseDoWhileStatement()
	case p.isCurrKeyword(token.WHILE):
		return p.parseWhileStatement()
	case p.isCurrKeyword(token.FOR):
		return p.parseForStatement()
	case p.isCurrKeyword(token.CONTINUE):
		return p.parseContinueStatement()
	case p.isCurrKeyword(token.BREAK):
		return p.parseBreakStatement()
	case p.isCurrKeyword(token.RETURN):
		return p.parseReturnStatement()
	case p.isCurrKeyword(token.WITH):
		return p.parseWithStatement()
	case p.isCurrKeyword(token.SWITCH):
		return p.parseSwitchStatement()
	case p.isCurrKeyword(token.THROW):
		return p.parseThrowStatement()
	case p.isCurrKeyword(token.TRY):
		return p.parseTryStatement()
	case p.isCurrKeyword(token.VAR):
		return p.parseVariableStatement(ast.Var)
	case p.isCurrStrictKeyword(token.LET):
		return p.parseVariableStatement(ast.Let)
	case p.isCurrKeyword(token.CONST):
		return p.parseVariableStatement(ast.Const)
	case p.isCurrKeyword(token.FUNCTION):
		return p.parseFunctionDeclaration()
	case p.isCurr(token.IDENT) && p.isNext(token.COLON):
		return p.parseLabeledStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) isCurrStrictKeyword(kw token.StrictKeyword) bool {
	return p.cur.Type == token.STRICT_KEYWORD && p.cur.Literal == kw.String()
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	start := p.cur.Pos
	p.bump()
	return &ast.EmptyStatement{Base: locBase(p, start)}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.cur.Pos
	p.bumpExpected(token.LBRACE)
	var body []ast.Statement
	for !p.isCurr(token.RBRACE) && !p.isCurr(token.EOF) {
		body = append(body, p.parseStatement())
	}
	p.bumpExpected(token.RBRACE)
	return &ast.BlockStatement{Base: locBase(p, start), Body: body}
}

// parseExpressionStatement is never reached when the current token is `{`
// or `function`, since parseStatement dispatches those to Block/
// FunctionDeclaration first, avoiding the classic ambiguity between a
// block and an object-literal expression statement.
func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur.Pos
	expr := p.parseExpression()
	p.bumpSemicolon()
	return &ast.ExpressionStatement{Base: locBase(p, start), Expr: expr}
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // if
	p.bumpExpected(token.LPAREN)
	test := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.isCurrKeyword(token.ELSE) {
		p.bump()
		alternate = p.parseStatement()
	}
	return &ast.IfStatement{Base: locBase(p, start), Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // do
	body := p.parseStatement()
	if !p.isCurrKeyword(token.WHILE) {
		p.fail(ErrUnexpectedToken, "expected 'while' after do-statement body")
	}
	p.bump()
	p.bumpExpected(token.LPAREN)
	test := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	p.bumpSemicolon()
	return &ast.DoWhileStatement{Base: locBase(p, start), Body: body, Test: test}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // while
	p.bumpExpected(token.LPAREN)
	test := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	body := p.parseStatement()
	return &ast.WhileStatement{Base: locBase(p, start), Test: test, Body: body}
}

// parseForStatement disambiguates ForStatement from ForInStatement/
// ForOfStatement by parsing the init clause then testing for `in`/`of`.
func (p *Parser) parseForStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // for
	p.bumpExpected(token.LPAREN)

	var init ast.Node
	switch {
	case p.isCurr(token.SEMICOLON):
		// no init clause
	case p.isCurrKeyword(token.VAR):
		init = p.parseVariableDeclarationNoIn(ast.Var)
	case p.isCurrStrictKeyword(token.LET):
		init = p.parseVariableDeclarationNoIn(ast.Let)
	case p.isCurrKeyword(token.CONST):
		init = p.parseVariableDeclarationNoIn(ast.Const)
	default:
		p.noIn = true
		init = p.parseExpression()
		p.noIn = false
	}

	if p.isCurrKeyword(token.IN) || p.isCurrIdentOf() {
		isOf := p.isCurrIdentOf()
		p.bump() // in / of
		right := p.parseExpression()
		p.bumpExpected(token.RPAREN)
		body := p.parseStatement()
		left := forHeaderLeft(init)
		return &ast.ForInStatement{Base: locBase(p, start), Left: left, Right: right, Body: body, Of: isOf}
	}

	p.bumpExpected(token.SEMICOLON)
	var test ast.Expression
	if !p.isCurr(token.SEMICOLON) {
		test = p.parseExpression()
	}
	p.bumpExpected(token.SEMICOLON)
	var update ast.Expression
	if !p.isCurr(token.RPAREN) {
		update = p.parseExpression()
	}
	p.bumpExpected(token.RPAREN)
	body := p.parseStatement()
	return &ast.ForStatement{Base: locBase(p, start), Init: init, Test: test, Update: update, Body: body}
}

// isCurrIdentOf recognizes the contextual `of` keyword of a for-of header;
// `of` is not a reserved word, so it is lexed as a plain IDENT.
func (p *Parser) isCurrIdentOf() bool {
	return p.isCurr(token.IDENT) && p.cur.Literal == "of"
}

func forHeaderLeft(init ast.Node) ast.Node {
	if init == nil {
		return nil
	}
	return init
}

// parseVariableDeclarationNoIn parses a VariableDeclaration while
// suppressing `in` as a relational operator in initializer expressions,
// so `for (var i in obj)` can disambiguate correctly.
func (p *Parser) parseVariableDeclarationNoIn(kind ast.VarKind) *ast.VariableDeclaration {
	p.noIn = true
	decl := p.parseVariableDeclarationBody(kind)
	p.noIn = false
	return decl
}

func (p *Parser) parseContinueStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // continue
	var label *ast.Identifier
	if p.isCurr(token.IDENT) && !p.cur.NewlineBefore {
		tok := p.bumpCurr()
		label = &ast.Identifier{Base: locBase(p, tok.Pos), Name: tok.Literal}
	}
	p.bumpSemicolon()
	return &ast.ContinueStatement{Base: locBase(p, start), Label: label}
}

// parseBreakStatement parses BreakStatement. Fixes a known bug in the
// reference parser, which routed `break` dispatch to the with-statement
// production by mistake.
func (p *Parser) parseBreakStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // break
	var label *ast.Identifier
	if p.isCurr(token.IDENT) && !p.cur.NewlineBefore {
		tok := p.bumpCurr()
		label = &ast.Identifier{Base: locBase(p, tok.Pos), Name: tok.Literal}
	}
	p.bumpSemicolon()
	return &ast.BreakStatement{Base: locBase(p, start), Label: label}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // return
	var arg ast.Expression
	if !p.isCurr(token.SEMICOLON) && !p.isCurr(token.RBRACE) && !p.isCurr(token.EOF) && !p.cur.NewlineBefore {
		arg = p.parseExpression()
	}
	p.bumpSemicolon()
	return &ast.ReturnStatement{Base: locBase(p, start), Argument: arg}
}

// parseWithStatement parses WithStatement. Strict-mode rejection of `with`
// is left to a later pass; the parser itself always accepts the grammar
// production.
func (p *Parser) parseWithStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // with
	p.bumpExpected(token.LPAREN)
	object := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	body := p.parseStatement()
	return &ast.WithStatement{Base: locBase(p, start), Object: object, Body: body}
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // switch
	p.bumpExpected(token.LPAREN)
	discriminant := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	p.bumpExpected(token.LBRACE)

	var cases []*ast.SwitchCase
	for !p.isCurr(token.RBRACE) {
		cases = append(cases, p.parseSwitchCase())
	}
	p.bumpExpected(token.RBRACE)
	return &ast.SwitchStatement{Base: locBase(p, start), Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.cur.Pos
	var test ast.Expression
	if p.isCurrKeyword(token.CASE) {
		p.bump()
		test = p.parseExpression()
	} else {
		if !p.isCurrKeyword(token.DEFAULT) {
			p.fail(ErrUnexpectedToken, "expected 'case' or 'default'")
		}
		p.bump()
	}
	p.bumpExpected(token.COLON)
	var body []ast.Statement
	for !p.isCurrKeyword(token.CASE) && !p.isCurrKeyword(token.DEFAULT) && !p.isCurr(token.RBRACE) {
		body = append(body, p.parseStatement())
	}
	return &ast.SwitchCase{Base: locBase(p, start), Test: test, Consequent: body}
}

func (p *Parser) parseThrowStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // throw
	if p.cur.NewlineBefore {
		p.fail(ErrUnexpectedToken, "illegal newline after 'throw'")
	}
	arg := p.parseExpression()
	p.bumpSemicolon()
	return &ast.ThrowStatement{Base: locBase(p, start), Argument: arg}
}

func (p *Parser) parseTryStatement() ast.Statement {
	start := p.cur.Pos
	p.bump() // try
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.isCurrKeyword(token.CATCH) {
		catchStart := p.cur.Pos
		p.bump()
		p.bumpExpected(token.LPAREN)
		nameTok := p.bumpExpected(token.IDENT)
		param := &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
		p.bumpExpected(token.RPAREN)
		catchBody := p.parseBlockStatement()
		handler = &ast.CatchClause{Base: locBase(p, catchStart), Param: param, Body: catchBody}
	}

	var finalizer *ast.BlockStatement
	if p.isCurrKeyword(token.FINALLY) {
		p.bump()
		finalizer = p.parseBlockStatement()
	}

	if handler == nil && finalizer == nil {
		p.fail(ErrUnexpectedToken, "missing catch or finally after try block")
	}
	return &ast.TryStatement{Base: locBase(p, start), Block: block, Handler: handler, Finalizer: finalizer}
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	start := p.cur.Pos
	nameTok := p.bumpCurr()
	label := &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
	p.bumpExpected(token.COLON)
	body := p.parseStatement()
	return &ast.LabeledStatement{Base: locBase(p, start), Label: label, Body: body}
}

// parseVariableStatement parses a VariableDeclaration as a top-level
// statement, consuming its trailing ASI semicolon.
func (p *Parser) parseVariableStatement(kind ast.VarKind) ast.Statement {
	decl := p.parseVariableDeclarationBody(kind)
	p.bumpSemicolon()
	return decl
}

func (p *Parser) parseVariableDeclarationBody(kind ast.VarKind) *ast.VariableDeclaration {
	start := p.cur.Pos
	p.bump() // var/let/const
	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())
		if !p.bumpIf(token.COMMA) {
			break
		}
	}
	return &ast.VariableDeclaration{Base: locBase(p, start), Kind: kind, Declarations: decls}
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	start := p.cur.Pos
	nameTok := p.bumpExpected(token.IDENT)
	id := &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
	var init ast.Expression
	if p.bumpIf(token.ASSIGN) {
		init = p.parseAssignmentExpression()
	}
	return &ast.VariableDeclarator{Base: locBase(p, start), ID: id, Init: init}
}
