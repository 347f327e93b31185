package parser

import (
	"github.com/cwbudde/grinder/internal/ast"
	"github.com/cwbudde/grinder/internal/token"
)

// parseExpression is the top of the precedence ladder: a left-fold of
// `,` over AssignmentExpression, collapsing into a bare expression when
// there is only one.
func (p *Parser) parseExpression() ast.Expression {
	start := p.cur.Pos
	first := p.parseAssignmentExpression()
	if !p.isCurr(token.COMMA) {
		return first
	}
	exprs := []ast.Expression{first}
	for p.bumpIf(token.COMMA) {
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpression{Base: locBase(p, start), Expressions: exprs}
}

// assignmentOperatorOf maps a token type to its AssignmentOperator, if it
// is one of `=` or a compound-assign form.
func assignmentOperatorOf(t token.Token) (ast.AssignmentOperator, bool) {
	if t.Type == token.ASSIGN {
		return ast.AssignPlain, true
	}
	b, ok := token.BinopFor(t.Type)
	if !ok || !token.IsCompoundAssign(t.Type) {
		return "", false
	}
	switch b {
	case token.BOP_PLUS:
		return ast.AssignAdd, true
	case token.BOP_MINUS:
		return ast.AssignSub, true
	case token.BOP_MUL:
		return ast.AssignMul, true
	case token.BOP_DIV:
		return ast.AssignDiv, true
	case token.BOP_MOD:
		return ast.AssignMod, true
	case token.BOP_LSH:
		return ast.AssignLsh, true
	case token.BOP_RSH:
		return ast.AssignRsh, true
	case token.BOP_URSH:
		return ast.AssignUrsh, true
	case token.BOP_BITWISE_OR:
		return ast.AssignBitOr, true
	case token.BOP_BITWISE_XOR:
		return ast.AssignBitXor, true
	case token.BOP_BITWISE_AND:
		return ast.AssignBitAnd, true
	}
	return "", false
}

// parseAssignmentExpression is a ConditionalExpression optionally followed
// by an assignment operator and a right-associative recursive call. The
// left side is parsed as an ordinary Expression and validated after the
// fact rather than through a separate Pattern grammar; for this grammar a
// valid assignment target is an Identifier or a MemberExpression.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	start := p.cur.Pos
	if p.isCurr(token.IDENT) && p.isNext(token.ARROW) {
		tok := p.bumpCurr()
		param := &ast.Identifier{Base: locBase(p, tok.Pos), Name: tok.Literal}
		return p.parseArrowFunctionBody(start, []ast.Pattern{param})
	}
	left := p.parseConditionalExpression()
	op, ok := assignmentOperatorOf(p.cur)
	if !ok {
		return left
	}
	if !isValidAssignmentTarget(left) {
		p.fail(ErrUnexpectedToken, "invalid assignment target")
	}
	p.bump()
	right := p.parseAssignmentExpression()
	return &ast.AssignmentExpression{
		Base:     locBase(p, start),
		Operator: op,
		Left:     left,
		Right:    right,
	}
}

func isValidAssignmentTarget(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

// parseConditionalExpression is level 3: LogicalOr, optionally followed
// by `? Assignment : Assignment`.
func (p *Parser) parseConditionalExpression() ast.Expression {
	start := p.cur.Pos
	test := p.parseBinaryExpression(precLowest)
	if !p.bumpIf(token.HOOK) {
		return test
	}
	consequent := p.parseAssignmentExpression()
	p.bumpExpected(token.COLON)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{
		Base:       locBase(p, start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

// parseBinaryExpression folds LogicalOr down to Multiplicative into a
// single precedence-climbing loop, plus the relational `instanceof`/`in`
// operators, which are not in the plain BINOP token family and so are
// handled by name. `in` is suppressed while p.noIn is set, for the
// for-header disambiguation.
func (p *Parser) parseBinaryExpression(minPrec precedence) ast.Expression {
	start := p.cur.Pos
	left := p.parseUnaryExpression()

	for {
		if prec, ok := p.currentBinaryPrecedence(); ok && prec > minPrec {
			left = p.parseBinaryRHS(start, left, prec)
			continue
		}
		break
	}
	return left
}

func (p *Parser) currentBinaryPrecedence() (precedence, bool) {
	if p.isCurrKeyword(token.INSTANCEOF) {
		return precRelational, true
	}
	if p.isCurrKeyword(token.IN) && !p.noIn {
		return precRelational, true
	}
	prec, ok := binaryPrecedence[p.cur.Type]
	return prec, ok
}

func (p *Parser) parseBinaryRHS(start token.Position, left ast.Expression, prec precedence) ast.Expression {
	opTok := p.bumpCurr()
	right := p.parseBinaryExpressionAtLeast(prec)

	if opTok.Type == token.OR {
		return &ast.LogicalExpression{Base: locBase(p, start), Operator: ast.LogicalOr, Left: left, Right: right}
	}
	if opTok.Type == token.AND {
		return &ast.LogicalExpression{Base: locBase(p, start), Operator: ast.LogicalAnd, Left: left, Right: right}
	}
	return &ast.BinaryExpression{Base: locBase(p, start), Operator: binaryOperatorOf(opTok), Left: left, Right: right}
}

// parseBinaryExpressionAtLeast parses the right operand of a left-fold at
// precedence level prec: operators of strictly higher precedence bind
// first (so the loop condition above uses "> minPrec"), keeping all of
// the arithmetic/bitwise/shift/relational/equality operators
// left-associative.
func (p *Parser) parseBinaryExpressionAtLeast(prec precedence) ast.Expression {
	start := p.cur.Pos
	left := p.parseUnaryExpression()
	for {
		curPrec, ok := p.currentBinaryPrecedence()
		if !ok || curPrec <= prec {
			break
		}
		left = p.parseBinaryRHS(start, left, curPrec)
	}
	return left
}

func binaryOperatorOf(t token.Token) ast.BinaryOperator {
	switch t.Type {
	case token.EQ:
		return ast.BinEq
	case token.NE:
		return ast.BinNe
	case token.STRICT_EQ:
		return ast.BinStrictEq
	case token.STRICT_NE:
		return ast.BinStrictNe
	case token.LT:
		return ast.BinLt
	case token.LE:
		return ast.BinLe
	case token.GT:
		return ast.BinGt
	case token.GE:
		return ast.BinGe
	case token.LSH:
		return ast.BinLsh
	case token.RSH:
		return ast.BinRsh
	case token.URSH:
		return ast.BinUrsh
	case token.PLUS:
		return ast.BinPlus
	case token.MINUS:
		return ast.BinMinus
	case token.MUL:
		return ast.BinMul
	case token.DIV:
		return ast.BinDiv
	case token.MOD:
		return ast.BinMod
	case token.BITWISE_OR:
		return ast.BinBitOr
	case token.BITWISE_XOR:
		return ast.BinBitXor
	case token.BITWISE_AND:
		return ast.BinBitAnd
	case token.KEYWORD:
		if t.Literal == token.IN.String() {
			return ast.BinIn
		}
		if t.Literal == token.INSTANCEOF.String() {
			return ast.BinInstanceof
		}
	}
	return ast.BinaryOperator(t.Literal)
}

// parseUnaryExpression is level 14: prefix `+ - ! ~ typeof void delete`
// produce a UnaryExpression; prefix `++`/`--` produce a (prefix) Update
// Expression; anything else falls through to Postfix.
func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.cur.Pos
	if op, ok := unaryOperatorOf(p.cur); ok {
		p.bump()
		arg := p.parseUnaryExpression()
		return &ast.UnaryExpression{Base: locBase(p, start), Operator: op, Argument: arg, Prefix: true}
	}
	if p.isCurr(token.INCREMENT) || p.isCurr(token.DECREMENT) {
		opTok := p.bumpCurr()
		arg := p.parseUnaryExpression()
		return &ast.UpdateExpression{Base: locBase(p, start), Operator: updateOperatorOf(opTok), Argument: arg, Prefix: true}
	}
	return p.parsePostfixExpression()
}

func unaryOperatorOf(t token.Token) (ast.UnaryOperator, bool) {
	switch t.Type {
	case token.PLUS:
		return ast.UnaryPlus, true
	case token.MINUS:
		return ast.UnaryMinus, true
	case token.NOT:
		return ast.UnaryNot, true
	case token.BITWISE_NOT:
		return ast.UnaryBitNot, true
	case token.KEYWORD:
		switch t.Literal {
		case "typeof":
			return ast.UnaryTypeof, true
		case "void":
			return ast.UnaryVoid, true
		case "delete":
			return ast.UnaryDelete, true
		}
	}
	return "", false
}

func updateOperatorOf(t token.Token) ast.UpdateOperator {
	if t.Type == token.INCREMENT {
		return ast.UpdateInc
	}
	return ast.UpdateDec
}

// parsePostfixExpression is LeftHandSide followed optionally by a
// same-line `++`/`--`. A LineTerminator before the operator suppresses it,
// per ASI's "no LineTerminator here" restriction (ECMA-262 §7.9.1).
func (p *Parser) parsePostfixExpression() ast.Expression {
	start := p.cur.Pos
	expr := p.parseLeftHandSideExpression()
	if (p.isCurr(token.INCREMENT) || p.isCurr(token.DECREMENT)) && !p.cur.NewlineBefore {
		opTok := p.bumpCurr()
		return &ast.UpdateExpression{Base: locBase(p, start), Operator: updateOperatorOf(opTok), Argument: expr, Prefix: false}
	}
	return expr
}

// parseLeftHandSideExpression is a NewExpression or MemberExpression,
// followed by zero-or-more of `.ident`, `[expr]`, `(args)`. `new` without
// arguments binds tighter than a call: parseNewExpression handles that
// precedence inversion.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	start := p.cur.Pos
	var expr ast.Expression
	if p.isCurrKeyword(token.NEW) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	return p.parseCallOrMemberTail(start, expr, true)
}

// parseNewExpression handles `new LeftHandSide` with optional arguments.
// `new A.B()` constructs A.B; `new A()()` constructs A then calls the
// result, achieved by building only the member-access chain as the
// callee before consuming the optional argument list, then letting the
// caller's tail loop pick up any further `()`/`.`/`[]`.
func (p *Parser) parseNewExpression() ast.Expression {
	start := p.cur.Pos
	p.bump() // consume `new`
	var callee ast.Expression
	if p.isCurrKeyword(token.NEW) {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	callee = p.parseCallOrMemberTail(start, callee, false)

	var args []ast.Expression
	if p.isCurr(token.LPAREN) {
		args = p.parseArguments()
	}
	return &ast.NewExpression{Base: locBase(p, start), Callee: callee, Arguments: args}
}

// parseCallOrMemberTail consumes a run of `.ident`, `[expr]`, and
// (if allowCall) `(args)` suffixes.
func (p *Parser) parseCallOrMemberTail(start token.Position, expr ast.Expression, allowCall bool) ast.Expression {
	for {
		switch {
		case p.isCurr(token.DOT):
			p.bump()
			nameTok := p.bumpExpected(token.IDENT)
			prop := &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal}
			expr = &ast.MemberExpression{Base: locBase(p, start), Object: expr, Property: prop, Computed: false}
		case p.isCurr(token.LBRACKET):
			p.bump()
			index := p.parseExpression()
			p.bumpExpected(token.RBRACKET)
			expr = &ast.MemberExpression{Base: locBase(p, start), Object: expr, Property: index, Computed: true}
		case allowCall && p.isCurr(token.LPAREN):
			args := p.parseArguments()
			expr = &ast.CallExpression{Base: locBase(p, start), Callee: expr, Arguments: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.bumpExpected(token.LPAREN)
	var args []ast.Expression
	for !p.isCurr(token.RPAREN) {
		args = append(args, p.parseAssignmentExpression())
		if !p.bumpIf(token.COMMA) {
			break
		}
	}
	p.bumpExpected(token.RPAREN)
	return args
}

// parsePrimaryExpression parses this, Identifier, Literal, array/object
// initialisers, function expressions, and parenthesized expressions. The
// group operator is transparent: this production returns the inner
// expression unwrapped, carrying no Paren node.
func (p *Parser) parsePrimaryExpression() ast.Expression {
	start := p.cur.Pos
	switch {
	case p.isCurrKeyword(token.THIS):
		p.bump()
		return &ast.ThisExpression{Base: locBase(p, start)}
	case p.isCurr(token.IDENT):
		tok := p.bumpCurr()
		return &ast.Identifier{Base: locBase(p, start), Name: tok.Literal}
	case p.isCurr(token.NULL):
		p.bump()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitNull}
	case p.isCurr(token.BOOL):
		tok := p.bumpCurr()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitBool, Bool: tok.Literal == "true"}
	case p.isCurr(token.NUMERIC):
		tok := p.bumpCurr()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitNumeric, Raw: tok.Literal, Number: numericLiteralValue(tok.Literal)}
	case p.isCurr(token.STRING):
		tok := p.bumpCurr()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitString, Str: tok.Literal}
	case p.isCurr(token.REGEXP):
		tok := p.bumpCurr()
		pattern, flags := splitRegex(tok.Literal)
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitRegExp, Raw: pattern, Flags: flags}
	case p.isCurr(token.LBRACKET):
		return p.parseArrayExpression(start)
	case p.isCurr(token.LBRACE):
		return p.parseObjectExpression(start)
	case p.isCurrKeyword(token.FUNCTION):
		return p.parseFunctionExpression(start)
	case p.isCurr(token.LPAREN):
		return p.parseParenthesizedOrArrow(start)
	}
	p.fail(ErrUnexpectedToken, "unexpected token in expression: "+p.cur.Type.String())
	return nil
}

// parseParenthesizedOrArrow handles the `(` primary production, which is
// ambiguous between a parenthesized expression (transparent, as above)
// and an arrow function parameter list: both are parsed the same way up
// through the matching `)`, and only the token that follows it (`=>` or
// not) decides which one this was.
func (p *Parser) parseParenthesizedOrArrow(start token.Position) ast.Expression {
	p.bump() // (
	if p.isCurr(token.RPAREN) {
		p.bump()
		if p.isCurr(token.ARROW) {
			return p.parseArrowFunctionBody(start, nil)
		}
		p.fail(ErrUnexpectedToken, "unexpected empty parentheses")
	}
	expr := p.parseExpression()
	p.bumpExpected(token.RPAREN)
	if p.isCurr(token.ARROW) {
		params, err := exprListToParams(expr)
		if err != nil {
			p.fail(ErrUnexpectedToken, err.Error())
		}
		return p.parseArrowFunctionBody(start, params)
	}
	return expr
}

func splitRegex(lit string) (pattern, flags string) {
	// lit is "/body/flags"; find the closing slash that isn't escaped or
	// inside a character class; the lexer already validated this shape.
	depth := 0
	for i := 1; i < len(lit); i++ {
		switch lit[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				return lit[1:i], lit[i+1:]
			}
		}
	}
	return lit[1:], ""
}

// parseArrayExpression handles ArrayInitialiser: elements separated by
// commas, elisions (holes) represented as nil, trailing comma permitted
// without adding a hole.
func (p *Parser) parseArrayExpression(start token.Position) ast.Expression {
	p.bump() // [
	var elems []ast.Expression
	for !p.isCurr(token.RBRACKET) {
		if p.isCurr(token.COMMA) {
			elems = append(elems, nil)
			p.bump()
			continue
		}
		elems = append(elems, p.parseAssignmentExpression())
		if !p.isCurr(token.RBRACKET) {
			p.bumpExpected(token.COMMA)
		}
	}
	p.bumpExpected(token.RBRACKET)
	return &ast.ArrayExpression{Base: locBase(p, start), Elements: elems}
}

// parseObjectExpression handles ObjectInitialiser: PropertyName ':'
// AssignmentExpression, or `get`/`set` accessor shorthand, with lookahead
// distinguishing `get`/`set` used as a plain key.
func (p *Parser) parseObjectExpression(start token.Position) ast.Expression {
	p.bump() // {
	var props []*ast.Property
	for !p.isCurr(token.RBRACE) {
		props = append(props, p.parseProperty())
		if !p.isCurr(token.RBRACE) {
			p.bumpExpected(token.COMMA)
		}
	}
	p.bumpExpected(token.RBRACE)
	return &ast.ObjectExpression{Base: locBase(p, start), Properties: props}
}

func (p *Parser) parseProperty() *ast.Property {
	start := p.cur.Pos
	if p.isCurr(token.IDENT) && (p.cur.Literal == "get" || p.cur.Literal == "set") && !p.isNext(token.COLON) && !p.isNext(token.COMMA) && !p.isNext(token.RBRACE) {
		isGet := p.cur.Literal == "get"
		p.bump()
		key := p.parsePropertyName()
		fn := p.parseAccessorBody(start, isGet)
		kind := ast.PropGet
		if !isGet {
			kind = ast.PropSet
		}
		return &ast.Property{Base: locBase(p, start), Key: key, Value: fn, Kind: kind}
	}
	key := p.parsePropertyName()
	p.bumpExpected(token.COLON)
	value := p.parseAssignmentExpression()
	return &ast.Property{Base: locBase(p, start), Key: key, Value: value, Kind: ast.PropInit}
}

func (p *Parser) parsePropertyName() ast.Expression {
	start := p.cur.Pos
	switch {
	case p.isCurr(token.IDENT), p.isCurr(token.KEYWORD), p.isCurr(token.STRICT_KEYWORD):
		tok := p.bumpCurr()
		return &ast.Identifier{Base: locBase(p, start), Name: tok.Literal}
	case p.isCurr(token.STRING):
		tok := p.bumpCurr()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitString, Str: tok.Literal}
	case p.isCurr(token.NUMERIC):
		tok := p.bumpCurr()
		return &ast.Literal{Base: locBase(p, start), Kind: ast.LitNumeric, Raw: tok.Literal, Number: numericLiteralValue(tok.Literal)}
	}
	p.fail(ErrUnexpectedToken, "expected property name")
	return nil
}

// parseAccessorBody parses a getter's `()` or a setter's `(ident)` param
// list plus its function body, producing a FunctionExpression with exactly
// the arity an accessor requires: 0 for get, 1 for set.
func (p *Parser) parseAccessorBody(start token.Position, isGet bool) *ast.FunctionExpression {
	p.bumpExpected(token.LPAREN)
	var params []ast.Pattern
	if !isGet {
		nameTok := p.bumpExpected(token.IDENT)
		params = append(params, &ast.Identifier{Base: locBase(p, nameTok.Pos), Name: nameTok.Literal})
	}
	p.bumpExpected(token.RPAREN)
	body := p.parseBlockStatement()
	fn := &ast.Function{Params: params, Defaults: make([]ast.Expression, len(params)), Body: body}
	return &ast.FunctionExpression{Base: locBase(p, start), Function: fn}
}

// locBase is a convenience constructor that closes a node's source span
// from start through the most recently consumed token.
func locBase(p *Parser, start token.Position) ast.Base {
	return ast.Base{Location: p.newLoc(start)}
}
