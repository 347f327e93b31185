package ast

import "github.com/cwbudde/grinder/internal/token"

// ToJSON walks an AST and produces a plain map[string]any tree shaped like
// ESTree: every node gets a "type" discriminator matching its ESTree name
// and a "loc" field, plus kind-specific fields. Kept hand-written against
// encoding/json (rather than reflection-driven or a third-party JSON
// library) because the node set is fixed and small enough that an
// explicit switch is clearer than a marshaling tag scheme, and because
// the teacher's own code reaches for plain encoding/json wherever it
// serializes (see DESIGN.md).
func ToJSON(n Node) map[string]any {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *Program:
		return map[string]any{
			"type": "Program",
			"loc":  locJSON(v.Loc()),
			"body": stmtListJSON(v.Body),
		}
	case *EmptyStatement:
		return withType("EmptyStatement", v.Loc(), nil)
	case *BlockStatement:
		return map[string]any{
			"type": "BlockStatement",
			"loc":  locJSON(v.Loc()),
			"body": stmtListJSON(v.Body),
		}
	case *ExpressionStatement:
		return map[string]any{
			"type":       "ExpressionStatement",
			"loc":        locJSON(v.Loc()),
			"expression": ToJSON(v.Expr),
		}
	case *IfStatement:
		m := map[string]any{
			"type":       "IfStatement",
			"loc":        locJSON(v.Loc()),
			"test":       ToJSON(v.Test),
			"consequent": ToJSON(v.Consequent),
		}
		if v.Alternate != nil {
			m["alternate"] = ToJSON(v.Alternate)
		} else {
			m["alternate"] = nil
		}
		return m
	case *LabeledStatement:
		return map[string]any{
			"type":  "LabeledStatement",
			"loc":   locJSON(v.Loc()),
			"label": ToJSON(v.Label),
			"body":  ToJSON(v.Body),
		}
	case *BreakStatement:
		return map[string]any{"type": "BreakStatement", "loc": locJSON(v.Loc()), "label": optJSON(v.Label)}
	case *ContinueStatement:
		return map[string]any{"type": "ContinueStatement", "loc": locJSON(v.Loc()), "label": optJSON(v.Label)}
	case *WithStatement:
		return map[string]any{"type": "WithStatement", "loc": locJSON(v.Loc()), "object": ToJSON(v.Object), "body": ToJSON(v.Body)}
	case *SwitchStatement:
		cases := make([]any, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = ToJSON(c)
		}
		return map[string]any{"type": "SwitchStatement", "loc": locJSON(v.Loc()), "discriminant": ToJSON(v.Discriminant), "cases": cases}
	case *SwitchCase:
		return map[string]any{"type": "SwitchCase", "loc": locJSON(v.Loc()), "test": optJSON(v.Test), "consequent": stmtListJSON(v.Consequent)}
	case *ReturnStatement:
		return map[string]any{"type": "ReturnStatement", "loc": locJSON(v.Loc()), "argument": optJSON(v.Argument)}
	case *ThrowStatement:
		return map[string]any{"type": "ThrowStatement", "loc": locJSON(v.Loc()), "argument": ToJSON(v.Argument)}
	case *TryStatement:
		m := map[string]any{"type": "TryStatement", "loc": locJSON(v.Loc()), "block": ToJSON(v.Block)}
		if v.Handler != nil {
			m["handler"] = ToJSON(v.Handler)
		} else {
			m["handler"] = nil
		}
		if v.Finalizer != nil {
			m["finalizer"] = ToJSON(v.Finalizer)
		} else {
			m["finalizer"] = nil
		}
		return m
	case *CatchClause:
		return map[string]any{"type": "CatchClause", "loc": locJSON(v.Loc()), "param": ToJSON(v.Param), "body": ToJSON(v.Body)}
	case *WhileStatement:
		return map[string]any{"type": "WhileStatement", "loc": locJSON(v.Loc()), "test": ToJSON(v.Test), "body": ToJSON(v.Body)}
	case *DoWhileStatement:
		return map[string]any{"type": "DoWhileStatement", "loc": locJSON(v.Loc()), "body": ToJSON(v.Body), "test": ToJSON(v.Test)}
	case *ForStatement:
		return map[string]any{
			"type": "ForStatement", "loc": locJSON(v.Loc()),
			"init": optNodeJSON(v.Init), "test": optJSON(v.Test), "update": optJSON(v.Update), "body": ToJSON(v.Body),
		}
	case *ForInStatement:
		t := "ForInStatement"
		if v.Of {
			t = "ForOfStatement"
		}
		return map[string]any{"type": t, "loc": locJSON(v.Loc()), "left": optNodeJSON(v.Left), "right": ToJSON(v.Right), "body": ToJSON(v.Body)}
	case *VariableDeclaration:
		decls := make([]any, len(v.Declarations))
		for i, d := range v.Declarations {
			decls[i] = ToJSON(d)
		}
		return map[string]any{"type": "VariableDeclaration", "loc": locJSON(v.Loc()), "kind": v.Kind.String(), "declarations": decls}
	case *VariableDeclarator:
		return map[string]any{"type": "VariableDeclarator", "loc": locJSON(v.Loc()), "id": ToJSON(v.ID), "init": optJSON(v.Init)}
	case *FunctionDeclaration:
		m := functionJSON(v.Function)
		m["type"] = "FunctionDeclaration"
		m["loc"] = locJSON(v.Loc())
		return m
	case *FunctionExpression:
		m := functionJSON(v.Function)
		m["type"] = "FunctionExpression"
		m["loc"] = locJSON(v.Loc())
		return m
	case *ArrowFunctionExpression:
		m := functionJSON(v.Function)
		m["type"] = "ArrowFunctionExpression"
		m["loc"] = locJSON(v.Loc())
		return m
	case *ThisExpression:
		return withType("ThisExpression", v.Loc(), nil)
	case *Identifier:
		return map[string]any{"type": "Identifier", "loc": locJSON(v.Loc()), "name": v.Name}
	case *Literal:
		return literalJSON(v)
	case *ArrayExpression:
		elems := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = optJSON(e)
		}
		return map[string]any{"type": "ArrayExpression", "loc": locJSON(v.Loc()), "elements": elems}
	case *ObjectExpression:
		props := make([]any, len(v.Properties))
		for i, p := range v.Properties {
			props[i] = ToJSON(p)
		}
		return map[string]any{"type": "ObjectExpression", "loc": locJSON(v.Loc()), "properties": props}
	case *Property:
		kind := "init"
		switch v.Kind {
		case PropGet:
			kind = "get"
		case PropSet:
			kind = "set"
		}
		return map[string]any{
			"type": "Property", "loc": locJSON(v.Loc()), "key": ToJSON(v.Key), "value": ToJSON(v.Value),
			"kind": kind, "computed": v.Computed,
		}
	case *SequenceExpression:
		exprs := make([]any, len(v.Expressions))
		for i, e := range v.Expressions {
			exprs[i] = ToJSON(e)
		}
		return map[string]any{"type": "SequenceExpression", "loc": locJSON(v.Loc()), "expressions": exprs}
	case *UnaryExpression:
		return map[string]any{"type": "UnaryExpression", "loc": locJSON(v.Loc()), "operator": string(v.Operator), "argument": ToJSON(v.Argument), "prefix": v.Prefix}
	case *UpdateExpression:
		return map[string]any{"type": "UpdateExpression", "loc": locJSON(v.Loc()), "operator": string(v.Operator), "argument": ToJSON(v.Argument), "prefix": v.Prefix}
	case *BinaryExpression:
		return map[string]any{"type": "BinaryExpression", "loc": locJSON(v.Loc()), "operator": string(v.Operator), "left": ToJSON(v.Left), "right": ToJSON(v.Right)}
	case *LogicalExpression:
		return map[string]any{"type": "LogicalExpression", "loc": locJSON(v.Loc()), "operator": string(v.Operator), "left": ToJSON(v.Left), "right": ToJSON(v.Right)}
	case *AssignmentExpression:
		return map[string]any{"type": "AssignmentExpression", "loc": locJSON(v.Loc()), "operator": string(v.Operator), "left": optNodeJSON(v.Left), "right": ToJSON(v.Right)}
	case *ConditionalExpression:
		return map[string]any{"type": "ConditionalExpression", "loc": locJSON(v.Loc()), "test": ToJSON(v.Test), "consequent": ToJSON(v.Consequent), "alternate": ToJSON(v.Alternate)}
	case *NewExpression:
		return map[string]any{"type": "NewExpression", "loc": locJSON(v.Loc()), "callee": ToJSON(v.Callee), "arguments": exprListJSON(v.Arguments)}
	case *CallExpression:
		return map[string]any{"type": "CallExpression", "loc": locJSON(v.Loc()), "callee": ToJSON(v.Callee), "arguments": exprListJSON(v.Arguments)}
	case *MemberExpression:
		return map[string]any{"type": "MemberExpression", "loc": locJSON(v.Loc()), "object": ToJSON(v.Object), "property": ToJSON(v.Property), "computed": v.Computed}
	case *ArrayPattern:
		elems := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = optJSON(e)
		}
		return map[string]any{"type": "ArrayPattern", "loc": locJSON(v.Loc()), "elements": elems}
	case *ObjectPattern:
		props := make([]any, len(v.Properties))
		for i, p := range v.Properties {
			props[i] = map[string]any{"key": ToJSON(p.Key), "value": ToJSON(p.Value)}
		}
		return map[string]any{"type": "ObjectPattern", "loc": locJSON(v.Loc()), "properties": props}
	case *ExpressionPattern:
		return ToJSON(v.Expr)
	}
	return map[string]any{"type": "Unknown"}
}

func withType(t string, loc token.SourceLocation, extra map[string]any) map[string]any {
	m := map[string]any{"type": t, "loc": locJSON(loc)}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// locJSON renders a SourceLocation as ESTree's {start:{line,column},
// end:{line,column}} shape.
func locJSON(loc token.SourceLocation) any {
	pos := func(p token.Position) any {
		return map[string]any{"line": p.Line, "column": p.Column}
	}
	return map[string]any{"start": pos(loc.Start), "end": pos(loc.End)}
}

func literalJSON(l *Literal) map[string]any {
	m := map[string]any{"type": "Literal", "loc": locJSON(l.Loc())}
	switch l.Kind {
	case LitNull:
		m["value"] = nil
	case LitBool:
		m["value"] = l.Bool
	case LitNumeric:
		m["value"] = l.Number
		m["raw"] = l.Raw
	case LitString:
		m["value"] = l.Str
	case LitRegExp:
		m["regex"] = map[string]any{"pattern": l.Raw, "flags": l.Flags}
	}
	return m
}

func stmtListJSON(stmts []Statement) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = ToJSON(s)
	}
	return out
}

func exprListJSON(exprs []Expression) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = optJSON(e)
	}
	return out
}

// optJSON handles a possibly-nil Expression/Statement/Pattern interface
// value, which a plain ToJSON(Node(nil)) call cannot detect because a
// non-nil interface wrapping a nil pointer is not itself nil.
func optJSON[T Node](n T) any {
	var zero T
	if any(n) == any(zero) {
		return nil
	}
	return ToJSON(n)
}

// optNodeJSON is optJSON's counterpart for the Node-typed union fields
// (ForStatement.Init, AssignmentExpression.Left, ForInStatement.Left)
// that may hold either an Expression or a *VariableDeclaration.
func optNodeJSON(n Node) any {
	if n == nil {
		return nil
	}
	return ToJSON(n)
}

func functionJSON(f *Function) map[string]any {
	params := make([]any, len(f.Params))
	for i, p := range f.Params {
		params[i] = ToJSON(p)
	}
	defaults := make([]any, len(f.Defaults))
	for i, d := range f.Defaults {
		defaults[i] = optJSON(d)
	}
	m := map[string]any{
		"id":         optJSON(f.ID),
		"params":     params,
		"defaults":   defaults,
		"body":       ToJSON(f.Body),
		"generator":  f.Generator,
		"expression": f.Expression,
	}
	if f.Rest != nil {
		m["rest"] = ToJSON(f.Rest)
	} else {
		m["rest"] = nil
	}
	return m
}
