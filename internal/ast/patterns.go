package ast

import "strings"

// ArrayPattern and ObjectPattern give the Pattern interface room for
// destructuring targets even though the parser currently only produces
// bare Identifier patterns for function parameters and variable
// declarators; the base ES5 grammar has no destructuring, but the shape
// is kept open for it.
type ArrayPattern struct {
	Base
	Elements []Pattern // nil entries are elisions, same as ArrayExpression
}

func (*ArrayPattern) patternNode() {}
func (a *ArrayPattern) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		if e != nil {
			parts[i] = e.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ObjectPatternProperty struct {
	Base
	Key   Expression
	Value Pattern
}

type ObjectPattern struct {
	Base
	Properties []*ObjectPatternProperty
}

func (*ObjectPattern) patternNode() {}
func (o *ObjectPattern) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ExpressionPattern wraps an ordinary assignment target (Identifier or
// MemberExpression) for use as a Pattern. The parser does not build one:
// the left side of `obj.prop = 1` and a for-in loop's left clause hold
// the Expression directly.
type ExpressionPattern struct {
	Base
	Expr Expression
}

func (*ExpressionPattern) patternNode() {}
func (e *ExpressionPattern) String() string { return e.Expr.String() }
