package generator

import (
	"encoding/json"
	"strconv"

	"github.com/t14raptor/estree-gen/ast"
)

// exprFormatters holds every expression- and pattern-kind Formatter
// (spec §4.5, §4.2). It is merged into defaultTable by generator.go.
var exprFormatters = dispatchTable{
	"Identifier":               genIdentifier,
	"Literal":                  genLiteral,
	"ThisExpression":           genThisExpression,
	"Super":                    genSuper,
	"TemplateLiteral":          genTemplateLiteral,
	"TaggedTemplateExpression": genTaggedTemplateExpression,
	"ArrayExpression":          genArray,
	"ArrayPattern":             genArray,
	"ObjectExpression":         genObjectExpression,
	"Property":                 genProperty,
	"ObjectPattern":            genObjectPattern,
	"AssignmentPattern":        genAssignmentPattern,
	"RestElement":              genSpreadLike,
	"SpreadElement":            genSpreadLike,
	"UnaryExpression":          genUnaryExpression,
	"UpdateExpression":         genUpdateExpression,
	"BinaryExpression":         genBinaryLike,
	"LogicalExpression":        genBinaryLike,
	"AssignmentExpression":     genAssignmentExpression,
	"ConditionalExpression":    genConditionalExpression,
	"SequenceExpression":       genSequenceExpression,
	"CallExpression":           genCallExpression,
	"NewExpression":            genNewExpression,
	"MemberExpression":         genMemberExpression,
	"MetaProperty":             genMetaProperty,
	"ArrowFunctionExpression":  genArrowFunctionExpression,
	"YieldExpression":          genYieldExpression,
	"AwaitExpression":          genAwaitExpression,
}

// writeChild renders child in parent's position, wrapping it in parens
// when needsParens says the precedence oracle requires it (spec §4.2).
func writeChild(s *state, child, parent ast.Expr, isRight bool) {
	if needsParens(child, parent, isRight) {
		s.write("(")
		gen(s, child)
		s.write(")")
	} else {
		gen(s, child)
	}
}

// writeMemberKey renders a property/method/field key: bracketed and
// evaluated when Computed, emitted directly otherwise.
func writeMemberKey(s *state, key ast.Expr, computed bool) {
	if computed {
		s.write("[")
		gen(s, key)
		s.write("]")
		return
	}
	gen(s, key)
}

func genIdentifier(s *state, n ast.Node) {
	s.write(n.(*ast.Identifier).Name)
}

func genThisExpression(s *state, n ast.Node) {
	s.write("this")
}

func genSuper(s *state, n ast.Node) {
	s.write("super")
}

// genLiteral prefers Raw verbatim; falls back to reconstructing a
// RegExp constructor call for a regex literal with no raw text, and to
// json.Marshal for every other value kind (spec §4.5).
func genLiteral(s *state, n ast.Node) {
	l := n.(*ast.Literal)
	if l.Raw != nil {
		s.write(*l.Raw)
		return
	}
	if l.Regex != nil {
		s.write("new RegExp(")
		s.write(strconv.Quote(l.Regex.Pattern))
		s.write(", ")
		s.write(strconv.Quote(l.Regex.Flags))
		s.write(")")
		return
	}
	b, err := json.Marshal(l.Value)
	if err != nil {
		fail(&MalformedNodeError{Kind: "Literal", Detail: err.Error()})
	}
	s.write(string(b))
}

func genTemplateLiteral(s *state, n ast.Node) {
	t := n.(*ast.TemplateLiteral)
	s.write("`")
	for i, q := range t.Quasis {
		s.write(q.Raw)
		if i < len(t.Expressions) {
			s.write("${")
			gen(s, t.Expressions[i])
			s.write("}")
		}
	}
	s.write("`")
}

func genTaggedTemplateExpression(s *state, n ast.Node) {
	t := n.(*ast.TaggedTemplateExpression)
	gen(s, t.Tag)
	gen(s, t.Quasi)
}

// genArray renders ArrayExpression and ArrayPattern identically (spec
// §4.1): bracketed, comma-separated, nil entries render nothing between
// their surrounding commas (elision), and a trailing elision gets an
// explicit extra comma so the hole count survives a reparse.
func genArray(s *state, n ast.Node) {
	var elems []ast.Expr
	switch a := n.(type) {
	case *ast.ArrayExpression:
		elems = a.Elements
	case *ast.ArrayPattern:
		elems = a.Elements
	}
	s.write("[")
	for i, e := range elems {
		if i > 0 {
			s.write(", ")
		}
		if e == nil {
			continue
		}
		gen(s, e)
	}
	if len(elems) > 0 && elems[len(elems)-1] == nil {
		s.write(",")
	}
	s.write("]")
}

// genObjectExpression renders one property per line inside braces,
// honoring leading/trailing comments and collapsing to "{}" only when
// there is nothing, not even a comment, to show (spec §4.5).
func genObjectExpression(s *state, n ast.Node) {
	o := n.(*ast.ObjectExpression)
	leading, trailing := o.LeadingComments(), o.TrailingComments()
	hasComments := s.writeComments && (len(leading) > 0 || len(trailing) > 0)
	if len(o.Properties) == 0 && !hasComments {
		s.write("{}")
		return
	}
	s.write("{")
	restore := s.enterBlock()
	s.write(s.lineEnd)
	writeCommentList(s, leading)
	for i, p := range o.Properties {
		if i > 0 {
			s.write(",")
			s.pad()
		} else {
			s.writeIndent()
		}
		gen(s, p)
	}
	if len(o.Properties) > 0 {
		s.write(s.lineEnd)
	}
	writeCommentList(s, trailing)
	restore()
	s.writeIndent()
	s.write("}")
}

func genProperty(s *state, n ast.Node) {
	p := n.(*ast.Property)
	switch {
	case p.Kind == ast.PropertyGet || p.Kind == ast.PropertySet:
		if p.Kind == ast.PropertyGet {
			s.write("get ")
		} else {
			s.write("set ")
		}
		writeMemberKey(s, p.Key, p.Computed)
		fn := p.Value.(*ast.FunctionExpression)
		writeSequence(s, fn.Params)
		s.write(" ")
		gen(s, fn.Body)
	case p.Method:
		if p.Async {
			s.write("async ")
		}
		if p.Generator {
			s.write("*")
		}
		writeMemberKey(s, p.Key, p.Computed)
		fn := p.Value.(*ast.FunctionExpression)
		writeSequence(s, fn.Params)
		s.write(" ")
		gen(s, fn.Body)
	case p.Shorthand:
		gen(s, p.Key)
	default:
		writeMemberKey(s, p.Key, p.Computed)
		s.write(": ")
		gen(s, p.Value)
	}
}

// genObjectPattern renders a destructuring target on one line; unlike
// ObjectExpression it carries no comment-expansion behavior, since a
// binding pattern is never itself a free-standing statement (spec
// §4.1's sharing note applies to the brace shape, not to comments).
func genObjectPattern(s *state, n ast.Node) {
	o := n.(*ast.ObjectPattern)
	s.write("{")
	for i, p := range o.Properties {
		if i > 0 {
			s.write(", ")
		}
		gen(s, p)
	}
	s.write("}")
}

func genAssignmentPattern(s *state, n ast.Node) {
	a := n.(*ast.AssignmentPattern)
	gen(s, a.Left)
	s.write(" = ")
	gen(s, a.Right)
}

// genSpreadLike renders RestElement and SpreadElement identically (spec
// §4.1): "..." followed by the argument.
func genSpreadLike(s *state, n ast.Node) {
	var arg ast.Expr
	switch x := n.(type) {
	case *ast.RestElement:
		arg = x.Argument
	case *ast.SpreadElement:
		arg = x.Argument
	}
	s.write("...")
	gen(s, arg)
}

var wordUnaryOperators = map[string]bool{
	"typeof": true,
	"void":   true,
	"delete": true,
}

func genUnaryExpression(s *state, n ast.Node) {
	u := n.(*ast.UnaryExpression)
	s.write(u.Operator)
	if wordUnaryOperators[u.Operator] {
		s.write(" ")
	}
	if unaryArgNeedsParens(u.Argument) {
		s.write("(")
		gen(s, u.Argument)
		s.write(")")
	} else {
		gen(s, u.Argument)
	}
}

func genUpdateExpression(s *state, n ast.Node) {
	u := n.(*ast.UpdateExpression)
	if u.Prefix {
		s.write(u.Operator)
		gen(s, u.Argument)
		return
	}
	gen(s, u.Argument)
	s.write(u.Operator)
}

// genBinaryLike renders BinaryExpression and LogicalExpression
// identically (spec §4.1): left, operator, right, each side wrapped in
// parens exactly when needsParens requires it. An "in" operator wraps
// the whole expression in parens (spec §4.2, §8 property 5), since a
// bare `a in b` inside a for-loop initializer would otherwise be
// misparsed as the loop's own "in" keyword.
func genBinaryLike(s *state, n ast.Node) {
	var operator string
	var left, right ast.Expr
	switch b := n.(type) {
	case *ast.BinaryExpression:
		operator, left, right = b.Operator, b.Left, b.Right
	case *ast.LogicalExpression:
		operator, left, right = b.Operator, b.Left, b.Right
	}
	if operator == "" {
		fail(&MalformedNodeError{Kind: n.Type(), Detail: "missing operator"})
	}
	parent := n.(ast.Expr)
	if operator == "in" {
		s.write("(")
	}
	writeChild(s, left, parent, false)
	s.write(" " + operator + " ")
	writeChild(s, right, parent, true)
	if operator == "in" {
		s.write(")")
	}
}

func genAssignmentExpression(s *state, n ast.Node) {
	a := n.(*ast.AssignmentExpression)
	writeChild(s, a.Left, a, false)
	s.write(" " + a.Operator + " ")
	writeChild(s, a.Right, a, true)
}

// genConditionalExpression wraps the test operand with a "≤" comparison
// against conditional precedence (spec §4.5), not the ordinary "<" the
// precedence oracle (§4.2) uses at unequal precedence: a nested
// conditional in test position shares the same precedence as its parent
// (both are ConditionalExpression), so needsParens's equal-precedence
// short-circuit would leave it bare, and `?:` is right-associative —
// `(a ? b : c) ? d : e` would silently reparse as `a ? b : (c ? d : e)`.
func genConditionalExpression(s *state, n ast.Node) {
	c := n.(*ast.ConditionalExpression)
	if precedence(c.Test) <= precedence(c) {
		s.write("(")
		gen(s, c.Test)
		s.write(")")
	} else {
		gen(s, c.Test)
	}
	s.write(" ? ")
	writeChild(s, c.Consequent, c, false)
	s.write(" : ")
	writeChild(s, c.Alternate, c, true)
}

// genSequenceExpression always wraps its output in parens (spec §4.5:
// SequenceExpression is "a parenthesized comma-separated list", not a
// bare comma list the caller parenthesizes opportunistically) — without
// this, a concise arrow body `x => (a, b)` would render as `x => a, b`,
// which reparses as `(x => a), b`. exprPrecedence ranks this kind at 20
// precisely so writeChild never adds a second, redundant pair.
func genSequenceExpression(s *state, n ast.Node) {
	se := n.(*ast.SequenceExpression)
	s.write("(")
	for i, e := range se.Expressions {
		if i > 0 {
			s.write(", ")
		}
		gen(s, e)
	}
	s.write(")")
}

func genCallExpression(s *state, n ast.Node) {
	c := n.(*ast.CallExpression)
	writeChild(s, c.Callee, c, false)
	if c.Optional {
		s.write("?.")
	}
	writeSequence(s, c.Arguments)
}

func genNewExpression(s *state, n ast.Node) {
	nw := n.(*ast.NewExpression)
	s.write("new ")
	if needsParens(nw.Callee, nw, false) || calleeContainsCall(nw.Callee) {
		s.write("(")
		gen(s, nw.Callee)
		s.write(")")
	} else {
		gen(s, nw.Callee)
	}
	writeSequence(s, nw.Arguments)
}

// calleeContainsCall walks a NewExpression callee down its `.object`
// chain looking for a CallExpression (spec §4.5, §8 property 6): without
// it, `new a().b` and `new (a().b)` would render identically even though
// they differ in meaning — the call must stay grouped with `a`, not be
// absorbed into the `new` itself.
func calleeContainsCall(e ast.Expr) bool {
	for {
		switch m := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = m.Object
		default:
			return false
		}
	}
}

func genMemberExpression(s *state, n ast.Node) {
	m := n.(*ast.MemberExpression)
	writeChild(s, m.Object, m, false)
	switch {
	case m.Optional && m.Computed:
		s.write("?.[")
		gen(s, m.Property)
		s.write("]")
	case m.Optional:
		s.write("?.")
		gen(s, m.Property)
	case m.Computed:
		s.write("[")
		gen(s, m.Property)
		s.write("]")
	default:
		s.write(".")
		gen(s, m.Property)
	}
}

func genMetaProperty(s *state, n ast.Node) {
	m := n.(*ast.MetaProperty)
	gen(s, m.Meta)
	s.write(".")
	gen(s, m.Property)
}

// genArrowFunctionExpression omits the parameter-list parens only for
// the single bare-identifier-parameter shorthand, decided with an
// ordinary type assertion rather than by inspecting characters of a
// type string (spec's Design Notes, §9).
func genArrowFunctionExpression(s *state, n ast.Node) {
	a := n.(*ast.ArrowFunctionExpression)
	if a.Async {
		s.write("async ")
	}
	if id, ok := soleIdentifierParam(a.Params); ok {
		gen(s, id)
	} else {
		writeSequence(s, a.Params)
	}
	s.write(" => ")
	switch body := a.Body.(type) {
	case *ast.BlockStatement:
		gen(s, body)
	case ast.Expr:
		// A concise body is delimited by context, not by operator
		// precedence; only the statement-head ambiguity (an object
		// literal body would otherwise read as a block) applies.
		if precedence(body) == statementHeadThreshold {
			s.write("(")
			gen(s, body)
			s.write(")")
		} else {
			gen(s, body)
		}
	}
}

func soleIdentifierParam(params []ast.Expr) (*ast.Identifier, bool) {
	if len(params) != 1 {
		return nil, false
	}
	id, ok := params[0].(*ast.Identifier)
	return id, ok
}

func genYieldExpression(s *state, n ast.Node) {
	y := n.(*ast.YieldExpression)
	s.write("yield")
	if y.Delegate {
		s.write("*")
	}
	if y.Argument != nil {
		s.write(" ")
		gen(s, y.Argument)
	}
}

func genAwaitExpression(s *state, n ast.Node) {
	a := n.(*ast.AwaitExpression)
	s.write("await ")
	writeChild(s, a.Argument, a, false)
}
