package generator

import "github.com/t14raptor/estree-gen/ast"

// exprPrecedence assigns each expression node kind an integer ranking;
// higher binds tighter. Values are spec §3.4's representative table,
// keyed by ast.Node.Type() rather than a lexer token, since the AST here
// carries no token stream (§7: the AST is a trusted, type-checked input).
var exprPrecedence = map[string]int{
	"Identifier":              20,
	"ThisExpression":          20,
	"Super":                   20,
	"TemplateLiteral":         20,
	"TaggedTemplateExpression": 20,
	"ArrayExpression":         20,
	"ArrayPattern":            20,

	"CallExpression":    19,
	"NewExpression":     19,
	"MemberExpression":  19,
	"MetaProperty":      19,

	"Literal":                 18,
	"ArrowFunctionExpression": 18,

	"ClassExpression":   17,
	"FunctionExpression": 17,
	"ObjectExpression":  17,
	"ObjectPattern":     17,

	"UpdateExpression": 16,

	"UnaryExpression": 15,
	"AwaitExpression": 15,

	"BinaryExpression": 14,

	"LogicalExpression": 13,

	"ConditionalExpression": 4,

	"AssignmentExpression": 3,
	"AssignmentPattern":    3,

	"YieldExpression": 2,

	"RestElement":   1,
	"SpreadElement": 1,

	// SequenceExpression ranks at 20, not low: genSequenceExpression
	// always wraps its own output in parens (spec §4.5 — it is "a
	// parenthesized comma-separated list", never a bare comma list a
	// caller opportunistically wraps), so by the time writeChild sees it
	// the parens are already there and must never be doubled.
	"SequenceExpression": 20,
}

// statementHeadThreshold is the precedence level at which an expression
// leading an ExpressionStatement must be parenthesized (spec §3.4,
// §4.3): only kinds ranked exactly here (class/function/object literals)
// are wrapped, since they would otherwise be misparsed as a declaration
// or a block. Assignments whose target is an object pattern are wrapped
// by a separate check in needsStatementHeadParens.
const statementHeadThreshold = 17

// precedence returns an expression node's ranking, or 20 (the table's
// highest value) for kinds that never need outer parens
// (e.g. Property, VariableDeclarator) — those are never passed through
// needsParens in the first place.
func precedence(e ast.Expr) int {
	if p, ok := exprPrecedence[e.Type()]; ok {
		return p
	}
	return 20
}

// opPrecedence ranks binary/logical operators (spec §3.4).
var opPrecedence = map[string]int{
	"??": 2,
	"||": 3,
	"&&": 4,
	"|":  5,
	"^":  6,
	"&":  7,
	"==": 8, "!=": 8, "===": 8, "!==": 8,
	"<": 9, ">": 9, "<=": 9, ">=": 9, "in": 9, "instanceof": 9,
	"<<": 10, ">>": 10, ">>>": 10,
	"+": 11, "-": 11,
	"*": 12, "/": 12, "%": 12,
	"**": 13,
}

// needsParens implements the precedence oracle of spec §4.2.
func needsParens(child, parent ast.Expr, isRight bool) bool {
	cp, pp := precedence(child), precedence(parent)
	if cp != pp {
		return cp < pp
	}
	if pp != 13 && pp != 14 {
		return false
	}

	var co, po string
	switch c := child.(type) {
	case *ast.BinaryExpression:
		co = c.Operator
	case *ast.LogicalExpression:
		co = c.Operator
	default:
		return false
	}
	switch p := parent.(type) {
	case *ast.BinaryExpression:
		po = p.Operator
	case *ast.LogicalExpression:
		po = p.Operator
	default:
		return false
	}

	coPrec, poPrec := opPrecedence[co], opPrecedence[po]
	if co == "**" && po == "**" {
		return !isRight
	}
	if isRight {
		return coPrec <= poPrec
	}
	return coPrec < poPrec
}

// unaryArgNeedsParens implements the UnaryExpression rule in spec §4.2's
// final paragraph: the operand is wrapped when its own precedence is
// below UnaryExpression's.
func unaryArgNeedsParens(arg ast.Expr) bool {
	return precedence(arg) < exprPrecedence["UnaryExpression"]
}
