package generator

import (
	"strings"

	"github.com/t14raptor/estree-gen/ast"
)

// stmtFormatters holds every statement-kind Formatter (spec §4.3), plus
// the two structural helpers (ClassBody shares BlockStatement's brace
// shape; SwitchCase and CatchClause are dispatched from their parent
// rather than from Generate directly, but are still registered so gen
// can reach them uniformly).
var stmtFormatters = dispatchTable{
	"Program":             genProgram,
	"BlockStatement":      genBlockStatement,
	"ClassBody":           genClassBody,
	"ExpressionStatement": genExpressionStatement,
	"EmptyStatement":      genEmptyStatement,
	"DebuggerStatement":   genDebuggerStatement,
	"WithStatement":       genWithStatement,
	"ReturnStatement":     genReturnStatement,
	"LabeledStatement":    genLabeledStatement,
	"BreakStatement":      genBreakStatement,
	"ContinueStatement":   genContinueStatement,
	"IfStatement":         genIfStatement,
	"SwitchStatement":     genSwitchStatement,
	"SwitchCase":          genSwitchCase,
	"ThrowStatement":      genThrowStatement,
	"CatchClause":         genCatchClause,
	"TryStatement":        genTryStatement,
	"WhileStatement":      genWhileStatement,
	"DoWhileStatement":    genDoWhileStatement,
	"ForStatement":        genForStatement,
	"ForInStatement":      genForInOf("in"),
	"ForOfStatement":      genForInOf("of"),
}

func genProgram(s *state, n ast.Node) {
	p := n.(*ast.Program)
	writeCommentList(s, p.LeadingComments())
	for _, st := range p.Body {
		s.writeIndent()
		gen(s, st)
		s.write(s.lineEnd)
	}
	writeCommentList(s, p.TrailingComments())
}

// writeBraceBody renders the shared BlockStatement/ClassBody shape (spec
// §4.1, §4.3): "{", and when non-empty or carrying comments, a newline,
// the block's own leading comments, one member per line, its own
// trailing comments, then the closing brace at the outer indent. An
// empty body with no comments collapses to "{}".
func writeBraceBody(s *state, items []ast.Node, leading, trailing []ast.Comment, writeComments bool) {
	hasComments := writeComments && (len(leading) > 0 || len(trailing) > 0)
	s.write("{")
	if len(items) == 0 && !hasComments {
		s.write("}")
		return
	}
	restore := s.enterBlock()
	s.write(s.lineEnd)
	writeCommentList(s, leading)
	for i, it := range items {
		if i > 0 {
			s.pad()
		} else {
			s.writeIndent()
		}
		gen(s, it)
	}
	if len(items) > 0 {
		s.write(s.lineEnd)
	}
	writeCommentList(s, trailing)
	restore()
	s.writeIndent()
	s.write("}")
}

func genBlockStatement(s *state, n ast.Node) {
	b := n.(*ast.BlockStatement)
	items := make([]ast.Node, len(b.Body))
	for i, st := range b.Body {
		items[i] = st
	}
	writeBraceBody(s, items, b.LeadingComments(), b.TrailingComments(), s.writeComments)
}

func genClassBody(s *state, n ast.Node) {
	c := n.(*ast.ClassBody)
	writeBraceBody(s, c.Body, c.LeadingComments(), c.TrailingComments(), s.writeComments)
}

// needsStatementHeadParens implements the ExpressionStatement wrapping
// rule of spec §3.4/§4.3: an expression that would otherwise be misread
// as the start of a block or declaration gets wrapped in parens.
func needsStatementHeadParens(e ast.Expr) bool {
	if ae, ok := e.(*ast.AssignmentExpression); ok {
		if _, isObjectPattern := ae.Left.(*ast.ObjectPattern); isObjectPattern {
			return true
		}
	}
	return precedence(e) == statementHeadThreshold
}

func genExpressionStatement(s *state, n ast.Node) {
	e := n.(*ast.ExpressionStatement)
	if needsStatementHeadParens(e.Expression) {
		s.write("(")
		gen(s, e.Expression)
		s.write(")")
	} else {
		gen(s, e.Expression)
	}
	s.write(";")
	writeInlineTrailingComment(s, e.TrailingComments())
}

// writeInlineTrailingComment appends a single same-line trailing line
// comment after a statement, mirroring the teacher's ExpressionStatement
// and LexicalDeclaration Comment-field idiom generalized to the richer
// comment-list model (only the first trailing comment is looked at, and
// it is written only when it is a line comment; a leading block comment
// and every later entry are not emitted).
func writeInlineTrailingComment(s *state, trailing []ast.Comment) {
	if !s.writeComments || len(trailing) == 0 {
		return
	}
	c := trailing[0]
	if c.Type != ast.LineComment {
		return
	}
	s.write(" // " + strings.TrimSpace(c.Value))
}

func genEmptyStatement(s *state, n ast.Node) {
	s.write(";")
}

func genDebuggerStatement(s *state, n ast.Node) {
	s.write("debugger;")
}

func genWithStatement(s *state, n ast.Node) {
	w := n.(*ast.WithStatement)
	s.write("with (")
	gen(s, w.Object)
	s.write(") ")
	gen(s, w.Body)
}

func genReturnStatement(s *state, n ast.Node) {
	r := n.(*ast.ReturnStatement)
	s.write("return")
	if r.Argument != nil {
		s.write(" ")
		gen(s, r.Argument)
	}
	s.write(";")
}

func genLabeledStatement(s *state, n ast.Node) {
	l := n.(*ast.LabeledStatement)
	gen(s, l.Label)
	s.write(": ")
	gen(s, l.Body)
}

func genBreakStatement(s *state, n ast.Node) {
	b := n.(*ast.BreakStatement)
	s.write("break")
	if b.Label != nil {
		s.write(" ")
		gen(s, b.Label)
	}
	s.write(";")
}

func genContinueStatement(s *state, n ast.Node) {
	c := n.(*ast.ContinueStatement)
	s.write("continue")
	if c.Label != nil {
		s.write(" ")
		gen(s, c.Label)
	}
	s.write(";")
}

// genIfStatement is a literal translation of the node's parts (spec
// §4.3): no braces are synthesized around a bare-statement consequent
// or alternate.
func genIfStatement(s *state, n ast.Node) {
	i := n.(*ast.IfStatement)
	s.write("if (")
	gen(s, i.Test)
	s.write(") ")
	gen(s, i.Consequent)
	if i.Alternate != nil {
		s.write(" else ")
		gen(s, i.Alternate)
	}
}

// genSwitchStatement increases the indent level by two inside the
// braces: one for each case label, one more for that case's consequent
// statements, restored symmetrically between cases (spec §4.3).
func genSwitchStatement(s *state, n ast.Node) {
	sw := n.(*ast.SwitchStatement)
	s.write("switch (")
	gen(s, sw.Discriminant)
	s.write(") {")
	restore := s.enterBlock()
	s.write(s.lineEnd)
	writeCommentList(s, sw.LeadingComments())
	for i, c := range sw.Cases {
		if i > 0 {
			s.pad()
		} else {
			s.writeIndent()
		}
		gen(s, c)
	}
	if len(sw.Cases) > 0 {
		s.write(s.lineEnd)
	}
	writeCommentList(s, sw.TrailingComments())
	restore()
	s.writeIndent()
	s.write("}")
}

func genSwitchCase(s *state, n ast.Node) {
	c := n.(*ast.SwitchCase)
	writeCommentList(s, c.LeadingComments())
	if c.Test != nil {
		s.write("case ")
		gen(s, c.Test)
		s.write(":")
	} else {
		s.write("default:")
	}
	restore := s.enterBlock()
	for _, st := range c.Consequent {
		s.pad()
		gen(s, st)
	}
	restore()
}

func genThrowStatement(s *state, n ast.Node) {
	t := n.(*ast.ThrowStatement)
	s.write("throw ")
	gen(s, t.Argument)
	s.write(";")
}

func genCatchClause(s *state, n ast.Node) {
	c := n.(*ast.CatchClause)
	s.write("catch")
	if c.Param != nil {
		s.write(" (")
		gen(s, c.Param)
		s.write(")")
	}
	s.write(" ")
	gen(s, c.Body)
}

func genTryStatement(s *state, n ast.Node) {
	t := n.(*ast.TryStatement)
	s.write("try ")
	gen(s, t.Block)
	if t.Handler != nil {
		s.write(" ")
		gen(s, t.Handler)
	}
	if t.Finalizer != nil {
		s.write(" finally ")
		gen(s, t.Finalizer)
	}
}

func genWhileStatement(s *state, n ast.Node) {
	w := n.(*ast.WhileStatement)
	s.write("while (")
	gen(s, w.Test)
	s.write(") ")
	gen(s, w.Body)
}

func genDoWhileStatement(s *state, n ast.Node) {
	d := n.(*ast.DoWhileStatement)
	s.write("do ")
	gen(s, d.Body)
	s.write(" while (")
	gen(s, d.Test)
	s.write(");")
}

// genForStatement suppresses the trailing ";" that a VariableDeclaration
// init would otherwise emit, and restores it before the loop's own two
// semicolons (spec §4.3).
func genForStatement(s *state, n ast.Node) {
	f := n.(*ast.ForStatement)
	s.write("for (")
	if f.Init != nil {
		restore := s.suppressSemicolon()
		gen(s, f.Init)
		restore()
	}
	s.write("; ")
	if f.Test != nil {
		gen(s, f.Test)
	}
	s.write("; ")
	if f.Update != nil {
		gen(s, f.Update)
	}
	s.write(") ")
	gen(s, f.Body)
}

// genForInOf returns the shared ForInStatement/ForOfStatement formatter,
// parameterized on the literal joining word rather than recovered by
// inspecting the node's type string (spec's Design Notes, §9).
func genForInOf(keyword string) Formatter {
	return func(s *state, n ast.Node) {
		var left ast.Node
		var right ast.Expr
		var body ast.Stmt
		await := false
		switch f := n.(type) {
		case *ast.ForInStatement:
			left, right, body = f.Left, f.Right, f.Body
		case *ast.ForOfStatement:
			left, right, body, await = f.Left, f.Right, f.Body, f.Await
		}
		if await {
			s.write("for await (")
		} else {
			s.write("for (")
		}
		restore := s.suppressSemicolon()
		gen(s, left)
		restore()
		s.write(" " + keyword + " ")
		gen(s, right)
		s.write(") ")
		gen(s, body)
	}
}
