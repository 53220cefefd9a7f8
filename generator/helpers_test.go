package generator

import "github.com/t14raptor/estree-gen/ast"

// Small AST-construction helpers shared by the table-driven tests in
// this package. There is no parser in this module (spec §1's explicit
// Non-goal); every fixture is built by hand.

func id(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func raw(text string) *ast.Literal {
	return &ast.Literal{Raw: &text}
}

func str(value string) *ast.Literal {
	return &ast.Literal{Value: value}
}

func num(text string) *ast.Literal {
	return raw(text)
}

func boolean(v bool) *ast.Literal {
	return &ast.Literal{Value: v}
}

func nullLit() *ast.Literal {
	return &ast.Literal{Value: nil}
}

func bin(op string, l, r ast.Expr) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: l, Right: r}
}

func logical(op string, l, r ast.Expr) *ast.LogicalExpression {
	return &ast.LogicalExpression{Operator: op, Left: l, Right: r}
}

func assign(op string, l, r ast.Expr) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: op, Left: l, Right: r}
}

func call(callee ast.Expr, args ...ast.Expr) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func member(obj, prop ast.Expr, computed bool) *ast.MemberExpression {
	return &ast.MemberExpression{Object: obj, Property: prop, Computed: computed}
}

func exprStmt(e ast.Expr) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func block(stmts ...ast.Stmt) *ast.BlockStatement {
	return &ast.BlockStatement{Body: stmts}
}

func program(stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{Body: stmts}
}

func retStmt(e ast.Expr) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: e}
}

func varDecl(kind ast.VariableKind, decls ...*ast.VariableDeclarator) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Kind: kind, Declarations: decls}
}

func declarator(target ast.Expr, init ast.Expr) *ast.VariableDeclarator {
	return &ast.VariableDeclarator{Id: target, Init: init}
}

// generate renders n with default options and fails the test on error.
func generate(t interface{ Fatalf(string, ...any) }, n ast.Node) string {
	out, err := Generate(n)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return out
}
