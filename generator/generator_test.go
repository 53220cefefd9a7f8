package generator

import (
	"testing"

	"github.com/t14raptor/estree-gen/ast"
)

func TestExpressionPrecedenceParens(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{
			name:     "multiplication parenthesizes a lower-precedence addition operand",
			expr:     bin("*", bin("+", id("a"), id("b")), id("c")),
			expected: "(a + b) * c",
		},
		{
			name:     "addition never needs to parenthesize a nested multiplication",
			expr:     bin("+", bin("*", id("a"), id("b")), id("c")),
			expected: "a * b + c",
		},
		{
			name:     "right operand of subtraction needs parens at equal precedence",
			expr:     bin("-", id("a"), bin("-", id("b"), id("c"))),
			expected: "a - (b - c)",
		},
		{
			name:     "left operand of subtraction never needs parens at equal precedence",
			expr:     bin("-", bin("-", id("a"), id("b")), id("c")),
			expected: "a - b - c",
		},
		{
			name:     "exponentiation is right-associative: right side never parenthesized",
			expr:     bin("**", id("a"), bin("**", id("b"), id("c"))),
			expected: "a ** b ** c",
		},
		{
			name:     "exponentiation is right-associative: left side always parenthesized",
			expr:     bin("**", bin("**", id("a"), id("b")), id("c")),
			expected: "(a ** b) ** c",
		},
		{
			name:     "logical && binds tighter than ||, no parens needed",
			expr:     logical("||", logical("&&", id("a"), id("b")), id("c")),
			expected: "a && b || c",
		},
		{
			name:     "|| nested inside && needs parens",
			expr:     logical("&&", logical("||", id("a"), id("b")), id("c")),
			expected: "(a || b) && c",
		},
		{
			name:     "assignment as call argument needs no parens",
			expr:     call(id("f"), assign("=", id("x"), id("y"))),
			expected: "f(x = y)",
		},
		{
			name:     "in operator wraps the whole expression to stay for-header safe",
			expr:     bin("in", str("k"), id("obj")),
			expected: `("k" in obj)`,
		},
		{
			name: "new callee containing a call is parenthesized",
			expr: &ast.NewExpression{
				Callee: member(call(id("factory")), id("Widget"), false),
			},
			expected: "new (factory().Widget)()",
		},
		{
			name: "new callee without a nested call needs no parens",
			expr: &ast.NewExpression{
				Callee: member(id("ns"), id("Widget"), false),
			},
			expected: "new ns.Widget()",
		},
		{
			name: "conditional in test position is wrapped despite equal precedence",
			expr: &ast.ConditionalExpression{
				Test:       &ast.ConditionalExpression{Test: id("a"), Consequent: id("b"), Alternate: id("c")},
				Consequent: id("d"),
				Alternate:  id("e"),
			},
			expected: "(a ? b : c) ? d : e",
		},
		{
			name: "conditional in consequent/alternate position needs no parens",
			expr: &ast.ConditionalExpression{
				Test:       id("a"),
				Consequent: id("b"),
				Alternate:  &ast.ConditionalExpression{Test: id("c"), Consequent: id("d"), Alternate: id("e")},
			},
			expected: "a ? b : c ? d : e",
		},
		{
			name:     "sequence expression always parenthesizes itself",
			expr:     &ast.SequenceExpression{Expressions: []ast.Expr{id("a"), id("b")}},
			expected: "(a, b)",
		},
		{
			name:     "sequence expression as sole call argument is double-parenthesized",
			expr:     call(id("f"), &ast.SequenceExpression{Expressions: []ast.Expr{id("a"), id("b")}}),
			expected: "f((a, b))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.expr)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExpressionStatementHeadParens(t *testing.T) {
	tests := []struct {
		name     string
		stmt     ast.Stmt
		expected string
	}{
		{
			name:     "object literal at statement head is wrapped",
			stmt:     exprStmt(&ast.ObjectExpression{}),
			expected: "({});",
		},
		{
			name: "function expression at statement head is wrapped",
			stmt: exprStmt(&ast.FunctionExpression{
				Body: block(),
			}),
			expected: "(function () {});",
		},
		{
			name:     "identifier at statement head needs no wrapping",
			stmt:     exprStmt(id("a")),
			expected: "a;",
		},
		{
			name: "object-pattern assignment at statement head is wrapped",
			stmt: exprStmt(assign("=", &ast.ObjectPattern{
				Properties: []ast.Expr{
					&ast.Property{Key: id("a"), Value: id("a"), Shorthand: true},
				},
			}, id("src"))),
			expected: "({a} = src);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.stmt)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStatementRendering(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name: "if without else, no synthesized braces",
			node: &ast.IfStatement{
				Test:       id("cond"),
				Consequent: exprStmt(call(id("f"))),
			},
			expected: "if (cond) f();",
		},
		{
			name: "if/else if chain",
			node: &ast.IfStatement{
				Test:       id("a"),
				Consequent: block(retStmt(num("1"))),
				Alternate: &ast.IfStatement{
					Test:       id("b"),
					Consequent: block(retStmt(num("2"))),
					Alternate:  block(retStmt(num("3"))),
				},
			},
			expected: "if (a) {\n\treturn 1;\n} else if (b) {\n\treturn 2;\n} else {\n\treturn 3;\n}",
		},
		{
			name: "while loop",
			node: &ast.WhileStatement{
				Test: bin("<", id("i"), num("10")),
				Body: block(exprStmt(&ast.UpdateExpression{Operator: "++", Argument: id("i"), Prefix: false})),
			},
			expected: "while (i < 10) {\n\ti++;\n}",
		},
		{
			name: "do-while loop",
			node: &ast.DoWhileStatement{
				Body: block(exprStmt(call(id("f")))),
				Test: id("cond"),
			},
			expected: "do {\n\tf();\n} while (cond);",
		},
		{
			name: "classic for loop suppresses the init declaration's semicolon",
			node: &ast.ForStatement{
				Init: varDecl(ast.VariableLet, declarator(id("i"), num("0"))),
				Test: bin("<", id("i"), num("10")),
				Update: &ast.UpdateExpression{
					Operator: "++",
					Argument: id("i"),
				},
				Body: block(),
			},
			expected: "for (let i = 0; i < 10; i++) {}",
		},
		{
			name: "for-of over a destructuring pattern",
			node: &ast.ForOfStatement{
				Left: varDecl(ast.VariableConst, declarator(&ast.ArrayPattern{
					Elements: []ast.Expr{id("k"), id("v")},
				}, nil)),
				Right: id("entries"),
				Body:  block(),
			},
			expected: "for (const [k, v] of entries) {}",
		},
		{
			name: "try/catch/finally with a parameter-less catch",
			node: &ast.TryStatement{
				Block: block(exprStmt(call(id("risky")))),
				Handler: &ast.CatchClause{
					Body: block(exprStmt(call(id("log")))),
				},
				Finalizer: block(exprStmt(call(id("cleanup")))),
			},
			expected: "try {\n\trisky();\n} catch {\n\tlog();\n} finally {\n\tcleanup();\n}",
		},
		{
			name: "switch with a default case",
			node: &ast.SwitchStatement{
				Discriminant: id("x"),
				Cases: []*ast.SwitchCase{
					{Test: num("1"), Consequent: []ast.Stmt{&ast.BreakStatement{}}},
					{Consequent: []ast.Stmt{&ast.BreakStatement{}}},
				},
			},
			expected: "switch (x) {\n\tcase 1:\n\t\tbreak;\n\tdefault:\n\t\tbreak;\n}",
		},
		{
			name: "empty object literal stays collapsed",
			node: exprStmt(&ast.ObjectExpression{}),
			expected: "({});",
		},
		{
			name: "object literal with properties, one per line",
			node: exprStmt(&ast.ObjectExpression{
				Properties: []ast.Expr{
					&ast.Property{Key: id("a"), Value: num("1")},
					&ast.Property{Key: id("b"), Value: num("2")},
				},
			}),
			expected: "({\n\ta: 1,\n\tb: 2\n});",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFunctionAndClassRendering(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name: "named generator function",
			node: &ast.FunctionDeclaration{
				Id:        id("gen"),
				Generator: true,
				Body:      block(exprStmt(&ast.YieldExpression{Argument: num("1")})),
			},
			expected: "function* gen() {\n\tyield 1;\n}",
		},
		{
			name: "async arrow with a single bare identifier parameter",
			node: exprStmt(&ast.ArrowFunctionExpression{
				Async:  true,
				Params: []ast.Expr{id("x")},
				Body:   bin("+", id("x"), num("1")),
			}),
			expected: "async x => x + 1;",
		},
		{
			name: "arrow with zero params",
			node: exprStmt(&ast.ArrowFunctionExpression{
				Body: block(),
			}),
			expected: "() => {};",
		},
		{
			name: "arrow with a sequence expression concise body self-parenthesizes",
			node: exprStmt(&ast.ArrowFunctionExpression{
				Params: []ast.Expr{id("x")},
				Body:   &ast.SequenceExpression{Expressions: []ast.Expr{id("a"), id("b")}},
			}),
			expected: "x => (a, b);",
		},
		{
			name: "class with a constructor and a static method",
			node: &ast.ClassDeclaration{
				Id: id("Point"),
				Body: &ast.ClassBody{
					Body: []ast.Node{
						&ast.MethodDefinition{
							Key:  id("constructor"),
							Kind: ast.PropertyConstructor,
							Value: &ast.FunctionExpression{
								Params: []ast.Expr{id("x")},
								Body:   block(exprStmt(assign("=", member(&ast.ThisExpression{}, id("x"), false), id("x")))),
							},
						},
						&ast.MethodDefinition{
							Key:    id("origin"),
							Static: true,
							Kind:   ast.PropertyMethod,
							Value: &ast.FunctionExpression{
								Body: block(retStmt(&ast.NewExpression{Callee: id("Point"), Arguments: []ast.Expr{num("0"), num("0")}})),
							},
						},
					},
				},
			},
			expected: "class Point {\n\tconstructor(x) {\n\t\tthis.x = x;\n\t}\n\tstatic origin() {\n\t\treturn new Point(0, 0);\n\t}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModuleDeclarationRendering(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name: "default and named import combined",
			node: &ast.ImportDeclaration{
				Specifiers: []ast.ImportSpecifier{
					&ast.ImportDefaultSpecifier{Local: id("React")},
					&ast.ImportSpecifierNamed{Imported: id("useState"), Local: id("useState")},
					&ast.ImportSpecifierNamed{Imported: id("useEffect"), Local: id("effect")},
				},
				Source: str("react"),
			},
			expected: `import React, { useState, useEffect as effect } from "react";`,
		},
		{
			name: "namespace import",
			node: &ast.ImportDeclaration{
				Specifiers: []ast.ImportSpecifier{&ast.ImportNamespaceSpecifier{Local: id("utils")}},
				Source:     str("./utils"),
			},
			expected: `import * as utils from "./utils";`,
		},
		{
			name: "export default expression gets a semicolon",
			node: &ast.ExportDefaultDeclaration{Declaration: num("42")},
			expected: "export default 42;",
		},
		{
			name: "export default function declaration has no trailing semicolon",
			node: &ast.ExportDefaultDeclaration{Declaration: &ast.FunctionDeclaration{Body: block()}},
			expected: "export default function () {}",
		},
		{
			name: "re-export from another module",
			node: &ast.ExportNamedDeclaration{
				Specifiers: []*ast.ExportSpecifier{{Local: id("a"), Exported: id("b")}},
				Source:     str("./m"),
			},
			expected: `export { a as b } from "./m";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
