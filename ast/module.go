package ast

// ImportSpecifier is implemented by the three import-specifier shapes.
// ESTree tells these apart by `type` string prefix (spec §3.2: "first
// distinguishing letter at position 6"); a typed reimplementation uses
// three concrete Go types and an ordinary type switch instead, per the
// spec's own Design Notes (§9).
type ImportSpecifier interface {
	Node
	importSpecifierNode()
}

// ImportSpecifierNamed is `import { imported as local } from "m"`.
type ImportSpecifierNamed struct {
	BaseNode
	Imported *Identifier
	Local    *Identifier
}

func (*ImportSpecifierNamed) Type() string        { return "ImportSpecifier" }
func (*ImportSpecifierNamed) importSpecifierNode() {}

// ImportDefaultSpecifier is the bare `import x from "m"` binding.
type ImportDefaultSpecifier struct {
	BaseNode
	Local *Identifier
}

func (*ImportDefaultSpecifier) Type() string        { return "ImportDefaultSpecifier" }
func (*ImportDefaultSpecifier) importSpecifierNode() {}

// ImportNamespaceSpecifier is `import * as ns from "m"`.
type ImportNamespaceSpecifier struct {
	BaseNode
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Type() string        { return "ImportNamespaceSpecifier" }
func (*ImportNamespaceSpecifier) importSpecifierNode() {}

type ImportDeclaration struct {
	BaseNode
	Specifiers []ImportSpecifier
	Source     *Literal
}

func (*ImportDeclaration) Type() string    { return "ImportDeclaration" }
func (*ImportDeclaration) stmtNode()       {}
func (*ImportDeclaration) moduleDeclNode() {}

type ExportSpecifier struct {
	BaseNode
	Local    *Identifier
	Exported *Identifier
}

func (*ExportSpecifier) Type() string { return "ExportSpecifier" }

type ExportNamedDeclaration struct {
	BaseNode
	// Declaration is non-nil for `export const x = 1;` form, in which
	// case Specifiers and Source are both empty/nil.
	Declaration Stmt
	Specifiers  []*ExportSpecifier
	// Source is non-nil for the re-export form `export { a } from "m";`.
	Source *Literal
}

func (*ExportNamedDeclaration) Type() string    { return "ExportNamedDeclaration" }
func (*ExportNamedDeclaration) stmtNode()       {}
func (*ExportNamedDeclaration) moduleDeclNode() {}

type ExportDefaultDeclaration struct {
	BaseNode
	// Declaration is a Stmt (FunctionDeclaration/ClassDeclaration) or an
	// Expr wrapped as a Stmt is not possible in Go's type system, so it
	// is carried as Node and the formatter type-switches.
	Declaration Node
}

func (*ExportDefaultDeclaration) Type() string    { return "ExportDefaultDeclaration" }
func (*ExportDefaultDeclaration) stmtNode()       {}
func (*ExportDefaultDeclaration) moduleDeclNode() {}

type ExportAllDeclaration struct {
	BaseNode
	Source   *Literal
	Exported *Identifier // non-nil for `export * as ns from "m";`
}

func (*ExportAllDeclaration) Type() string    { return "ExportAllDeclaration" }
func (*ExportAllDeclaration) stmtNode()       {}
func (*ExportAllDeclaration) moduleDeclNode() {}
