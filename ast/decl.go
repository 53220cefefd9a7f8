package ast

type VariableKind string

const (
	VariableVar   VariableKind = "var"
	VariableLet   VariableKind = "let"
	VariableConst VariableKind = "const"
)

type VariableDeclarator struct {
	BaseNode
	Id   Expr // Identifier, or a destructuring pattern
	Init Expr // nil if uninitialized
}

func (*VariableDeclarator) Type() string { return "VariableDeclarator" }

type VariableDeclaration struct {
	BaseNode
	Kind         VariableKind
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Type() string { return "VariableDeclaration" }
func (*VariableDeclaration) stmtNode()    {}

type FunctionDeclaration struct {
	BaseNode
	Id        *Identifier
	Params    []Expr
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionDeclaration) Type() string { return "FunctionDeclaration" }
func (*FunctionDeclaration) stmtNode()    {}

type ClassDeclaration struct {
	BaseNode
	Id         *Identifier
	SuperClass Expr
	Body       *ClassBody
}

func (*ClassDeclaration) Type() string { return "ClassDeclaration" }
func (*ClassDeclaration) stmtNode()    {}
