package ast

type BlockStatement struct {
	BaseNode
	Body []Stmt
}

func (*BlockStatement) Type() string { return "BlockStatement" }
func (*BlockStatement) stmtNode()    {}

type ExpressionStatement struct {
	BaseNode
	Expression Expr
}

func (*ExpressionStatement) Type() string { return "ExpressionStatement" }
func (*ExpressionStatement) stmtNode()    {}

type EmptyStatement struct {
	BaseNode
}

func (*EmptyStatement) Type() string { return "EmptyStatement" }
func (*EmptyStatement) stmtNode()    {}

type DebuggerStatement struct {
	BaseNode
}

func (*DebuggerStatement) Type() string { return "DebuggerStatement" }
func (*DebuggerStatement) stmtNode()    {}

type WithStatement struct {
	BaseNode
	Object Expr
	Body   Stmt
}

func (*WithStatement) Type() string { return "WithStatement" }
func (*WithStatement) stmtNode()    {}

type ReturnStatement struct {
	BaseNode
	Argument Expr
}

func (*ReturnStatement) Type() string { return "ReturnStatement" }
func (*ReturnStatement) stmtNode()    {}

type LabeledStatement struct {
	BaseNode
	Label *Identifier
	Body  Stmt
}

func (*LabeledStatement) Type() string { return "LabeledStatement" }
func (*LabeledStatement) stmtNode()    {}

type BreakStatement struct {
	BaseNode
	Label *Identifier
}

func (*BreakStatement) Type() string { return "BreakStatement" }
func (*BreakStatement) stmtNode()    {}

type ContinueStatement struct {
	BaseNode
	Label *Identifier
}

func (*ContinueStatement) Type() string { return "ContinueStatement" }
func (*ContinueStatement) stmtNode()    {}

type IfStatement struct {
	BaseNode
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

func (*IfStatement) Type() string { return "IfStatement" }
func (*IfStatement) stmtNode()    {}

type SwitchCase struct {
	BaseNode
	// Test is nil for the default case.
	Test       Expr
	Consequent []Stmt
}

func (*SwitchCase) Type() string { return "SwitchCase" }

type SwitchStatement struct {
	BaseNode
	Discriminant Expr
	Cases        []*SwitchCase
}

func (*SwitchStatement) Type() string { return "SwitchStatement" }
func (*SwitchStatement) stmtNode()    {}

type ThrowStatement struct {
	BaseNode
	Argument Expr
}

func (*ThrowStatement) Type() string { return "ThrowStatement" }
func (*ThrowStatement) stmtNode()    {}

type CatchClause struct {
	BaseNode
	// Param is nil for a parameter-less catch.
	Param Expr
	Body  *BlockStatement
}

func (*CatchClause) Type() string { return "CatchClause" }

type TryStatement struct {
	BaseNode
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (*TryStatement) Type() string { return "TryStatement" }
func (*TryStatement) stmtNode()    {}

type WhileStatement struct {
	BaseNode
	Test Expr
	Body Stmt
}

func (*WhileStatement) Type() string { return "WhileStatement" }
func (*WhileStatement) stmtNode()    {}

type DoWhileStatement struct {
	BaseNode
	Body Stmt
	Test Expr
}

func (*DoWhileStatement) Type() string { return "DoWhileStatement" }
func (*DoWhileStatement) stmtNode()    {}

type ForStatement struct {
	BaseNode
	// Init may be nil, a *VariableDeclaration, or an Expr.
	Init Node
	Test Expr
	// Update is named Update in ESTree, not Final; kept literal.
	Update Expr
	Body   Stmt
}

func (*ForStatement) Type() string { return "ForStatement" }
func (*ForStatement) stmtNode()    {}

// ForInStatement and ForOfStatement share one formatter (spec §4.1 /
// §4.3); the distinguishing word (" in " vs " of ") is carried as data
// on a shared helper rather than recovered from the type string, per the
// spec's own Design Notes (§9) steering typed code away from that trick.
type ForInStatement struct {
	BaseNode
	// Left is a *VariableDeclaration or a binding-pattern Expr.
	Left  Node
	Right Expr
	Body  Stmt
}

func (*ForInStatement) Type() string { return "ForInStatement" }
func (*ForInStatement) stmtNode()    {}

type ForOfStatement struct {
	BaseNode
	Left  Node
	Right Expr
	Body  Stmt
	Await bool
}

func (*ForOfStatement) Type() string { return "ForOfStatement" }
func (*ForOfStatement) stmtNode()    {}
