package ast

// ClassBody shares BlockStatement's formatter shape (spec §4.1) but is
// kept as a distinct node: its members are MethodDefinition/
// FieldDefinition, not statements.
type ClassBody struct {
	BaseNode
	Body []Node // *MethodDefinition or *FieldDefinition
}

func (*ClassBody) Type() string { return "ClassBody" }

type MethodDefinition struct {
	BaseNode
	Key      Expr
	Value    *FunctionExpression
	Kind     PropertyKind // "method", "get", "set", or "constructor"
	Computed bool
	Static   bool
}

func (*MethodDefinition) Type() string { return "MethodDefinition" }

// FieldDefinition covers class instance and static fields. Not named in
// the distilled spec's node table, but present in every class-bearing
// corpus example and required to render a ClassBody completely; see
// DESIGN.md.
type FieldDefinition struct {
	BaseNode
	Key      Expr
	Value    Expr // nil when uninitialized
	Computed bool
	Static   bool
}

func (*FieldDefinition) Type() string { return "FieldDefinition" }
