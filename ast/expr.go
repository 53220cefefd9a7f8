package ast

// Identifier is both a reference expression and a binding pattern,
// exactly as in ESTree.
type Identifier struct {
	BaseNode
	Name string
}

func (*Identifier) Type() string { return "Identifier" }
func (*Identifier) exprNode()    {}

// Literal covers boolean, null, numeric, string and regex literals.
// Raw, when non-nil, is preferred verbatim over re-deriving text from
// Value (spec §4.5); this also means numeric separators, BigInt `n`
// suffixes and other exotic numeric spellings pass through untouched.
type Literal struct {
	BaseNode
	Value any
	Raw   *string
	Regex *RegExpValue
}

// RegExpValue is the optional `regex` attribute of a Literal.
type RegExpValue struct {
	Pattern string
	Flags   string
}

func (*Literal) Type() string { return "Literal" }
func (*Literal) exprNode()    {}

type ThisExpression struct {
	BaseNode
}

func (*ThisExpression) Type() string { return "ThisExpression" }
func (*ThisExpression) exprNode()    {}

// Super appears only as the object of a MemberExpression or the callee
// of a CallExpression inside a derived class.
type Super struct {
	BaseNode
}

func (*Super) Type() string { return "Super" }
func (*Super) exprNode()    {}

// TemplateElement is one quasi (literal text fragment) of a template
// literal. Cooked is unused by the generator — Raw is always emitted
// verbatim between backticks.
type TemplateElement struct {
	BaseNode
	Raw    string
	Cooked *string
	Tail   bool
}

func (*TemplateElement) Type() string { return "TemplateElement" }

type TemplateLiteral struct {
	BaseNode
	Quasis      []*TemplateElement
	Expressions []Expr
}

func (*TemplateLiteral) Type() string { return "TemplateLiteral" }
func (*TemplateLiteral) exprNode()    {}

type TaggedTemplateExpression struct {
	BaseNode
	Tag   Expr
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }
func (*TaggedTemplateExpression) exprNode()    {}

type ArrayExpression struct {
	BaseNode
	// Elements may contain nil entries for elisions: [1, , 3].
	Elements []Expr
}

func (*ArrayExpression) Type() string { return "ArrayExpression" }
func (*ArrayExpression) exprNode()    {}

// ArrayPattern shares ArrayExpression's formatter (spec §4.1); it is a
// distinct Go type only so call sites are unambiguous about context.
type ArrayPattern struct {
	BaseNode
	Elements []Expr
}

func (*ArrayPattern) Type() string { return "ArrayPattern" }
func (*ArrayPattern) exprNode()    {}

type ObjectExpression struct {
	BaseNode
	Properties []Expr // *Property or *SpreadElement
}

func (*ObjectExpression) Type() string { return "ObjectExpression" }
func (*ObjectExpression) exprNode()    {}

// PropertyKind distinguishes plain value properties from accessors and
// shorthand methods.
type PropertyKind string

const (
	PropertyInit        PropertyKind = "init"
	PropertyGet         PropertyKind = "get"
	PropertySet         PropertyKind = "set"
	PropertyMethod      PropertyKind = "method"
	PropertyConstructor PropertyKind = "constructor"
)

type Property struct {
	BaseNode
	Key       Expr
	Value     Expr
	Kind      PropertyKind
	Computed  bool
	Shorthand bool
	Method    bool
	Async     bool
	Generator bool
}

func (*Property) Type() string { return "Property" }
func (*Property) exprNode()    {}

type ObjectPattern struct {
	BaseNode
	Properties []Expr // *Property or *RestElement
}

func (*ObjectPattern) Type() string { return "ObjectPattern" }
func (*ObjectPattern) exprNode()    {}

type AssignmentPattern struct {
	BaseNode
	Left  Expr
	Right Expr
}

func (*AssignmentPattern) Type() string { return "AssignmentPattern" }
func (*AssignmentPattern) exprNode()    {}

// RestElement and SpreadElement are structurally identical and share a
// formatter (spec §4.1); RestElement appears in binding positions
// (parameters, destructuring), SpreadElement in value positions (array
// literals, call arguments).
type RestElement struct {
	BaseNode
	Argument Expr
}

func (*RestElement) Type() string { return "RestElement" }
func (*RestElement) exprNode()    {}

type SpreadElement struct {
	BaseNode
	Argument Expr
}

func (*SpreadElement) Type() string { return "SpreadElement" }
func (*SpreadElement) exprNode()    {}

type UnaryExpression struct {
	BaseNode
	Operator string
	Argument Expr
}

func (*UnaryExpression) Type() string { return "UnaryExpression" }
func (*UnaryExpression) exprNode()    {}

type UpdateExpression struct {
	BaseNode
	Operator string
	Argument Expr
	Prefix   bool
}

func (*UpdateExpression) Type() string { return "UpdateExpression" }
func (*UpdateExpression) exprNode()    {}

type BinaryExpression struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

func (*BinaryExpression) Type() string { return "BinaryExpression" }
func (*BinaryExpression) exprNode()    {}

// LogicalExpression shares BinaryExpression's formatter (spec §4.1);
// kept as a distinct type because `&&`/`||`/`??` are not interchangeable
// with arithmetic/comparison operators at the type-system level in a
// typed reimplementation, even though the source text shape is the same.
type LogicalExpression struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

func (*LogicalExpression) Type() string { return "LogicalExpression" }
func (*LogicalExpression) exprNode()    {}

type AssignmentExpression struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

func (*AssignmentExpression) Type() string { return "AssignmentExpression" }
func (*AssignmentExpression) exprNode()    {}

type ConditionalExpression struct {
	BaseNode
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (*ConditionalExpression) Type() string { return "ConditionalExpression" }
func (*ConditionalExpression) exprNode()    {}

type SequenceExpression struct {
	BaseNode
	Expressions []Expr
}

func (*SequenceExpression) Type() string { return "SequenceExpression" }
func (*SequenceExpression) exprNode()    {}

type CallExpression struct {
	BaseNode
	Callee    Expr
	Arguments []Expr // elements may be *SpreadElement
	Optional  bool   // true for `a?.()`
}

func (*CallExpression) Type() string { return "CallExpression" }
func (*CallExpression) exprNode()    {}

type NewExpression struct {
	BaseNode
	Callee    Expr
	Arguments []Expr
}

func (*NewExpression) Type() string { return "NewExpression" }
func (*NewExpression) exprNode()    {}

type MemberExpression struct {
	BaseNode
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

func (*MemberExpression) Type() string { return "MemberExpression" }
func (*MemberExpression) exprNode()    {}

type MetaProperty struct {
	BaseNode
	Meta     *Identifier
	Property *Identifier
}

func (*MetaProperty) Type() string { return "MetaProperty" }
func (*MetaProperty) exprNode()    {}

type ArrowFunctionExpression struct {
	BaseNode
	Params    []Expr
	Body      Node // *BlockStatement, or any Expr for a concise body
	Async     bool
	Generator bool
}

func (*ArrowFunctionExpression) Type() string { return "ArrowFunctionExpression" }
func (*ArrowFunctionExpression) exprNode()    {}

// FunctionExpression shares FunctionDeclaration's inner shape and
// formatter (spec §4.1/§4.4); Id is optional for expressions, required
// for declarations.
type FunctionExpression struct {
	BaseNode
	Id        *Identifier
	Params    []Expr
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionExpression) Type() string { return "FunctionExpression" }
func (*FunctionExpression) exprNode()    {}

type ClassExpression struct {
	BaseNode
	Id         *Identifier
	SuperClass Expr
	Body       *ClassBody
}

func (*ClassExpression) Type() string { return "ClassExpression" }
func (*ClassExpression) exprNode()    {}

type YieldExpression struct {
	BaseNode
	Argument Expr
	Delegate bool
}

func (*YieldExpression) Type() string { return "YieldExpression" }
func (*YieldExpression) exprNode()    {}

type AwaitExpression struct {
	BaseNode
	Argument Expr
}

func (*AwaitExpression) Type() string { return "AwaitExpression" }
func (*AwaitExpression) exprNode()    {}
