package ast

import "github.com/surn-lang/surn/internal/lexer"

// Call represents a regular function call such as `some_function()`.
type Call struct {
	// Name of the function being called, not the variable holding it.
	Name      string
	Arguments []Expression
}

// NewCallExpr constructs a call expression.
func NewCallExpr(name string, arguments []Expression) *Call {
	return &Call{Name: name, Arguments: arguments}
}

func (*Call) nodeKind() {}

// exprNode marks Call as an expression.
func (*Call) exprNode() {}

// MethodCall represents a call through a receiver such as `x.method()`.
type MethodCall struct {
	Name      string
	Arguments []Expression
	Callee    Expression
}

func (*MethodCall) nodeKind() {}

// exprNode marks MethodCall as an expression.
func (*MethodCall) exprNode() {}

// NewCall represents constructing a new instance, `new SomeType()`.
type NewCall struct {
	// Name of the class being constructed.
	Name      string
	Arguments []Expression
}

func (*NewCall) nodeKind() {}

// exprNode marks NewCall as an expression.
func (*NewCall) exprNode() {}

// Array represents an array literal such as `[1, 2, 3]`. The values
// are validated after parsing.
type Array struct {
	Values []Expression
	// Type of the array elements when known; nil otherwise.
	Type TypeKind
}

// NewArray constructs an array literal.
func NewArray(values []Expression, ty TypeKind) *Array {
	return &Array{Values: values, Type: ty}
}

func (*Array) nodeKind() {}

// exprNode marks Array as an expression.
func (*Array) exprNode() {}

// Object represents an object literal such as `{ key: "value" }`.
type Object struct {
	Properties []ObjectProperty
	// Type used to validate the object; nil when the object is
	// anonymous.
	Type TypeKind
}

// NewObject constructs an object literal.
func NewObject(properties []ObjectProperty, ty TypeKind) *Object {
	return &Object{Properties: properties, Type: ty}
}

// EmptyObject constructs an object literal with no properties.
func EmptyObject() *Object {
	return &Object{}
}

func (*Object) nodeKind() {}

// exprNode marks Object as an expression.
func (*Object) exprNode() {}

// ObjectProperty is one `name: value` pair of an object literal.
type ObjectProperty struct {
	Name  string
	Value Expression
}

// NewObjectProperty constructs an object property.
func NewObjectProperty(name string, value Expression) ObjectProperty {
	return ObjectProperty{Name: name, Value: value}
}

// Operation represents a binary operation such as `1 + 2`.
type Operation struct {
	Left  Expression
	Op    Op
	Right Expression
}

// NewOperation constructs an operation expression.
func NewOperation(left Expression, op Op, right Expression) *Operation {
	return &Operation{Left: left, Op: op, Right: right}
}

func (*Operation) nodeKind() {}

// exprNode marks Operation as an expression.
func (*Operation) exprNode() {}

// MemberLookup distinguishes how a member expression accesses its
// property.
type MemberLookup int

const (
	// LookupDynamic is an instance access, `x.member`.
	LookupDynamic MemberLookup = iota
	// LookupStatic is a static access, `SomeType::member`.
	LookupStatic
	// LookupIndex is an index access, `x[y]`. Only arrays support it.
	LookupIndex
)

// String returns the lookup's display name.
func (l MemberLookup) String() string {
	switch l {
	case LookupStatic:
		return "static"
	case LookupIndex:
		return "index"
	default:
		return "dynamic"
	}
}

// Member represents a member access such as `x.y` or `Foo::bar`.
type Member struct {
	// Name is the accessed property: the full expression on the right
	// of the accessor, e.g. `y` in `x.y`.
	Name Expression
	// Origin is the token the access starts from, e.g. `x` in `x.y`.
	Origin lexer.Token
	// Lookup is the access form the accessor selected.
	Lookup MemberLookup
}

// NewMember constructs a member access expression.
func NewMember(name Expression, origin lexer.Token, lookup MemberLookup) *Member {
	return &Member{Name: name, Origin: origin, Lookup: lookup}
}

func (*Member) nodeKind() {}

// exprNode marks Member as an expression.
func (*Member) exprNode() {}

// Literal represents a literal value: `1`, `"hello"`, `true`.
type Literal struct {
	Value string
	// Type assumed by the compiler; nil until inference runs.
	Type TypeKind
}

// NewLiteral constructs a literal expression.
func NewLiteral(value string, ty TypeKind) *Literal {
	return &Literal{Value: value, Type: ty}
}

func (*Literal) nodeKind() {}

// exprNode marks Literal as an expression.
func (*Literal) exprNode() {}

// StatementExpr wraps a statement appearing in expression position,
// which is how block bodies carry their statements.
type StatementExpr struct {
	Statement Statement
}

// NewStatementExpr wraps a statement as an expression.
func NewStatementExpr(stmt Statement) *StatementExpr {
	return &StatementExpr{Statement: stmt}
}

func (*StatementExpr) nodeKind() {}

// exprNode marks StatementExpr as an expression.
func (*StatementExpr) exprNode() {}

// EndOfLine represents an explicit `;` in expression position.
type EndOfLine struct{}

func (*EndOfLine) nodeKind() {}

// exprNode marks EndOfLine as an expression.
func (*EndOfLine) exprNode() {}
