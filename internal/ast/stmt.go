package ast

import "github.com/surn-lang/surn/internal/lexer"

// Visibility controls which scopes can see a declaration.
type Visibility int

const (
	// Private visibility: only the current scope sees the member.
	// This is the default.
	Private Visibility = iota
	// Public visibility: every module sees the member.
	Public
	// Protected visibility: the current scope and its children.
	Protected
	// Module visibility: the current module only. Not user-defined.
	Module
)

// VisibilityFromKeyword maps a visibility keyword onto its value.
// Anything that is not a visibility keyword yields Private.
func VisibilityFromKeyword(kw lexer.KeyWord) Visibility {
	switch kw {
	case lexer.KwPublic:
		return Public
	case lexer.KwProtected:
		return Protected
	default:
		return Private
	}
}

// String returns the visibility's display name.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Module:
		return "module"
	default:
		return "private"
	}
}

// Var represents a mutable binding, `var x = 1;`.
type Var struct {
	Name   string
	NodeID uint64
	// Type declared with `: type`; nil when omitted.
	Type       TypeKind
	Visibility Visibility
	// Assignment is the initializer; nil for `var x;`.
	Assignment Expression
}

// NewVar constructs a var statement.
func NewVar(name string, ty TypeKind, visibility Visibility, assignment Expression) *Var {
	return &Var{Name: name, Type: ty, Visibility: visibility, Assignment: assignment}
}

// IsUninit reports whether the declaration has no initializer.
func (v *Var) IsUninit() bool { return v.Assignment == nil }

func (*Var) nodeKind() {}

// stmtNode marks Var as a statement.
func (*Var) stmtNode() {}

// Const represents an immutable binding, `const x = 1;`.
type Const struct {
	Name   string
	NodeID uint64
	// Type declared with `: type`; nil when omitted.
	Type       TypeKind
	Visibility Visibility
	// Assignment is the initializer; nil for `const x;`.
	Assignment Expression
}

// NewConst constructs a const statement.
func NewConst(name string, ty TypeKind, visibility Visibility, assignment Expression) *Const {
	return &Const{Name: name, Type: ty, Visibility: visibility, Assignment: assignment}
}

// IsUninit reports whether the declaration has no initializer.
func (c *Const) IsUninit() bool { return c.Assignment == nil }

func (*Const) nodeKind() {}

// stmtNode marks Const as a statement.
func (*Const) stmtNode() {}

// Static wraps a statement declared static.
type Static struct {
	Visibility Visibility
	Statement  Statement
}

// NewStatic constructs a static statement.
func NewStatic(visibility Visibility, stmt Statement) *Static {
	return &Static{Visibility: visibility, Statement: stmt}
}

func (*Static) nodeKind() {}

// stmtNode marks Static as a statement.
func (*Static) stmtNode() {}

// Function represents a function or method declaration.
type Function struct {
	// Name of the function; empty for anonymous functions.
	Name string
	// Inputs are the declared parameters, in order.
	Inputs []FunctionInput
	// Body is the block the function runs.
	Body Statement
	// Outputs is the declared return type; nil when omitted.
	Outputs    TypeKind
	Visibility Visibility
	NodeID     uint64
}

func (*Function) nodeKind() {}

// stmtNode marks Function as a statement.
func (*Function) stmtNode() {}

// FunctionInput is one declared parameter of a function.
type FunctionInput struct {
	Name string
	// Type declared for the parameter; nil when omitted.
	Type TypeKind
}

// NewFunctionInput constructs a function parameter.
func NewFunctionInput(name string, ty TypeKind) FunctionInput {
	return FunctionInput{Name: name, Type: ty}
}

// Class represents a class declaration.
type Class struct {
	Name string
	// Extends is the single superclass name; empty when absent.
	Extends string
	// Implements lists the implemented interface names; nil when
	// absent.
	Implements []string
	Body       ClassBody
	NodeID     uint64
}

func (*Class) nodeKind() {}

// stmtNode marks Class as a statement.
func (*Class) stmtNode() {}

// ClassBody partitions the members of a class. The split happens
// while parsing, not in a later pass.
type ClassBody struct {
	Properties []ClassProperty
	Methods    []Function
	Other      []ClassAllowedStatement
}

// NewClassBody constructs an empty class body.
func NewClassBody() ClassBody {
	return ClassBody{}
}

// ClassProperty is one property member of a class.
type ClassProperty struct {
	Name       string
	Visibility Visibility
	// Type declared for the property; nil when omitted.
	Type TypeKind
	// Assignment is the initializer; nil when uninitialized.
	Assignment Expression
}

// NewClassProperty constructs a class property.
func NewClassProperty(name string, visibility Visibility, ty TypeKind, assignment Expression) ClassProperty {
	return ClassProperty{Name: name, Visibility: visibility, Type: ty, Assignment: assignment}
}

// ClassAllowedStatement is the union of members a class body accepts
// beyond plain properties and methods. Exactly one field is set.
type ClassAllowedStatement struct {
	Property *ClassProperty
	Method   *Function
	Macro    *MacroInvocation
	Import   *Import
	// Static wraps another member declared static.
	Static *ClassAllowedStatement
}

// NewStaticMember wraps a class member as static.
func NewStaticMember(inner ClassAllowedStatement) ClassAllowedStatement {
	return ClassAllowedStatement{Static: &inner}
}

// Block represents a `{ ... }` statement block. Statements inside the
// block ride as StatementExpr values.
type Block struct {
	Body []Expression
}

// NewBlock constructs a block statement.
func NewBlock(body []Expression) *Block {
	return &Block{Body: body}
}

func (*Block) nodeKind() {}

// stmtNode marks Block as a statement.
func (*Block) stmtNode() {}

// Import represents a `use` statement such as `use foo\bar;`.
type Import struct {
	Path Path
}

func (*Import) nodeKind() {}

// stmtNode marks Import as a statement.
func (*Import) stmtNode() {}

// Path is a backslash-separated module path: the leading name plus
// its ordered sub-parts.
type Path struct {
	// Name is the leading segment, e.g. `a` in `a\b\c`.
	Name string
	// Parts are the remaining segments, in order.
	Parts []Path
}

// NewPath builds a path from a leading name and the remaining
// segment names.
func NewPath(name string, parts []string) Path {
	p := Path{Name: name}
	for _, part := range parts {
		p.Parts = append(p.Parts, Path{Name: part})
	}
	return p
}

// String renders the path in source form.
func (p Path) String() string {
	out := p.Name
	for _, part := range p.Parts {
		out += `\` + part.String()
	}
	return out
}

// Namespace represents a namespace statement, `namespace a\b\c;` or
// `namespace a { ... };`.
type Namespace struct {
	Path Path
	// Body is the inline block; nil when the namespace covers the
	// rest of the file.
	Body Statement
}

// NewNamespace constructs a namespace with no inline body.
func NewNamespace(path Path) *Namespace {
	return &Namespace{Path: path}
}

func (*Namespace) nodeKind() {}

// stmtNode marks Namespace as a statement.
func (*Namespace) stmtNode() {}

// TypeDef represents a type alias statement, `type Foo = int;`.
type TypeDef struct {
	Definition TypeDefinition
}

func (*TypeDef) nodeKind() {}

// stmtNode marks TypeDef as a statement.
func (*TypeDef) stmtNode() {}

// Return represents a return statement.
type Return struct {
	// Expression is the returned value; nil for a bare `return;`.
	Expression Expression
}

// NewReturn constructs a return statement.
func NewReturn(expr Expression) *Return {
	return &Return{Expression: expr}
}

func (*Return) nodeKind() {}

// stmtNode marks Return as a statement.
func (*Return) stmtNode() {}

// MacroInvocation represents a compiler macro call such as
// `php!( "hello" )`. Macro names cannot be user-defined.
type MacroInvocation struct {
	Name string
	// Body is the raw macro payload, traversed during invocation.
	Body string
}

func (*MacroInvocation) nodeKind() {}

// stmtNode marks MacroInvocation as a statement.
func (*MacroInvocation) stmtNode() {}
