package ast

import "github.com/surn-lang/surn/internal/lexer"

// NodeKind is the payload of a parsed node: either an Expression or a
// Statement. The interface is sealed; only types in this package
// implement it.
type NodeKind interface {
	nodeKind()
}

// Expression represents anything that evaluates to a value, such as
// `x + 1` or `some_function()`.
type Expression interface {
	NodeKind
	exprNode()
}

// Statement represents anything that executes, such as `var x = 1;`,
// `return 1;` or `class Foo {}`.
type Statement interface {
	NodeKind
	stmtNode()
}

// Node is one parsed top-level unit: an inner Expression or Statement
// together with the source range it was built from. Nodes are created
// once and never mutated.
type Node struct {
	kind NodeKind
	span lexer.Range
}

// NewNode constructs a node over the given payload and source range.
func NewNode(kind NodeKind, span lexer.Range) Node {
	return Node{kind: kind, span: span}
}

// Inner returns the node's payload.
func (n Node) Inner() NodeKind { return n.kind }

// Span returns the source range the node covers.
func (n Node) Span() lexer.Range { return n.span }

// Body is the ordered sequence of top-level nodes parsed from one
// source unit. It is append-only: pushes preserve order and nothing
// reorders or rewrites a node once attached.
type Body struct {
	flags   []string
	program []Node
}

// NewBody constructs an empty body.
func NewBody() *Body {
	return &Body{}
}

// PushStatement appends a statement node covering span.
func (b *Body) PushStatement(stmt Statement, span lexer.Range) {
	b.program = append(b.program, NewNode(stmt, span))
}

// PushExpression appends an expression node covering span.
func (b *Body) PushExpression(expr Expression, span lexer.Range) {
	b.program = append(b.program, NewNode(expr, span))
}

// PushNode appends an already-built node.
func (b *Body) PushNode(n Node) {
	b.program = append(b.program, n)
}

// Program returns the parsed nodes in order.
func (b *Body) Program() []Node {
	return b.program
}

// Len returns the number of parsed nodes.
func (b *Body) Len() int {
	return len(b.program)
}

// AddFlag records a compiler flag on the body.
func (b *Body) AddFlag(flag string) {
	b.flags = append(b.flags, flag)
}

// Flags returns the flags recorded on the body.
func (b *Body) Flags() []string {
	return b.flags
}

// HasFlag reports whether the body carries the given flag.
func (b *Body) HasFlag(flag string) bool {
	for _, f := range b.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// FlagPartial marks a body attached to a parse error: the program
// holds only the nodes built before the failure.
const FlagPartial = "partial"
