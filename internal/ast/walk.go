package ast

// Walk traverses the payload of node depth-first, calling visit for
// each NodeKind it reaches. If visit returns false, Walk stops
// descending into that branch.
func Walk(node Node, visit func(NodeKind) bool) {
	walkKind(node.Inner(), visit)
}

// WalkBody walks every node of a body in program order.
func WalkBody(body *Body, visit func(NodeKind) bool) {
	for _, node := range body.Program() {
		Walk(node, visit)
	}
}

func walkKind(kind NodeKind, visit func(NodeKind) bool) {
	if kind == nil {
		return
	}
	if !visit(kind) {
		return
	}

	switch n := kind.(type) {
	case *Call:
		for _, arg := range n.Arguments {
			walkKind(arg, visit)
		}

	case *MethodCall:
		if n.Callee != nil {
			walkKind(n.Callee, visit)
		}
		for _, arg := range n.Arguments {
			walkKind(arg, visit)
		}

	case *NewCall:
		for _, arg := range n.Arguments {
			walkKind(arg, visit)
		}

	case *Array:
		for _, value := range n.Values {
			walkKind(value, visit)
		}

	case *Object:
		for _, prop := range n.Properties {
			if prop.Value != nil {
				walkKind(prop.Value, visit)
			}
		}

	case *Operation:
		if n.Left != nil {
			walkKind(n.Left, visit)
		}
		if n.Right != nil {
			walkKind(n.Right, visit)
		}

	case *Member:
		if n.Name != nil {
			walkKind(n.Name, visit)
		}

	case *StatementExpr:
		if n.Statement != nil {
			walkKind(n.Statement, visit)
		}

	case *Var:
		if n.Assignment != nil {
			walkKind(n.Assignment, visit)
		}

	case *Const:
		if n.Assignment != nil {
			walkKind(n.Assignment, visit)
		}

	case *Static:
		if n.Statement != nil {
			walkKind(n.Statement, visit)
		}

	case *Function:
		if n.Body != nil {
			walkKind(n.Body, visit)
		}

	case *Class:
		for i := range n.Body.Properties {
			if n.Body.Properties[i].Assignment != nil {
				walkKind(n.Body.Properties[i].Assignment, visit)
			}
		}
		for i := range n.Body.Methods {
			walkKind(&n.Body.Methods[i], visit)
		}
		for i := range n.Body.Other {
			walkClassMember(&n.Body.Other[i], visit)
		}

	case *Block:
		for _, expr := range n.Body {
			walkKind(expr, visit)
		}

	case *Namespace:
		if n.Body != nil {
			walkKind(n.Body, visit)
		}

	case *Return:
		if n.Expression != nil {
			walkKind(n.Expression, visit)
		}

	// Leaf nodes have no children to traverse.
	case *Literal, *EndOfLine, *Import, *TypeDef, *MacroInvocation:
	}
}

func walkClassMember(member *ClassAllowedStatement, visit func(NodeKind) bool) {
	switch {
	case member.Property != nil:
		if member.Property.Assignment != nil {
			walkKind(member.Property.Assignment, visit)
		}
	case member.Method != nil:
		walkKind(member.Method, visit)
	case member.Macro != nil:
		walkKind(member.Macro, visit)
	case member.Import != nil:
		walkKind(member.Import, visit)
	case member.Static != nil:
		walkClassMember(member.Static, visit)
	}
}
