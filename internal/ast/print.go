package ast

import (
	"fmt"
	"strings"
)

// Print renders a body as an indented tree, one line per node. The
// output is meant for humans inspecting a parse, not for machines.
func Print(body *Body) string {
	var b strings.Builder
	for _, node := range body.Program() {
		span := node.Span()
		fmt.Fprintf(&b, "[%d..%d] ", span.Start, span.End)
		printKind(&b, node.Inner(), 0, true)
	}
	return b.String()
}

func printKind(b *strings.Builder, kind NodeKind, depth int, atHead bool) {
	if kind == nil {
		return
	}
	// The top-level line carries the span prefix already.
	if !atHead {
		b.WriteString(strings.Repeat("  ", depth))
	}

	switch n := kind.(type) {
	case *Call:
		fmt.Fprintf(b, "Call %s\n", n.Name)
		printArgs(b, n.Arguments, depth+1)

	case *MethodCall:
		fmt.Fprintf(b, "MethodCall %s\n", n.Name)
		printKind(b, n.Callee, depth+1, false)
		printArgs(b, n.Arguments, depth+1)

	case *NewCall:
		fmt.Fprintf(b, "New %s\n", n.Name)
		printArgs(b, n.Arguments, depth+1)

	case *Array:
		b.WriteString("Array\n")
		for _, value := range n.Values {
			printKind(b, value, depth+1, false)
		}

	case *Object:
		b.WriteString("Object\n")
		for _, prop := range n.Properties {
			fmt.Fprintf(b, "%s%s:\n", strings.Repeat("  ", depth+1), prop.Name)
			printKind(b, prop.Value, depth+2, false)
		}

	case *Operation:
		fmt.Fprintf(b, "Operation %q\n", n.Op.Name)
		printKind(b, n.Left, depth+1, false)
		printKind(b, n.Right, depth+1, false)

	case *Member:
		fmt.Fprintf(b, "Member %s (%s)\n", n.Origin.Value(), n.Lookup)
		printKind(b, n.Name, depth+1, false)

	case *Literal:
		fmt.Fprintf(b, "Literal %q\n", n.Value)

	case *StatementExpr:
		printKind(b, n.Statement, depth, atHead)

	case *EndOfLine:
		b.WriteString("EndOfLine\n")

	case *Var:
		fmt.Fprintf(b, "Var %s%s\n", n.Name, typeSuffix(n.Type))
		printKind(b, n.Assignment, depth+1, false)

	case *Const:
		fmt.Fprintf(b, "Const %s%s\n", n.Name, typeSuffix(n.Type))
		printKind(b, n.Assignment, depth+1, false)

	case *Static:
		fmt.Fprintf(b, "Static %s\n", n.Visibility)
		printKind(b, n.Statement, depth+1, false)

	case *Function:
		name := n.Name
		if name == "" {
			name = "<anonymous>"
		}
		fmt.Fprintf(b, "Function %s(%s)%s\n", name, inputList(n.Inputs), typeSuffix(n.Outputs))
		printKind(b, n.Body, depth+1, false)

	case *Class:
		fmt.Fprintf(b, "Class %s", n.Name)
		if n.Extends != "" {
			fmt.Fprintf(b, " extends %s", n.Extends)
		}
		if len(n.Implements) > 0 {
			fmt.Fprintf(b, " implements %s", strings.Join(n.Implements, ", "))
		}
		b.WriteString("\n")
		for i := range n.Body.Properties {
			printClassProperty(b, &n.Body.Properties[i], depth+1)
		}
		for i := range n.Body.Methods {
			printKind(b, &n.Body.Methods[i], depth+1, false)
		}
		for i := range n.Body.Other {
			printClassMember(b, &n.Body.Other[i], depth+1)
		}

	case *Block:
		b.WriteString("Block\n")
		for _, expr := range n.Body {
			printKind(b, expr, depth+1, false)
		}

	case *Import:
		fmt.Fprintf(b, "Import %s\n", n.Path)

	case *Namespace:
		fmt.Fprintf(b, "Namespace %s\n", n.Path)
		printKind(b, n.Body, depth+1, false)

	case *TypeDef:
		fmt.Fprintf(b, "TypeDef %s = %s\n", n.Definition.Name, n.Definition.Kind)

	case *Return:
		b.WriteString("Return\n")
		printKind(b, n.Expression, depth+1, false)

	case *MacroInvocation:
		fmt.Fprintf(b, "Macro %s!\n", n.Name)

	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func printArgs(b *strings.Builder, args []Expression, depth int) {
	for _, arg := range args {
		printKind(b, arg, depth, false)
	}
}

func printClassProperty(b *strings.Builder, prop *ClassProperty, depth int) {
	fmt.Fprintf(b, "%sProperty %s %s%s\n", strings.Repeat("  ", depth), prop.Visibility, prop.Name, typeSuffix(prop.Type))
	printKind(b, prop.Assignment, depth+1, false)
}

func printClassMember(b *strings.Builder, member *ClassAllowedStatement, depth int) {
	switch {
	case member.Property != nil:
		printClassProperty(b, member.Property, depth)
	case member.Method != nil:
		printKind(b, member.Method, depth, false)
	case member.Macro != nil:
		printKind(b, member.Macro, depth, false)
	case member.Import != nil:
		printKind(b, member.Import, depth, false)
	case member.Static != nil:
		fmt.Fprintf(b, "%sStatic\n", strings.Repeat("  ", depth))
		printClassMember(b, member.Static, depth+1)
	}
}

func inputList(inputs []FunctionInput) string {
	parts := make([]string, 0, len(inputs))
	for _, in := range inputs {
		parts = append(parts, in.Name+typeSuffix(in.Type))
	}
	return strings.Join(parts, ", ")
}

func typeSuffix(ty TypeKind) string {
	if ty == nil {
		return ""
	}
	return ": " + ty.String()
}
