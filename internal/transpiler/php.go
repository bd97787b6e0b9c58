package transpiler

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/config"
)

// NewPhpLanguage returns the PHP target in its default configuration.
func NewPhpLanguage() Language {
	return Language{
		Name:        "php",
		Description: "PHP",
		Version:     "8.x.x",
		Author:      "Suruloon Studios",
		API:         V1,
		Generator:   NewPhpGenerator(PSR4()),
	}
}

// PhpGenerator renders parsed programs as PHP source. Literal values
// carry no kind in the tree, so they render verbatim; resolving them
// further is the type checker's job, not the emitter's.
type PhpGenerator struct {
	formatting FormatOptions
}

// NewPhpGenerator returns a generator emitting in the given style.
func NewPhpGenerator(format FormatOptions) *PhpGenerator {
	return &PhpGenerator{formatting: format}
}

// GenerateString renders body as PHP, one statement per line.
func (p *PhpGenerator) GenerateString(body *ast.Body, options config.CompilerOptions) (string, error) {
	w := &phpWriter{options: p.formatting}
	for _, node := range body.Program() {
		p.node(w, node.Inner())
	}
	return w.buf.String(), nil
}

// Generate renders the script or directory at path.
func (p *PhpGenerator) Generate(path string, options config.CompilerOptions) error {
	return fmt.Errorf("php: generating from path %q is not implemented", path)
}

// phpWriter accumulates indented lines.
type phpWriter struct {
	options FormatOptions
	buf     strings.Builder
	depth   int
}

func (w *phpWriter) line(text string) {
	for i := 0; i < w.depth*w.options.IndentSize; i++ {
		w.buf.WriteByte(' ')
	}
	w.buf.WriteString(text)
	w.buf.WriteRune(w.options.NewLine)
}

// open writes header and its opening brace per style and indents.
func (w *phpWriter) open(style BraceType, header string) {
	if style == KandR {
		w.line(header + " {")
	} else {
		w.line(header)
		w.line("{")
	}
	w.depth++
}

func (w *phpWriter) close() {
	w.depth--
	w.line("}")
}

// node renders one program node. Unsupported nodes render nothing.
func (p *PhpGenerator) node(w *phpWriter, kind ast.NodeKind) {
	switch n := kind.(type) {
	case *ast.Var:
		p.variable(w, n)
	case *ast.Const:
		p.constant(w, n)
	case *ast.Function:
		p.function(w, n, "")
	case *ast.Class:
		p.class(w, n)
	case *ast.Namespace:
		p.namespace(w, n)
	case *ast.Static:
		p.node(w, n.Statement)
	case *ast.Return:
		p.returning(w, n)
	case *ast.StatementExpr:
		p.node(w, n.Statement)
	case *ast.EndOfLine:
	case ast.Expression:
		if rendered := p.expression(n); rendered != "" {
			w.line(rendered + ";")
		}
	}
}

func (p *PhpGenerator) variable(w *phpWriter, v *ast.Var) {
	name := p.varName(v.Name)
	if v.Assignment == nil {
		w.line("$" + name + ";")
		return
	}
	w.line("$" + name + " = " + p.expression(v.Assignment) + ";")
}

func (p *PhpGenerator) constant(w *phpWriter, c *ast.Const) {
	if c.Assignment == nil {
		w.line("static " + c.Name + ";")
		return
	}
	w.line("static " + c.Name + " = " + p.expression(c.Assignment) + ";")
}

// function renders a declaration. modifier carries class-member
// prefixes such as `public static `; empty at top level.
func (p *PhpGenerator) function(w *phpWriter, fn *ast.Function, modifier string) {
	header := modifier + "function " + fn.Name + "(" + p.inputs(fn.Inputs) + ")"
	if fn.Outputs != nil {
		header += ": " + p.typeName(fn.Outputs)
	}
	w.open(w.options.FunctionBrace, header)
	if block, ok := fn.Body.(*ast.Block); ok {
		p.block(w, block)
	}
	w.close()
}

func (p *PhpGenerator) inputs(inputs []ast.FunctionInput) string {
	rendered := make([]string, 0, len(inputs))
	for _, input := range inputs {
		param := "$" + p.varName(input.Name)
		if input.Type != nil {
			param = p.typeName(input.Type) + " " + param
		}
		rendered = append(rendered, param)
	}
	return strings.Join(rendered, ", ")
}

func (p *PhpGenerator) block(w *phpWriter, block *ast.Block) {
	for _, expr := range block.Body {
		p.node(w, expr)
	}
}

func (p *PhpGenerator) returning(w *phpWriter, r *ast.Return) {
	if r.Expression == nil {
		w.line("return;")
		return
	}
	w.line("return " + p.expression(r.Expression) + ";")
}

func (p *PhpGenerator) class(w *phpWriter, c *ast.Class) {
	header := "class " + c.Name
	if c.Extends != "" {
		header += " extends " + c.Extends
	}
	if len(c.Implements) > 0 {
		header += " implements " + strings.Join(c.Implements, ", ")
	}
	w.open(w.options.ClassBrace, header)
	for _, property := range c.Body.Properties {
		p.property(w, property, false)
	}
	for _, method := range c.Body.Methods {
		p.function(w, &method, visibilityName(method.Visibility)+" ")
	}
	for _, other := range c.Body.Other {
		p.member(w, other, false)
	}
	w.close()
}

func (p *PhpGenerator) property(w *phpWriter, property ast.ClassProperty, static bool) {
	parts := []string{visibilityName(property.Visibility)}
	if static {
		parts = append(parts, "static")
	}
	if property.Type != nil {
		parts = append(parts, p.typeName(property.Type))
	}
	parts = append(parts, "$"+p.varName(property.Name))
	line := strings.Join(parts, " ")
	if property.Assignment != nil {
		line += " = " + p.expression(property.Assignment)
	}
	w.line(line + ";")
}

// member renders the class members beyond plain properties and
// methods: static wrappers, macros and imports. Macros and imports
// have no PHP rendering yet and emit nothing.
func (p *PhpGenerator) member(w *phpWriter, member ast.ClassAllowedStatement, static bool) {
	switch {
	case member.Static != nil:
		p.member(w, *member.Static, true)
	case member.Property != nil:
		p.property(w, *member.Property, static)
	case member.Method != nil:
		modifier := visibilityName(member.Method.Visibility) + " "
		if static {
			modifier += "static "
		}
		p.function(w, member.Method, modifier)
	}
}

func (p *PhpGenerator) namespace(w *phpWriter, ns *ast.Namespace) {
	if ns.Body == nil {
		w.line("namespace " + ns.Path.String() + ";")
		return
	}
	w.open(w.options.ClassBrace, "namespace "+ns.Path.String())
	if block, ok := ns.Body.(*ast.Block); ok {
		p.block(w, block)
	}
	w.close()
}

// expression renders a value position. Unsupported expressions render
// as the empty string.
func (p *PhpGenerator) expression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value
	case *ast.Operation:
		return p.expression(e.Left) + " " + e.Op.Name + " " + p.expression(e.Right)
	case *ast.Call:
		return e.Name + "(" + p.arguments(e.Arguments) + ")"
	case *ast.NewCall:
		return "new " + e.Name + "(" + p.arguments(e.Arguments) + ")"
	case *ast.Member:
		if e.Lookup == ast.LookupStatic {
			return p.access(e)
		}
		return "$" + p.access(e)
	case *ast.Array:
		values := make([]string, 0, len(e.Values))
		for _, value := range e.Values {
			values = append(values, p.expression(value))
		}
		return "[" + strings.Join(values, ", ") + "]"
	case *ast.Object:
		properties := make([]string, 0, len(e.Properties))
		for _, property := range e.Properties {
			properties = append(properties, `"`+property.Name+`" => `+p.expression(property.Value))
		}
		return "[" + strings.Join(properties, ", ") + "]"
	}
	return ""
}

// access renders a member chain without the leading sigil.
func (p *PhpGenerator) access(m *ast.Member) string {
	accessor := "->"
	if m.Lookup == ast.LookupStatic {
		accessor = "::"
	}
	if inner, ok := m.Name.(*ast.Member); ok {
		return m.Origin.Literal + accessor + p.access(inner)
	}
	return m.Origin.Literal + accessor + p.expression(m.Name)
}

func (p *PhpGenerator) arguments(args []ast.Expression) string {
	rendered := make([]string, 0, len(args))
	for _, arg := range args {
		rendered = append(rendered, p.expression(arg))
	}
	return strings.Join(rendered, ", ")
}

func (p *PhpGenerator) varName(name string) string {
	if p.formatting.SnakeCaseVars {
		return snakeCase(name)
	}
	return name
}

// typeName maps a declared type onto its PHP spelling.
func (p *PhpGenerator) typeName(kind ast.TypeKind) string {
	switch t := kind.(type) {
	case *ast.BuiltInType:
		return phpBuiltIn(t)
	case *ast.TypeReference:
		return t.Name
	case *ast.TypeUnion:
		members := make([]string, 0, len(t.Types))
		for _, member := range t.Types {
			members = append(members, p.typeName(member))
		}
		return strings.Join(members, "|")
	}
	return "mixed"
}

func phpBuiltIn(t *ast.BuiltInType) string {
	switch t.Kind {
	case ast.BuiltInByte, ast.BuiltInShort, ast.BuiltInInt, ast.BuiltInLong:
		return "int"
	case ast.BuiltInFloat, ast.BuiltInDouble:
		return "float"
	case ast.BuiltInBool:
		return "bool"
	case ast.BuiltInString:
		return "string"
	case ast.BuiltInArray:
		return "array"
	case ast.BuiltInStrict:
		if t.Strict == ast.StrictF32 || t.Strict == ast.StrictF64 {
			return "float"
		}
		return "int"
	}
	return "mixed"
}

func visibilityName(visibility ast.Visibility) string {
	switch visibility {
	case ast.Public:
		return "public"
	case ast.Protected:
		return "protected"
	}
	return "private"
}

// snakeCase lowers a camelCase name to snake_case.
func snakeCase(name string) string {
	out := make([]rune, 0, len(name))
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
