package transpiler

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/config"
	"github.com/surn-lang/surn/internal/lexer"
	"github.com/surn-lang/surn/internal/parser"
)

func renderPhp(t *testing.T, source string, format FormatOptions) string {
	t.Helper()
	front := parser.NewParser(config.Default(), afero.NewMemMapFs())
	body, err := front.ParseScript("test.surn", source)
	require.NoError(t, err, "expected %q to parse", source)

	output, err := NewPhpGenerator(format).GenerateString(body, config.Default())
	require.NoError(t, err)
	return output
}

func TestPhpDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"var", "var x = 5;", "$x = 5;\n"},
		{"uninitialized var", "var x;", "$x;\n"},
		{"const", "const max = 100;", "static max = 100;\n"},
		{"operation", "var y = 1 + 2;", "$y = 1 + 2;\n"},
		{"array", "var a = [1, 2];", "$a = [1, 2];\n"},
		{"object", "var o = {a: 1};", `$o = ["a" => 1];` + "\n"},
		{"new", "var n = new Foo(1);", "$n = new Foo(1);\n"},
		{"member", "var m = obj.prop;", "$m = $obj->prop;\n"},
		{"member chain", "var c = a.b.c;", "$c = $a->b->c;\n"},
		{"static member", "var s = Counter::instance;", "$s = Counter::instance;\n"},
		{"call statement", "print(1, 2)", "print(1, 2);\n"},
		{"namespace", `namespace app\http;`, `namespace app\http;` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderPhp(t, tt.source, DefaultFormat()))
		})
	}
}

func TestPhpFunctionBraceStyles(t *testing.T) {
	source := "function add(a: int, b: int): int { return a + b; }"

	t.Run("kandr", func(t *testing.T) {
		want := "function add(int $a, int $b): int {\n" +
			"    return a + b;\n" +
			"}\n"
		assert.Equal(t, want, renderPhp(t, source, DefaultFormat()))
	})

	t.Run("allman", func(t *testing.T) {
		want := "function add(int $a, int $b): int\n" +
			"{\n" +
			"    return a + b;\n" +
			"}\n"
		assert.Equal(t, want, renderPhp(t, source, PSR4()))
	})
}

func TestPhpClass(t *testing.T) {
	source := `class Router extends Handler {
	prefix: int = 0;
	pub static instances: int = 0;
	function route(path: string): bool { return true; }
}`
	want := "class Router extends Handler {\n" +
		"    private int $prefix = 0;\n" +
		"    public function route(string $path): bool {\n" +
		"        return true;\n" +
		"    }\n" +
		"    public static int $instances = 0;\n" +
		"}\n"
	assert.Equal(t, want, renderPhp(t, source, DefaultFormat()))
}

func TestPhpNamespaceBody(t *testing.T) {
	source := "namespace app { var x = 1; };"
	want := "namespace app {\n" +
		"    $x = 1;\n" +
		"}\n"
	assert.Equal(t, want, renderPhp(t, source, DefaultFormat()))
}

func TestPhpSnakeCaseVars(t *testing.T) {
	assert.Equal(t, "$my_var = 1;\n", renderPhp(t, "var myVar = 1;", Rust()))
}

func TestPhpUnionReturnType(t *testing.T) {
	source := "function pick(): int | string { return 1; }"
	want := "function pick(): int|string {\n" +
		"    return 1;\n" +
		"}\n"
	assert.Equal(t, want, renderPhp(t, source, DefaultFormat()))
}

func TestPhpUnsupportedNodesRenderNothing(t *testing.T) {
	body := ast.NewBody()
	body.PushStatement(&ast.Import{Path: ast.NewPath("foo", nil)}, lexer.Range{})

	output, err := NewPhpGenerator(DefaultFormat()).GenerateString(body, config.Default())
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestPhpGeneratePathNotImplemented(t *testing.T) {
	err := NewPhpGenerator(DefaultFormat()).Generate("scripts/main.surn", config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")
}
