package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surn-lang/surn/internal/config"
	"github.com/surn-lang/surn/internal/diag"
)

// seedFS installs a fresh in-memory filesystem for the command under
// test and seeds it with the given files.
func seedFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	previous := fsys
	fsys = afero.NewMemMapFs()
	t.Cleanup(func() { fsys = previous })

	for path, contents := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(contents), 0o644))
	}
	return fsys
}

// execute runs the root command with args, capturing its output and
// silencing the diagnostic stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	previousOut := diag.Output
	diag.Output = &bytes.Buffer{}
	t.Cleanup(func() { diag.Output = previousOut })

	// Flag values survive between runs, so restore the defaults before
	// parsing the new arguments.
	cfgFile = "surn.toml"
	verbose = false
	noColor = false
	buildTarget = "php"
	buildOutput = ""
	astJSON = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "surn "+config.CurrentVersion+"\n", out)
}

func TestTokensCommand(t *testing.T) {
	seedFS(t, map[string]string{"main.surn": "var x = 1;"})

	out, err := execute(t, "tokens", "main.surn")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "KEYWORD")
	assert.Contains(t, lines[0], `"var"`)
	assert.Contains(t, lines[6], "NUMBER")
	assert.Contains(t, lines[6], `"1"`)
}

func TestTokensMissingFile(t *testing.T) {
	seedFS(t, nil)

	_, err := execute(t, "tokens", "missing.surn")

	require.Error(t, err)
}

func TestAstCommand(t *testing.T) {
	t.Run("human readable", func(t *testing.T) {
		seedFS(t, map[string]string{"main.surn": "var x = 5;"})

		out, err := execute(t, "ast", "main.surn")

		require.NoError(t, err)
		assert.Contains(t, out, "Var x")
		assert.Contains(t, out, `Literal "5"`)
	})

	t.Run("json", func(t *testing.T) {
		seedFS(t, map[string]string{"main.surn": "var x = 5;"})

		out, err := execute(t, "ast", "main.surn", "--json")

		require.NoError(t, err)
		var nodes []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &nodes))
		require.Len(t, nodes, 1)
		assert.Equal(t, "Var", nodes[0]["kind"])
	})
}

func TestBuildCommand(t *testing.T) {
	fs := seedFS(t, map[string]string{"main.surn": "var x = 5;"})

	_, err := execute(t, "build", "main.surn")

	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "main.php")
	require.NoError(t, err)
	assert.Equal(t, "$x = 5;\n", string(data))
}

func TestBuildOutputFlag(t *testing.T) {
	fs := seedFS(t, map[string]string{"main.surn": "var x = 5;"})

	_, err := execute(t, "build", "main.surn", "-o", "gen.php")

	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "gen.php")
	require.NoError(t, err)
	assert.Equal(t, "$x = 5;\n", string(data))
}

func TestBuildUnknownTarget(t *testing.T) {
	seedFS(t, map[string]string{"main.surn": "var x = 5;"})

	_, err := execute(t, "build", "main.surn", "--target", "rust")

	require.Error(t, err)
	assert.EqualError(t, err, `unknown target "rust"`)
}

func TestBuildParseError(t *testing.T) {
	fs := seedFS(t, map[string]string{"main.surn": "var x = 1 var"})

	_, err := execute(t, "build", "main.surn")

	require.Error(t, err)
	assert.EqualError(t, err, "A semicolon is expected here.")
	exists, statErr := afero.Exists(fs, "main.php")
	require.NoError(t, statErr)
	assert.False(t, exists, "no output should be written for a failed parse")
}

func TestBuildAstOnly(t *testing.T) {
	fs := seedFS(t, map[string]string{
		"surn.toml": "[compiler]\nast_only = true\n",
		"main.surn": "var x = 5;",
	})

	out, err := execute(t, "build", "main.surn")

	require.NoError(t, err)
	assert.Contains(t, out, "Var x")
	exists, statErr := afero.Exists(fs, "main.php")
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestConfigSelectsPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		project string
		wantTop string
	}{
		{
			name:    "defaults to legacy",
			wantTop: `  Operation "*"`,
		},
		{
			name:    "climbing from project file",
			project: "[compiler]\nprecedence = \"climbing\"\n",
			wantTop: `  Operation "+"`,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{"main.surn": "var x = 1 * 2 + 3;"}
			if tt.project != "" {
				files["surn.toml"] = tt.project
			}
			seedFS(t, files)

			out, err := execute(t, "ast", "main.surn")

			require.NoError(t, err)
			assert.Contains(t, out, "\n"+tt.wantTop+"\n")
		})
	}
}
