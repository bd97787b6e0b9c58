package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	options := Default()

	assert.Equal(t, NightlyVersion, options.Version)
	assert.True(t, options.SemanticChecks)
	assert.True(t, options.Optimize)
	assert.False(t, options.DumpAST)
	assert.True(t, options.PostSemanticChecks)
	assert.Empty(t, options.Precedence)
}

func TestDevOptions(t *testing.T) {
	options := Dev()

	assert.Equal(t, CurrentVersion, options.Version)
	assert.True(t, options.DumpAST)
	assert.False(t, options.PostSemanticChecks)
}

func TestLoadMissingFile(t *testing.T) {
	options, err := Load("surn.toml", afero.NewMemMapFs())

	require.NoError(t, err)
	assert.Equal(t, Default(), options)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	project := "[compiler]\noptimize = false\nprecedence = \"climbing\"\n"
	require.NoError(t, afero.WriteFile(fs, "surn.toml", []byte(project), 0o644))

	options, err := Load("surn.toml", fs)

	require.NoError(t, err)
	assert.False(t, options.Optimize)
	assert.Equal(t, "climbing", options.Precedence)
	// keys the file does not set keep their defaults
	assert.True(t, options.SemanticChecks)
	assert.True(t, options.PostSemanticChecks)
}

func TestLoadMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "surn.toml", []byte("[compiler\n"), 0o644))

	_, err := Load("surn.toml", fs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse surn.toml")
}
