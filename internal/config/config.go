package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Version constants. All channels currently track the same release.
const (
	CurrentVersion = "0.0.1-alpha.rc.1"
	NightlyVersion = "0.0.1-alpha.rc.1"
	BetaVersion    = "0.0.1-alpha.rc.1"
)

// CompilerOptions is the flag bag threaded through the front end and
// the transpilers.
type CompilerOptions struct {
	// Version of the compiler to compile with. Defaults to the most
	// recent version.
	Version string `toml:"version"`
	// SemanticChecks runs fast pre-parse checks: unclosed strings,
	// identifier placement, names starting with numbers.
	SemanticChecks bool `toml:"semantic_checks"`
	// Optimize runs after parsing and before code generation.
	Optimize bool `toml:"optimize"`
	// DumpAST writes the finished tree to a surn-ast.bin file in the
	// working directory.
	DumpAST bool `toml:"dump_ast"`
	// PostSemanticChecks runs post-parse checks: unused variables,
	// unused functions, runtime error prevention.
	PostSemanticChecks bool `toml:"post_semantic_checks"`
	// ASTOnly stops the pipeline once the tree is complete.
	ASTOnly bool `toml:"ast_only"`
	// DetectBleedingDeclarations reports declarations that escape
	// their scope.
	DetectBleedingDeclarations bool `toml:"detect_bleeding_declarations"`
	// Precedence selects the operator attachment policy, "legacy" or
	// "climbing". Empty means legacy.
	Precedence string `toml:"precedence"`
}

// Default returns the options used for regular builds.
func Default() CompilerOptions {
	return CompilerOptions{
		Version:            NightlyVersion,
		SemanticChecks:     true,
		Optimize:           true,
		DumpAST:            false,
		PostSemanticChecks: true,
	}
}

// Dev returns the options used while working on the compiler itself:
// the tree is dumped and post-parse checks are skipped.
func Dev() CompilerOptions {
	return CompilerOptions{
		Version:            CurrentVersion,
		SemanticChecks:     true,
		Optimize:           true,
		DumpAST:            true,
		PostSemanticChecks: false,
	}
}

type projectFile struct {
	Compiler CompilerOptions `toml:"compiler"`
}

// Load reads a surn.toml project file and overlays its [compiler]
// table on the defaults. A missing file yields the defaults.
func Load(path string, fs afero.Fs) (CompilerOptions, error) {
	options := Default()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return options, err
	}
	if !exists {
		return options, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return options, err
	}
	file := projectFile{Compiler: options}
	if err := toml.Unmarshal(data, &file); err != nil {
		return options, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Compiler, nil
}
