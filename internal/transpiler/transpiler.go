// Package transpiler turns parsed programs into other languages. Each
// target registers as a Language holding a Generator; the PHP backend
// ships as the default target.
package transpiler

import (
	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/config"
)

// APIVersion pins the generator contract a Language was written
// against.
type APIVersion int

const (
	// V1 is the current generator API.
	V1 APIVersion = iota
)

// Language describes a registered transpilation target.
type Language struct {
	// Name is the registry key, e.g. "php".
	Name string
	// Description is the human-readable target name.
	Description string
	// Version of the target language the generator emits.
	Version string
	// Author of the generator.
	Author string
	// API the generator implements.
	API APIVersion
	// Generator produces the target source.
	Generator Generator
}

// Generator transforms a parsed program into target-language source.
type Generator interface {
	// GenerateString renders a parsed body to target source.
	GenerateString(body *ast.Body, options config.CompilerOptions) (string, error)
	// Generate renders the script or directory at path, writing the
	// output next to it.
	Generate(path string, options config.CompilerOptions) error
}

// Transpiler is the registry of available targets.
type Transpiler struct {
	registered map[string]Language
}

// NewTranspiler returns an empty registry.
func NewTranspiler() *Transpiler {
	return &Transpiler{registered: make(map[string]Language)}
}

// RegisterDefaults registers the targets that ship with the compiler.
func (t *Transpiler) RegisterDefaults() {
	t.Register("php", NewPhpLanguage())
}

// Register adds a target under key, replacing any previous entry.
func (t *Transpiler) Register(key string, language Language) {
	t.registered[key] = language
}

// Get returns the target registered under lang.
func (t *Transpiler) Get(lang string) (Language, bool) {
	language, ok := t.registered[lang]
	return language, ok
}
