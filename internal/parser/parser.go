package parser

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/config"
	"github.com/surn-lang/surn/internal/diag"
	"github.com/surn-lang/surn/internal/lexer"
)

// Parser drives the front end for one or more sources: tokenize,
// analyze, generate. Each parsed source gets its own Context in the
// store; origins are registered in the source map for diagnostics.
type Parser struct {
	options  config.CompilerOptions
	contexts *ContextStore
	sources  *SourceMap
	fs       afero.Fs
	log      logrus.FieldLogger
}

func NewParser(options config.CompilerOptions, fs afero.Fs) *Parser {
	return &Parser{
		options:  options,
		contexts: NewContextStore(),
		sources:  NewSourceMap(),
		fs:       fs,
		log:      logrus.StandardLogger(),
	}
}

// Contexts exposes the store holding every parsed context.
func (p *Parser) Contexts() *ContextStore {
	return p.contexts
}

// Sources exposes the origin registry.
func (p *Parser) Sources() *SourceMap {
	return p.sources
}

// ParseScript parses in-memory source under a display name.
func (p *Parser) ParseScript(name, source string) (*ast.Body, error) {
	return p.parse(NewVirtualSource(name, source))
}

// ParseFile parses a script from the configured filesystem.
func (p *Parser) ParseFile(path string) (*ast.Body, error) {
	return p.parse(NewSourceOrigin(p.fs, path))
}

func (p *Parser) parse(origin SourceOrigin) (*ast.Body, error) {
	contents, err := origin.Contents()
	if err != nil {
		return nil, err
	}
	p.sources.Add(origin)

	generator := NewAstGenerator(origin, p.contexts.NextID())
	p.contexts.Add(generator.Context())
	if policy, ok := PolicyFromName(p.options.Precedence); ok {
		generator.SetPolicy(policy)
	}

	tokenizer := lexer.NewTokenizer(contents)
	tokens := tokenizer.Tokenize()
	for _, lexErr := range tokenizer.Errors {
		p.log.WithField("source", origin.DisplayName()).Warn(lexErr.Error())
	}

	if p.options.SemanticChecks {
		if err := lexer.Analyze(tokens); err != nil {
			report := diag.NewReport().
				SetKind(diag.KindError).
				SetMessage(err.Error()).
				SetName(origin.DisplayName()).
				SetSource(diag.NewSourceBuffer(contents))
			var analysis *lexer.AnalysisError
			if errors.As(err, &analysis) {
				report.MakeSnippet(analysis.Span, analysis.Message, "")
			}
			report.Print()
			return nil, err
		}
	}

	body, parseErr := generator.Begin(lexer.NewTokenStream(tokens))
	if parseErr != nil {
		diag.NewReport().
			SetKind(diag.KindError).
			SetMessage(parseErr.Message).
			SetName(origin.DisplayName()).
			SetSource(diag.NewSourceBuffer(contents)).
			MakeSnippet(parseErr.Span, parseErr.Label, parseErr.Hint).
			Print()
		return body, parseErr
	}
	return body, nil
}
