package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/parser"
	"github.com/surn-lang/surn/internal/transpiler"
)

var (
	buildTarget string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Parse a source file and transpile it",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildTarget, "target", "php", "transpiler back end to generate with")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output path (default: source path with the target's extension)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}

	registry := transpiler.NewTranspiler()
	registry.RegisterDefaults()
	language, ok := registry.Get(buildTarget)
	if !ok {
		return fmt.Errorf("unknown target %q", buildTarget)
	}

	path := args[0]
	front := parser.NewParser(options, fsys)
	body, err := front.ParseFile(path)
	if err != nil {
		return err
	}
	nodes := 0
	ast.WalkBody(body, func(ast.NodeKind) bool {
		nodes++
		return true
	})
	logrus.WithField("path", path).WithField("nodes", nodes).Debug("parsed")

	if options.DumpAST {
		logrus.Warn("dump_ast is set but tree dumping is not implemented")
	}
	if options.ASTOnly {
		fmt.Fprint(cmd.OutOrStdout(), ast.Print(body))
		return nil
	}

	output, err := language.Generator.GenerateString(body, options)
	if err != nil {
		return err
	}

	target := buildOutput
	if target == "" {
		target = strings.TrimSuffix(path, filepath.Ext(path)) + "." + language.Name
	}
	if err := afero.WriteFile(fsys, target, []byte(output), 0o644); err != nil {
		return err
	}
	logrus.WithField("path", target).Info("wrote output")
	return nil
}
