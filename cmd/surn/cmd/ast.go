package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
	"github.com/surn-lang/surn/internal/parser"
)

var astJSON bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a source file and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAst,
}

func init() {
	astCmd.Flags().BoolVar(&astJSON, "json", false, "print the tree as JSON")
	rootCmd.AddCommand(astCmd)
}

// jsonNode flattens one parsed node for machine output: the concrete
// kind name, the covered span and the payload itself.
type jsonNode struct {
	Kind string       `json:"kind"`
	Span lexer.Range  `json:"span"`
	Node ast.NodeKind `json:"node"`
}

func runAst(cmd *cobra.Command, args []string) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}

	front := parser.NewParser(options, fsys)
	body, err := front.ParseFile(args[0])
	if err != nil {
		return err
	}

	if !astJSON {
		fmt.Fprint(cmd.OutOrStdout(), ast.Print(body))
		return nil
	}

	nodes := make([]jsonNode, 0, body.Len())
	for _, node := range body.Program() {
		kind := strings.TrimPrefix(fmt.Sprintf("%T", node.Inner()), "*ast.")
		nodes = append(nodes, jsonNode{Kind: kind, Span: node.Span(), Node: node.Inner()})
	}
	rendered, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	return nil
}
