package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/surn-lang/surn/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a source file and print the stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := afero.ReadFile(fsys, args[0])
	if err != nil {
		return err
	}

	tokenizer := lexer.NewTokenizer(string(data))
	for _, token := range tokenizer.Tokenize() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %4d..%-4d %q\n", token.Type, token.Span.Start, token.Span.End, token.Value())
	}
	for _, lexErr := range tokenizer.Errors {
		logrus.WithField("path", args[0]).Warn(lexErr.Error())
	}
	return nil
}
