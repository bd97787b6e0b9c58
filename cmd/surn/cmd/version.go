package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surn-lang/surn/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the compiler version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "surn %s\n", config.CurrentVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
