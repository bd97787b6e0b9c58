package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/surn-lang/surn/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	// fsys is the filesystem every command reads and writes through.
	// Tests swap in a memory-backed one.
	fsys afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "surn",
	Short: "Compiler front end for the Surn language",
	Long: `surn drives the Surn compiler front end: it tokenizes and parses
source files and hands the finished tree to a transpiler back end.

Project settings are read from a surn.toml file in the working
directory when one exists.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: noColor})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if noColor {
			color.NoColor = true
		}
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "surn.toml", "project file with a [compiler] table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadOptions reads the project file named by --config. A missing file
// yields the default options, so running outside a project works.
func loadOptions() (config.CompilerOptions, error) {
	return config.Load(cfgFile, fsys)
}
