// Package cmd defines the CLI commands for arq.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	noColor    bool
	cfgFile    string
	projectDir string
	catalogRef string
)

// rootCmd is the base command for the arq CLI.
var rootCmd = &cobra.Command{
	Use:   "arq",
	Short: "Configure Arquillian containers in Maven projects",
	Long: `arq edits a Maven project's pom.xml and arquillian.xml to run Arquillian
tests against a container. It adds container profiles with the surefire
launch properties, installs container distributions before the tests run,
sets container configuration properties, and adds Arquillian Cube
extensions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/arq/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Maven project directory")
	rootCmd.PersistentFlags().StringVar(&catalogRef, "catalog", "", "container catalog name, path, or URL (default is the built-in catalog)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
