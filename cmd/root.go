package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
	"github.com/ingo-eichhorst/projectmap/pkg/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "projectmap",
	Short:   "Map a codebase's file tree, dependency graph, and architectural layers",
	Long: "projectmap scans a project directory and produces a structural map of it:\n" +
		"a typed file tree, a cross-file dependency graph (imports, includes,\n" +
		"stylesheets, database links), a partition into architectural layers, and\n" +
		"derived statistics. Output renders as a terminal summary, JSON, or a\n" +
		"self-contained HTML report.",
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging output")
	rootCmd.SilenceErrors = true
}

// Execute runs the root command and exits with code 1 on error.
// ExitError is handled specially: its Code is used as the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *types.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
