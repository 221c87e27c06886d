package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgalbally/scalargrad/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "scalargrad",
	Short: "scalargrad trains tiny scalar-autodiff networks on toy datasets",
	Long: `scalargrad is a playground CLI around a scalar reverse-mode autodiff
engine: train small MLPs with a max-margin loss on built-in 2-D datasets
and export any computation graph as Graphviz DOT or Mermaid.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newLogger builds the per-command logger honoring the persistent
// --debug flag. Logs go to stderr; stdout stays clean for exports.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
