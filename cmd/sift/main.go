package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/sift/cmd/sift/commands"
	"github.com/teranos/sift/logger"
	"github.com/teranos/sift/query/parser"
)

var (
	jsonLogs bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "sift - boolean query compiler",
	Long: `sift compiles boolean classification queries into a normalized tree
and a semantic summary of their terms.

Queries combine bare words, "quoted phrases", and {exact literals} with
AND, OR, NOT, and NEAR/<distance> operators. Annotation blocks wrapped
in <<< and >>> are stripped before parsing.

Available commands:
  compile - Compile a query and print its term summary
  check   - Validate query syntax without compiling
  ast     - Print a query's normalized (or raw) tree

Examples:
  sift compile 'ale AND (hops OR malt)'
  sift compile --file queries/watchlist.q --watch
  sift check 'a AND (b OR c'
  sift ast --raw 'a AND b AND c'`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		if err := logger.Initialize(jsonLogs, verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.CompileCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.AstCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			fmt.Fprintln(os.Stderr, serr.FormatTerminal())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
