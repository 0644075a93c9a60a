package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sift/query"
)

var (
	astFile string
	astRaw  bool
)

// AstCmd represents the ast command
var AstCmd = &cobra.Command{
	Use:   "ast [QUERY]",
	Short: "Print a query's normalized (or raw) tree",
	Long: `Print the query tree in compact prefix form. By default the tree is
normalized first; --raw shows the parser output with its binary
left-leaning operator chains intact.

Examples:
  sift ast 'a AND (b OR c)'
  sift ast --raw 'a AND b AND c'`,
	Args: cobra.ArbitraryArgs,
	RunE: runAst,
}

func init() {
	AstCmd.Flags().StringVarP(&astFile, "file", "f", "", "Read the query from a file (- for stdin)")
	AstCmd.Flags().BoolVar(&astRaw, "raw", false, "Skip normalization and print the parse tree")
}

func runAst(cmd *cobra.Command, args []string) error {
	opts, _, err := loadOptions()
	if err != nil {
		return err
	}

	input, err := readInput(args, astFile)
	if err != nil {
		return err
	}

	if astRaw {
		root, err := query.ParseWithOptions(input, opts)
		if err != nil {
			return err
		}
		fmt.Println(root.String())
		return nil
	}

	result, err := query.CompileWithOptions(input, opts)
	if err != nil {
		return err
	}
	if !result.Converged {
		fmt.Fprintln(os.Stderr, pterm.Yellow(
			"warning: normalization hit the pass ceiling; tree is best-effort"))
	}
	fmt.Println(result.AST.String())
	return nil
}
