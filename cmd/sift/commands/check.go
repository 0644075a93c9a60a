package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sift/query"
)

var checkFile string

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check [QUERY]",
	Short: "Validate query syntax without compiling",
	Long: `Parse a query and report the first syntax error with its position,
or confirm the query is well-formed. Nothing is normalized or summarized.

Examples:
  sift check 'a AND (b OR c'
  sift check --file watchlist.q`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read the query from a file (- for stdin)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, _, err := loadOptions()
	if err != nil {
		return err
	}

	input, err := readInput(args, checkFile)
	if err != nil {
		return err
	}

	root, err := query.ParseWithOptions(input, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s query is well-formed (%d nodes, %d distinct terms)\n",
		pterm.Green("ok:"), root.Count(), len(root.DistinctTermValues()))
	return nil
}
