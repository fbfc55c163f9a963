package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
)

var flagSearchLimit int

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Fuzzy search the product dictionary",
	Example: `  restock search pol
  restock search "aceite oliva" -n 3 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&flagSearchLimit, "limit", "n", 10, "Maximum number of matches")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagSearchLimit < 1 {
		return invalidArgsError(
			"--limit must be at least 1",
			"restock search pollo -n 5",
		)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	suggestions := a.catalog.Suggest(query, flagSearchLimit)
	if len(suggestions) == 0 {
		return notFoundError(
			fmt.Sprintf("no dictionary matches for %q", query),
			"Try a shorter or Spanish spelling.",
			"`restock add NAME` still files unknown products under Otros.",
		)
	}

	if flagJSON {
		return display.PrintSuggestionsJSON(cmd.OutOrStdout(), suggestions)
	}
	display.PrintSuggestions(cmd.OutOrStdout(), query, suggestions, a.lang)
	return nil
}
