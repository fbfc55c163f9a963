package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/display"
)

var classifyCmd = &cobra.Command{
	Use:   "classify NAME...",
	Short: "Show how a product name would be filed, without adding it",
	Example: `  restock classify tomates
  restock classify "salsa secreta" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	e, err := a.classifier.Classify(cmd.Context(), input, 1, catalog.UnitNone)
	if err != nil {
		return err
	}

	result := display.ClassificationJSON{
		Input:     strings.TrimSpace(input),
		Match:     catalog.MatchNone.String(),
		Entry:     e,
		Secondary: e.NameFR,
	}
	if m, ok := a.catalog.Lookup(input); ok {
		result.Match = m.Kind.String()
		result.Score = m.Score
	}

	if flagJSON {
		return printJSON(cmd, result)
	}
	display.PrintClassification(cmd.OutOrStdout(), result, a.lang)
	return nil
}
