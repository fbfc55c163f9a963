package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/filter"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories on the list with entry counts",
	Example: `  restock categories
  restock categories --lang fr --json`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries := a.list.Entries()
	if len(entries) == 0 {
		return notFoundError(
			"the restocking list is empty",
			"restock add tomate -q 2 -u kg",
		)
	}

	cats := filter.Categories(entries)

	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), cats)
	}
	display.PrintCategories(cmd.OutOrStdout(), cats, a.lang)
	return nil
}
