package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/grouping"
	"github.com/tayloree/restock/internal/restock"
)

var flagPrintQuantities bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render a printable order sheet grouped by category",
	Example: `  restock print > sheet.txt
  restock print --quantities --lang fr`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().BoolVar(&flagPrintQuantities, "quantities", false, "Fill in quantity and unit boxes (same as list.quantity_mode)")
}

func runPrint(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries := a.list.Entries()
	if len(entries) == 0 {
		return notFoundError(
			"the restocking list is empty, nothing to print",
			"restock add tomate -q 2 -u kg",
		)
	}

	mode := restock.Mode{Quantity: a.cfg.List.QuantityMode || flagPrintQuantities}
	if missing := a.list.IncompleteEntries(mode); len(missing) > 0 {
		suggestions := make([]string, 0, len(missing)+1)
		for _, e := range missing {
			suggestions = append(suggestions, fmt.Sprintf("restock unit %s kg   # %s", display.ShortID(e.ID), e.Name(a.lang)))
		}
		suggestions = append(suggestions, "Print without --quantities to leave the boxes blank.")
		return invalidArgsError(
			fmt.Sprintf("%d entries have no measured unit; quantities cannot be printed", len(missing)),
			suggestions...,
		)
	}

	groups := grouping.GroupAndOrderBy(entries, "", a.lang, a.catalog.CategoryOrder())
	if flagJSON {
		return display.PrintGroupsJSON(cmd.OutOrStdout(), groups, a.lang)
	}

	display.PrintSheet(cmd.OutOrStdout(), groups, display.SheetOptions{
		Restaurant: display.Restaurant{
			Name:    a.cfg.Restaurant.Name,
			Address: a.cfg.Restaurant.Address,
			Phone:   a.cfg.Restaurant.Phone,
		},
		Language:   a.lang,
		Quantities: mode.Quantity,
		Now:        time.Now(),
	})
	return nil
}
