package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/grouping"
)

var (
	flagAddQty       string
	flagAddUnit      string
	flagAddHighlight bool
)

var addCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add a product, merging with an entry of the same name and unit",
	Example: `  restock add tomate
  restock add pecho de pollo -q 3 -u kg
  restock add "aceite de oliva" -q 2 -u L --highlight`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVarP(&flagAddQty, "qty", "q", "", "Quantity (default 1)")
	f.StringVarP(&flagAddUnit, "unit", "u", "", "Unit: kg, g, L, ml, unidad, caja, paquete, bote, lata, docena")
	f.BoolVar(&flagAddHighlight, "highlight", false, "Show the list afterwards with this entry first")
}

func runAdd(cmd *cobra.Command, args []string) error {
	qty, err := parseQuantityArg(flagAddQty, "quantity")
	if err != nil {
		return err
	}
	unit, err := parseUnitArg(flagAddUnit)
	if err != nil {
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	res, err := a.list.AddProduct(cmd.Context(), strings.Join(args, " "), qty, unit)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagAddHighlight {
		groups := grouping.GroupAndOrderBy(a.list.Entries(), res.ID, a.lang, a.catalog.CategoryOrder())
		if flagJSON {
			return display.PrintGroupsJSON(out, groups, a.lang)
		}
		display.PrintAddResult(out, res, a.lang)
		display.PrintGroups(out, groups, a.lang)
		return nil
	}

	if flagJSON {
		return display.PrintAddResultJSON(out, res)
	}
	display.PrintAddResult(out, res, a.lang)
	return nil
}
