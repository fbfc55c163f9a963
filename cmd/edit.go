package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/restock"
)

const missingOrderQtyWarning = "order quantity missing; set it with `restock order-qty ID VALUE`"

var removeCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm"},
	Short:   "Remove an entry",
	Example: `  restock remove 3f2a`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var qtyCmd = &cobra.Command{
	Use:   "qty ID VALUE",
	Short: "Set the quantity of an entry (negative values become 0)",
	Example: `  restock qty 3f2a 4
  restock qty 3f2a 2,5`,
	Args: cobra.ExactArgs(2),
	RunE: runQty,
}

var unitCmd = &cobra.Command{
	Use:   "unit ID [UNIT]",
	Short: "Set or clear the unit of an entry",
	Example: `  restock unit 3f2a kg
  restock unit 3f2a`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUnit,
}

var orderCmd = &cobra.Command{
	Use:   "order ID",
	Short: "Toggle the order mark of an entry",
	Example: `  restock order 3f2a
  restock --ordered`,
	Args: cobra.ExactArgs(1),
	RunE: runOrder,
}

var orderQtyCmd = &cobra.Command{
	Use:     "order-qty ID VALUE",
	Short:   "Set the order quantity of a marked entry (minimum 0.1)",
	Example: `  restock order-qty 3f2a 6`,
	Args:    cobra.ExactArgs(2),
	RunE:    runOrderQty,
}

var clearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove every entry",
	Example: `  restock clear`,
	Args:    cobra.NoArgs,
	RunE:    runClear,
}

func init() {
	rootCmd.AddCommand(removeCmd, qtyCmd, unitCmd, orderCmd, orderQtyCmd, clearCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, e, err := loadEntry(cmd, args[0])
	if err != nil {
		return err
	}
	a.list.RemoveItem(e.ID)
	return saveAndReport(cmd, a, display.ChangeJSON{Action: display.ActionRemove, Entry: &e})
}

func runQty(cmd *cobra.Command, args []string) error {
	value, err := requireQuantityArg(args[1], "quantity")
	if err != nil {
		return err
	}
	a, e, err := loadEntry(cmd, args[0])
	if err != nil {
		return err
	}
	a.list.UpdateQuantity(e.ID, value)
	return saveAndReport(cmd, a, display.ChangeJSON{Action: display.ActionQuantity, Entry: current(a, e.ID)})
}

func runUnit(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) > 1 {
		raw = args[1]
	}
	unit, err := parseUnitArg(raw)
	if err != nil {
		return err
	}
	a, e, err := loadEntry(cmd, args[0])
	if err != nil {
		return err
	}
	if _, err := a.list.UpdateUnit(e.ID, unit); err != nil {
		return err
	}
	return saveAndReport(cmd, a, display.ChangeJSON{Action: display.ActionUnit, Entry: current(a, e.ID)})
}

func runOrder(cmd *cobra.Command, args []string) error {
	a, e, err := loadEntry(cmd, args[0])
	if err != nil {
		return err
	}
	a.list.ToggleOrderMarked(e.ID)

	change := display.ChangeJSON{Action: display.ActionOrder, Entry: current(a, e.ID)}
	if !change.Entry.HasValidOrder() {
		change.Warning = missingOrderQtyWarning
	}
	return saveAndReport(cmd, a, change)
}

func runOrderQty(cmd *cobra.Command, args []string) error {
	value, err := requireQuantityArg(args[1], "order quantity")
	if err != nil {
		return err
	}
	a, e, err := loadEntry(cmd, args[0])
	if err != nil {
		return err
	}
	if !a.list.UpdateOrderQuantity(e.ID, value) {
		return invalidArgsError(
			"entry is not marked to order",
			"restock order "+display.ShortID(e.ID),
		)
	}
	return saveAndReport(cmd, a, display.ChangeJSON{Action: display.ActionOrderQty, Entry: current(a, e.ID)})
}

func runClear(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	a.list.Clear()
	return saveAndReport(cmd, a, display.ChangeJSON{Action: display.ActionClear})
}

func loadEntry(cmd *cobra.Command, ref string) (*app, restock.Entry, error) {
	a, err := loadApp(cmd)
	if err != nil {
		return nil, restock.Entry{}, err
	}
	e, err := a.list.Resolve(ref)
	if err != nil {
		return nil, restock.Entry{}, err
	}
	return a, e, nil
}

func current(a *app, id string) *restock.Entry {
	e, _ := a.list.Get(id)
	return &e
}

func requireQuantityArg(raw, what string) (float64, error) {
	v, err := parseQuantityArg(raw, what)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, invalidArgsError(what+" must not be empty", "restock qty ID 2.5")
	}
	return *v, nil
}

func saveAndReport(cmd *cobra.Command, a *app, change display.ChangeJSON) error {
	if err := a.save(); err != nil {
		return err
	}
	change.Count = a.list.Len()
	if flagJSON {
		return display.PrintChangeJSON(cmd.OutOrStdout(), change)
	}
	display.PrintChange(cmd.OutOrStdout(), change, a.lang)
	return nil
}
