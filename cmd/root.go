package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/grouping"
)

var (
	flagConfig    string
	flagListFile  string
	flagLang      string
	flagLogLevel  string
	flagLogFormat string
	flagJSON      bool

	flagSearch   string
	flagCategory string
	flagOrdered  bool
	flagUnknown  bool
	flagSort     string
	flagLimit    int
)

var rootCmd = &cobra.Command{
	Use:   "restock",
	Short: "Keep a kitchen restocking list in Spanish and French",
	Long: "Restocking list for chefs. Products typed in Spanish are matched against a\n" +
		"bilingual dictionary, filed under a kitchen category and merged with what is\n" +
		"already on the list. Running without a subcommand shows the grouped list.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -lang fr, lang=fr, --langg fr).",
	Example: `  restock add tomate -q 2 -u kg
  restock
  restock --lang fr --category verduras
  restock order 3f2a
  restock share --no-shorten
  restock print --quantities > sheet.txt`,
	RunE: runList,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $HOME/.config/restock/config.yaml)")
	pf.StringVar(&flagListFile, "list-file", "", "Path of the stored list (overrides list.file)")
	pf.StringVar(&flagLang, "lang", "", "Display language: es or fr (overrides list.language)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: console or json")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")

	registerListFilterFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

// resetCLIState restores every flag to its default so runCLI can be called
// repeatedly in one process.
func resetCLIState() {
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func registerListFilterFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagSearch, "search", "s", "", "Show entries whose Spanish or French name contains text")
	f.StringVarP(&flagCategory, "category", "c", "", "Filter by category (e.g., verduras, poisson, meat)")
	f.BoolVar(&flagOrdered, "ordered", false, "Show only entries marked to order")
	f.BoolVar(&flagUnknown, "unknown", false, "Show only entries not found in the dictionary")
	f.StringVar(&flagSort, "sort", "", "Flat list sorted by name, quantity, or category")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of entries (0 = all)")
}

func listFilterOptions() filter.Options {
	return filter.Options{
		Category: flagCategory,
		Query:    flagSearch,
		Ordered:  flagOrdered,
		Unknown:  flagUnknown,
		Limit:    flagLimit,
	}
}

func validateSortMode() error {
	raw := strings.ToLower(strings.TrimSpace(flagSort))
	switch raw {
	case "", "insertion", "added", "list":
		return nil
	}
	if filter.NormalizeSortMode(raw) != filter.SortInsertion {
		return nil
	}
	return invalidArgsError(
		"invalid value for --sort (use name, quantity, or category)",
		"restock --sort name",
		"restock --sort quantity",
	)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := validateSortMode(); err != nil {
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries := a.list.Entries()
	if len(entries) == 0 {
		if flagJSON {
			return display.PrintGroupsJSON(cmd.OutOrStdout(), nil, a.lang)
		}
		return printQuickStart(cmd.OutOrStdout(), false)
	}

	entries = filter.Apply(entries, listFilterOptions())
	if len(entries) == 0 {
		return notFoundError(
			"no entries match your filters",
			"Relax filters like --category/--search/--ordered.",
		)
	}

	if mode := filter.NormalizeSortMode(flagSort); mode != filter.SortInsertion {
		entries = filter.SortEntries(entries, mode, a.lang)
		if flagJSON {
			return display.PrintEntriesJSON(cmd.OutOrStdout(), entries)
		}
		display.PrintEntries(cmd.OutOrStdout(), entries, a.lang)
		return nil
	}

	groups := grouping.GroupAndOrderBy(entries, "", a.lang, a.catalog.CategoryOrder())
	if flagJSON {
		return display.PrintGroupsJSON(cmd.OutOrStdout(), groups, a.lang)
	}
	display.PrintGroups(cmd.OutOrStdout(), groups, a.lang)
	return nil
}
