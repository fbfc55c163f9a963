package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/share"
)

var (
	flagNoShorten bool
	flagReplace   bool
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode the list as a share token and link",
	Example: `  restock share
  restock share --no-shorten --json`,
	Args: cobra.NoArgs,
	RunE: runShare,
}

var importCmd = &cobra.Command{
	Use:   "import TOKEN|URL",
	Short: "Add the entries of a shared list",
	Example: `  restock import 'https://restock.local/?list=VG9tYXRlfFRvbWF0ZXwyfGtn'
  restock import VG9tYXRlfFRvbWF0ZXwyfGtn --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(shareCmd, importCmd)

	shareCmd.Flags().BoolVar(&flagNoShorten, "no-shorten", false, "Skip the URL shortener")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "Replace the list instead of merging into it")
}

func runShare(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries := a.list.Entries()
	if len(entries) == 0 {
		return notFoundError(
			"the restocking list is empty, nothing to share",
			"restock add tomate -q 2 -u kg",
		)
	}

	token := share.Encode(entries)
	longURL, err := share.BuildURL(a.cfg.Share.BaseURL, token)
	if err != nil {
		return invalidArgsError(err.Error(), "Set share.base_url to an absolute URL.")
	}

	out := display.ShareJSON{Token: token, URL: longURL, Entries: len(entries)}
	if a.cfg.Share.Shorten && !flagNoShorten {
		tiny := share.NewTinyURL(a.cfg.Share.ShortenerURL, a.cfg.Share.Timeout)
		defer tiny.Close()
		if short := share.ShortenOrFallback(cmd.Context(), tiny, longURL, a.logger); short != longURL {
			out.ShortURL = short
		}
	}

	if flagJSON {
		return display.PrintShareJSON(cmd.OutOrStdout(), out)
	}
	display.PrintShare(cmd.OutOrStdout(), out)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	token, err := share.TokenFromInput(args[0])
	if err != nil {
		return err
	}
	decoded, err := share.NewCodec(a.classifier, a.logger).Decode(cmd.Context(), token)
	if err != nil {
		return err
	}

	result := display.ImportJSON{Replaced: flagReplace}
	if flagReplace {
		a.list.Load(decoded)
		result.Added = len(decoded)
	} else {
		result.Added, result.Merged = a.list.Merge(decoded)
	}
	if err := a.save(); err != nil {
		return err
	}
	result.Count = a.list.Len()

	if flagJSON {
		return display.PrintImportJSON(cmd.OutOrStdout(), result)
	}
	display.PrintImport(cmd.OutOrStdout(), result)
	return nil
}
