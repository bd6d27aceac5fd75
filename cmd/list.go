package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.log.Sync()

		l, err := e.initLoader()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tLANG CODE\tNAME\tNATIVE\tDEFAULT")
		for _, lang := range l.Languages() {
			rec, err := l.Locale(lang)
			if err != nil {
				return err
			}
			name, native := describeLang(rec.LangCode())
			def := ""
			if lang == l.DefaultLang() {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", lang, rec.LangCode(), name, native, def)
		}
		return w.Flush()
	},
}

// describeLang returns the English and native names of a BCP 47 tag, or "-" for
// codes that are not valid tags.
func describeLang(code string) (name, native string) {
	tag, err := language.Parse(code)
	if err != nil {
		return "-", "-"
	}
	name = display.English.Tags().Name(tag)
	native = display.Self.Name(tag)
	if name == "" {
		name = "-"
	}
	if native == "" {
		native = "-"
	}
	return name, native
}

func init() {
	RootCmd.AddCommand(listCmd)
}
