package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showKey  string
	showJSON bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [lang]",
	Short: "Print the strings of one language",
	Long: `Prints the loaded strings of a language (the default language when omitted).
Unknown languages fall back to the default one, exactly like a lookup in code.`,
	Args: cobra.MaximumNArgs(1),
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

		var lang string
		if len(args) == 1 {
			lang = args[0]
		}
		rec, err := l.Locale(lang)
		if err != nil {
			return err
		}

		if showKey != "" {
			fmt.Println(rec.Get(showKey))
			return nil
		}
		if showJSON {
			return l.Backend().Dump(rec.ToDocument(), os.Stdout)
		}

		fmt.Printf("# %s\n", rec.LangCode())
		for _, field := range rec.Schema().Fields() {
			v, _ := rec.Field(field)
			fmt.Printf("%s = %q\n", field, v)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showKey, "key", "", "Print only this key")
	showCmd.Flags().BoolVar(&showJSON, "raw", false, "Print the record in the configured file format")
}
