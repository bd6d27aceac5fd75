package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var createOverride bool

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <lang>...",
	Short: "Create translation files from the default language",
	Long: `Creates one translation file per language. New files start as a copy of the
reconciled default language file, or of the schema sample when there is none.
Existing files are kept unless --override is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.log.Sync()

		l, err := e.newLoader()
		if err != nil {
			return err
		}

		for _, lang := range args {
			if _, err := language.Parse(lang); err != nil {
				e.log.Warn("Not a BCP 47 language tag", zap.String("lang", lang), zap.Error(err))
			}
			if err := l.CreateLangFile(lang, createOverride); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(createCmd)
	createCmd.Flags().BoolVar(&createOverride, "override", false, "Overwrite existing files")
}
