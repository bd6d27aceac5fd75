package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sl10n/core/loader"
	"sl10n/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkStrict bool
	checkJSON   bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and reconcile every translation file",
	Long: `Loads the translation directory once: the default language file is generated if
missing, every file is healed and rewritten in canonical order, and all diagnostics
are reported. Exits non-zero on parse errors, or on any diagnostic with --strict.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.log.Sync()

		var extra []loader.Option
		if cmd.Flags().Changed("strict") {
			extra = append(extra, loader.WithStrict(checkStrict))
		}

		l, err := e.initLoader(extra...)
		if err != nil {
			return err
		}

		results := l.Results()
		if checkJSON {
			return printReport(results)
		}

		for _, r := range results {
			name := filepath.Base(r.Path)
			if r.Excluded {
				e.log.Info("Excluded", zap.String("file", name))
				continue
			}
			e.log.Info("Loaded",
				zap.String("file", name),
				zap.String("lang_code", r.Record.LangCode()),
				zap.Int("undefined", len(r.Undefined)),
				zap.Int("unexpected", len(r.Unexpected)),
				zap.Int("rewrites", r.Rewrites),
			)
		}
		e.log.Info("Check completed",
			zap.Strings("languages", l.Languages()),
			zap.Int("diagnostics", e.collector.Len()),
		)
		return nil
	},
}

type fileReport struct {
	*reconcile.Result
	LangCode string `json:"lang_code,omitempty"`
}

func printReport(results []*reconcile.Result) error {
	report := make([]fileReport, 0, len(results))
	for _, r := range results {
		fr := fileReport{Result: r}
		if r.Record != nil {
			fr.LangCode = r.Record.LangCode()
		}
		report = append(report, fr)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail on any diagnostic (overrides locale.strict)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print a JSON report of every file to stdout")
}
