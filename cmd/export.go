package cmd

import (
	"fmt"
	"strings"

	"sl10n/core/database"
	"sl10n/core/storage"
	"sl10n/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportTargets []string
	exportMigrate bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Publish loaded locales to object storage and/or MySQL",
	Long: `Loads the translation directory and writes the result to every target:
"storage" uploads <prefix>/<lang>.json and a manifest to the configured bucket,
"database" upserts the locale_strings table. Every export carries a fresh ID.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.log.Sync()

		targets := e.cfg.Export.Targets
		if cmd.Flags().Changed("target") {
			targets = exportTargets
		}
		targets, err = normalizeTargets(targets)
		if err != nil {
			return err
		}

		l, err := e.initLoader()
		if err != nil {
			return err
		}

		var sinks []export.Sink
		for _, target := range targets {
			switch target {
			case "storage":
				client, err := storage.NewClient(e.cfg.Storage)
				if err != nil {
					return fmt.Errorf("failed to create storage client: %w", err)
				}
				sinks = append(sinks, export.NewStorageSink(client, e.cfg.Storage.Bucket, e.cfg.Export.Prefix, e.cfg.Export.Prune, e.log))
			case "database":
				db, err := database.Connect(e.cfg.Database)
				if err != nil {
					return fmt.Errorf("database connection required: %w", err)
				}
				sink := export.NewDatabaseSink(db, e.cfg.Export.BatchSize, e.log)
				if exportMigrate {
					if err := sink.Migrate(cmd.Context()); err != nil {
						return err
					}
				} else if err := sink.Verify(cmd.Context()); err != nil {
					return fmt.Errorf("%w (run with --migrate)", err)
				}
				sinks = append(sinks, sink)
			}
		}

		bundle, err := export.NewService(e.log, sinks...).Export(cmd.Context(), l)
		if err != nil {
			return err
		}
		e.log.Info("Export finished",
			zap.String("export_id", bundle.ID.String()),
			zap.Strings("targets", targets),
		)
		return nil
	},
}

// normalizeTargets lower-cases, dedupes and validates export targets.
func normalizeTargets(targets []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, raw := range targets {
		for _, t := range strings.Split(raw, ",") {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" || seen[t] {
				continue
			}
			if t != "storage" && t != "database" {
				return nil, fmt.Errorf("unknown export target %q", t)
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no export target configured")
	}
	return out, nil
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringSliceVar(&exportTargets, "target", nil, "Export targets: storage, database (overrides export.targets)")
	exportCmd.Flags().BoolVar(&exportMigrate, "migrate", false, "Create or update the locale_strings table first")
}
