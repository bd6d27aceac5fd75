package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"sl10n/core/diag"
	"sl10n/core/document"
	"sl10n/feature/watch"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check translation files on every change",
	Long: `Runs the check once, then again whenever a translation file changes. Each run
uses a fresh loader, so files are healed and rewritten as they are edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.log.Sync()

		backend, err := document.ForFormat(e.cfg.Locale.Format, e.cfg.Locale.Indent)
		if err != nil {
			return err
		}

		// Bootstrap once so the directory exists before it is watched.
		l, err := e.newLoader()
		if err != nil {
			return err
		}
		var strictErr *diag.StrictError
		if err := l.Init(); err != nil && !errors.As(err, &strictErr) {
			return err
		}

		check := func() error {
			_, err := e.initLoader()
			return err
		}
		w := watch.New(e.cfg.Watch, l.Path(), backend.Ext(), check, e.log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
