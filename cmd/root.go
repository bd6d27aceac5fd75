package cmd

import (
	"fmt"
	"os"

	"sl10n/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where sl10n.yaml and .env are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sl10n",
	Short: "Static localization loader",
	Long: `sl10n loads static translation files against a declared set of keys.
It heals missing keys, reports unexpected ones, keeps files in canonical order
and can export the loaded locales to S3/MinIO or MySQL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable timestamps for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding sl10n.yaml and .env")
}
