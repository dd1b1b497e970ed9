// Package cli wires the giftcapsule commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gulzeynep/GiftCapsule-web/internal/app"
	"github.com/gulzeynep/GiftCapsule-web/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "giftcapsule",
		Short:   "GiftCapsule API server",
		Long:    "Gifts, time-locked capsules and music jars over a JSON API backed by PostgreSQL.",
		Version: app.BuildVersion(),
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "",
		"path to YAML config (defaults to CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))

	return cmd
}

// load reads the configuration and builds the logger for a command run.
func (o *RootOptions) load() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFrom(o.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, app.NewLogger(cfg.Log), nil
}
