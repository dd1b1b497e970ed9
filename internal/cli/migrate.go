package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres"
	"github.com/gulzeynep/GiftCapsule-web/internal/app"
)

// NewMigrateCommand creates the migrate command group.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "up",
		Short:         "Apply all pending migrations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := rootOpts.load()
			if err != nil {
				return err
			}

			n, err := app.Migrate(cmd.Context(), cfg.Database.DSN, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "down",
		Short:         "Roll back the most recent migration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rootOpts.load()
			if err != nil {
				return err
			}

			m, err := postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			res, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			if res == nil || res.Source == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d (%s)\n", res.Source.Version, res.Duration.Round(time.Millisecond))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "status",
		Short:         "Show applied and pending migrations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rootOpts.load()
			if err != nil {
				return err
			}

			m, err := postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), statuses)
			return nil
		},
	})

	return cmd
}

func printStatus(w io.Writer, statuses []*goose.MigrationStatus) {
	for _, s := range statuses {
		applied := "pending"
		if s.State == goose.StateApplied {
			applied = "applied " + s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%05d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
	}
}
