package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gulzeynep/GiftCapsule-web/internal/app"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Timeout time.Duration
}

// NewSweepCommand creates the sweep command. It runs the same pass as
// POST /api/capsules/check-and-send-emails and is meant for a cron job.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "sweep",
		Short:         "Send opening emails for every due capsule",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd, logger)
			defer cancel()
			if opts.Timeout > 0 {
				var timeoutCancel context.CancelFunc
				ctx, timeoutCancel = context.WithTimeout(ctx, opts.Timeout)
				defer timeoutCancel()
			}

			res, err := app.Sweep(ctx, cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d capsule(s), sent %d\n", res.Checked, res.Sent)
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Minute, "abort the pass after this long (0 disables)")

	return cmd
}
