package capsule

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SweepResult summarizes one check-and-send pass.
type SweepResult struct {
	Checked int
	Sent    int
}

// Sweep evaluates every capsule that is neither notified nor opened against
// one instant taken at the start of the pass, and counts the opening emails
// it recorded. Per-capsule failures are logged and
// skipped. A failed scan or a cancelled ctx fails the sweep.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	now := s.clock.Now()

	candidates, err := s.capsules.ListPending(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list pending capsules: %w", err)
	}

	result := SweepResult{Checked: len(candidates)}
	if len(candidates) == 0 {
		return result, nil
	}

	var sent atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.opts.SweepConcurrency)

	for i := range candidates {
		c := &candidates[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ev, err := s.evaluateAt(ctx, c, now)
			if err != nil {
				s.log.ErrorContext(ctx, "sweep: evaluate capsule",
					slog.String("capsule_id", c.ID.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			if ev.NotifiedThisCall {
				sent.Add(1)
			}
			return nil
		})
	}

	err = g.Wait()
	result.Sent = int(sent.Load())
	if err != nil {
		return result, fmt.Errorf("sweep interrupted: %w", err)
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("checked", result.Checked),
		slog.Int("sent", result.Sent),
	)

	return result, nil
}
