package capsule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// Evaluation is the outcome of evaluating one capsule against the clock.
type Evaluation struct {
	CanOpen          bool
	NotifiedThisCall bool
}

// CheckResult is what the check endpoint reports.
type CheckResult struct {
	CanOpen  bool
	OpenDate time.Time
	IsOpened bool
}

// Evaluate decides whether c can be opened now and, when the opening email
// is due, sends it and records notification_sent.
//
// Only the evaluation whose update flips notification_sent reports
// NotifiedThisCall. A failed send leaves the capsule untouched so a later
// read or sweep retries. On a recorded send c.NotificationSent is set to
// true. A store failure while recording is returned as an error.
func (s *Service) Evaluate(ctx context.Context, c *domain.Capsule) (Evaluation, error) {
	return s.evaluateAt(ctx, c, s.clock.Now())
}

// evaluateAt is Evaluate against a fixed instant. A sweep passes the same
// now to every candidate.
func (s *Service) evaluateAt(ctx context.Context, c *domain.Capsule, now time.Time) (Evaluation, error) {
	ev := Evaluation{CanOpen: c.CanOpenAt(now)}

	if !c.NeedsOpeningNotification(now) {
		return ev, nil
	}

	res := s.notifier.SendCapsuleOpened(ctx, c.CreatorEmail, domain.CapsuleOpenedNotification{
		Title:    c.Title,
		ViewLink: s.viewLink(c.ID),
	})
	if !res.Sent() {
		s.log.WarnContext(ctx, "opening notification not sent",
			slog.String("capsule_id", c.ID.String()),
		)
		return ev, nil
	}

	won, err := s.capsules.MarkNotificationSent(ctx, c.ID)
	if err != nil {
		return ev, fmt.Errorf("record notification for capsule %s: %w", c.ID, err)
	}

	c.NotificationSent = true
	ev.NotifiedThisCall = won

	if won {
		s.log.InfoContext(ctx, "opening notification sent",
			slog.String("capsule_id", c.ID.String()),
		)
	}

	return ev, nil
}

// Get returns a capsule, sending its opening email first if it is due. After
// a notification the capsule is re-read so the result reflects the stored
// flags.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Capsule, error) {
	c, err := s.capsules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get capsule: %w", err)
	}

	ev, err := s.Evaluate(ctx, c)
	if err != nil {
		return nil, err
	}

	if ev.NotifiedThisCall {
		fresh, err := s.capsules.GetByID(ctx, id)
		if err != nil {
			s.log.WarnContext(ctx, "refresh after notification failed",
				slog.String("capsule_id", id.String()),
				slog.String("error", err.Error()),
			)
			return c, nil
		}
		return fresh, nil
	}

	return c, nil
}

// Check reports whether a capsule can be opened, sending its opening email
// first if it is due.
func (s *Service) Check(ctx context.Context, id uuid.UUID) (*CheckResult, error) {
	c, err := s.capsules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check capsule: %w", err)
	}

	ev, err := s.Evaluate(ctx, c)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		CanOpen:  ev.CanOpen,
		OpenDate: c.OpenDate,
		IsOpened: c.IsOpened,
	}, nil
}

// Open marks a capsule opened. It returns domain.ErrNotFound for unknown ids
// and domain.ErrNotYetOpenable before the open date. notification_sent is
// left as is.
func (s *Service) Open(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.capsules.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !c.CanOpenAt(s.clock.Now()) {
			return fmt.Errorf("capsule %s opens at %s: %w",
				id, c.OpenDate.Format(time.RFC3339), domain.ErrNotYetOpenable)
		}

		return s.capsules.MarkOpened(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("open capsule: %w", err)
	}

	s.log.InfoContext(ctx, "capsule opened", slog.String("capsule_id", id.String()))
	return nil
}
