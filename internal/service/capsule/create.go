package capsule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// Create validates and stores a new capsule, then emails the creator a
// confirmation. The confirmation is best-effort and never fails the call.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Capsule, error) {
	openDate, err := input.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.capsules.Create(ctx, &domain.Capsule{
		CreatorEmail: *input.CreatorEmail,
		Title:        *input.Title,
		Message:      *input.Message,
		MediaURL:     input.MediaURL,
		OpenDate:     openDate,
		CreatedAt:    s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create capsule: %w", err)
	}

	res := s.notifier.SendCapsuleCreated(ctx, created.CreatorEmail, domain.CapsuleCreatedNotification{
		Title:    created.Title,
		OpenDate: created.OpenDate,
		ViewLink: s.viewLink(created.ID),
	})

	s.log.InfoContext(ctx, "capsule created",
		slog.String("capsule_id", created.ID.String()),
		slog.Time("open_date", created.OpenDate),
		slog.String("confirmation", res.String()),
	)

	return created, nil
}
