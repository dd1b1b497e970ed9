package gift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// CreateResult is a stored gift together with the link mailed to its recipient.
type CreateResult struct {
	Gift     *domain.Gift
	ViewLink string
}

// Create stores a gift and emails the recipient. The email is best-effort.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.gifts.Create(ctx, &domain.Gift{
		SenderName:     *input.SenderName,
		RecipientName:  *input.RecipientName,
		RecipientEmail: *input.RecipientEmail,
		CardTemplate:   *input.CardTemplate,
		Message:        *input.Message,
		CreatedAt:      s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create gift: %w", err)
	}

	link := domain.GiftViewLink(s.publicBaseURL, created.ID)

	res := s.notifier.SendGift(ctx, created.RecipientEmail, domain.GiftNotification{
		SenderName:    created.SenderName,
		RecipientName: created.RecipientName,
		ViewLink:      link,
	})

	s.log.InfoContext(ctx, "gift created",
		slog.String("gift_id", created.ID.String()),
		slog.String("card_template", created.CardTemplate),
		slog.String("email", res.String()),
	)

	return &CreateResult{Gift: created, ViewLink: link}, nil
}
