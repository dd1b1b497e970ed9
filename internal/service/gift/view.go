package gift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// Get returns a gift by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Gift, error) {
	g, err := s.gifts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get gift: %w", err)
	}
	return g, nil
}

// MarkViewed records that the recipient opened the gift. Repeated calls are
// harmless.
func (s *Service) MarkViewed(ctx context.Context, id uuid.UUID) error {
	if err := s.gifts.MarkViewed(ctx, id); err != nil {
		return fmt.Errorf("mark gift viewed: %w", err)
	}

	s.log.InfoContext(ctx, "gift viewed", slog.String("gift_id", id.String()))
	return nil
}
