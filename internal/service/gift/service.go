package gift

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

type giftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Gift, error)
	Create(ctx context.Context, g *domain.Gift) (*domain.Gift, error)
	MarkViewed(ctx context.Context, id uuid.UUID) error
}

type notifier interface {
	SendGift(ctx context.Context, to string, n domain.GiftNotification) domain.DispatchResult
}

// Service implements gift card operations.
type Service struct {
	gifts         giftRepo
	notifier      notifier
	clock         clockwork.Clock
	publicBaseURL string
	log           *slog.Logger
}

// NewService creates a new gift service.
func NewService(log *slog.Logger, gifts giftRepo, notifier notifier, clock clockwork.Clock, publicBaseURL string) *Service {
	return &Service{
		gifts:         gifts,
		notifier:      notifier,
		clock:         clock,
		publicBaseURL: publicBaseURL,
		log:           log.With("service", "gift"),
	}
}
