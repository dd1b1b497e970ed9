package capsule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

type capsuleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Capsule, error)
	Create(ctx context.Context, c *domain.Capsule) (*domain.Capsule, error)
	MarkNotificationSent(ctx context.Context, id uuid.UUID) (bool, error)
	MarkOpened(ctx context.Context, id uuid.UUID) error
	ListPending(ctx context.Context) ([]domain.Capsule, error)
}

type notifier interface {
	SendCapsuleOpened(ctx context.Context, to string, n domain.CapsuleOpenedNotification) domain.DispatchResult
	SendCapsuleCreated(ctx context.Context, to string, n domain.CapsuleCreatedNotification) domain.DispatchResult
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options holds the service's tunables.
type Options struct {
	// PublicBaseURL prefixes the view links put into emails.
	PublicBaseURL string
	// SweepConcurrency bounds how many capsules a sweep evaluates at once.
	SweepConcurrency int
}

// Service runs the capsule lifecycle: creation, gated opening, and opening
// notifications from reads and sweeps.
type Service struct {
	capsules capsuleRepo
	notifier notifier
	tx       txManager
	clock    clockwork.Clock
	opts     Options
	log      *slog.Logger
}

// NewService creates a new capsule service.
func NewService(
	log *slog.Logger,
	capsules capsuleRepo,
	notifier notifier,
	tx txManager,
	clock clockwork.Clock,
	opts Options,
) *Service {
	if opts.SweepConcurrency < 1 {
		opts.SweepConcurrency = 1
	}
	return &Service{
		capsules: capsules,
		notifier: notifier,
		tx:       tx,
		clock:    clock,
		opts:     opts,
		log:      log.With("service", "capsule"),
	}
}

func (s *Service) viewLink(id uuid.UUID) string {
	return domain.CapsuleViewLink(s.opts.PublicBaseURL, id)
}
