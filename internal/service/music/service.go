package music

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

type musicRepo interface {
	ListJarTypes(ctx context.Context) ([]domain.JarType, error)
	AddSong(ctx context.Context, s *domain.Song) (*domain.Song, error)
	RandomSong(ctx context.Context) (*domain.Song, error)
	RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error)
	IncrementPlayCount(ctx context.Context, id uuid.UUID) (int, error)
}

// Service implements the shared music jars.
type Service struct {
	music musicRepo
	clock clockwork.Clock
	log   *slog.Logger
}

// NewService creates a new music service.
func NewService(log *slog.Logger, music musicRepo, clock clockwork.Clock) *Service {
	return &Service{
		music: music,
		clock: clock,
		log:   log.With("service", "music"),
	}
}
