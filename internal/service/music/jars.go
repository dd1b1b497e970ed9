package music

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// ListJarTypes returns every jar type. The slice is empty, not nil, when
// there are none.
func (s *Service) ListJarTypes(ctx context.Context) ([]domain.JarType, error) {
	jars, err := s.music.ListJarTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jar types: %w", err)
	}
	if jars == nil {
		jars = []domain.JarType{}
	}
	return jars, nil
}

// AddSong validates and stores a song. A jar type that does not exist is a
// validation error on jar_type.
func (s *Service) AddSong(ctx context.Context, input AddSongInput) (*domain.Song, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.music.AddSong(ctx, &domain.Song{
		JarType:    *input.JarType,
		SongName:   *input.SongName,
		ArtistName: *input.ArtistName,
		YouTubeURL: *input.YouTubeURL,
		AddedBy:    *input.AddedBy,
		CreatedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("jar_type", "unknown jar type")
		}
		return nil, fmt.Errorf("add song: %w", err)
	}

	s.log.InfoContext(ctx, "song added",
		slog.String("music_id", created.ID.String()),
		slog.String("jar_type", created.JarType),
	)

	return created, nil
}

// RandomSong picks one song from any jar. Returns domain.ErrNotFound when
// every jar is empty.
func (s *Service) RandomSong(ctx context.Context) (*domain.Song, error) {
	song, err := s.music.RandomSong(ctx)
	if err != nil {
		return nil, fmt.Errorf("random song: %w", err)
	}
	return song, nil
}

// RandomSongInJar picks one song from jarType. Returns domain.ErrNotFound
// when that jar is empty or unknown.
func (s *Service) RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error) {
	song, err := s.music.RandomSongInJar(ctx, jarType)
	if err != nil {
		return nil, fmt.Errorf("random song in %q: %w", jarType, err)
	}
	return song, nil
}

// Play counts one play of a song and returns the new total.
func (s *Service) Play(ctx context.Context, id uuid.UUID) (int, error) {
	count, err := s.music.IncrementPlayCount(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("play song: %w", err)
	}
	return count, nil
}
