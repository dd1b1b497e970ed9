// Package music implements the music jar repository using PostgreSQL.
package music

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres"
	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

const (
	songTable   = "music_jars"
	songEntity  = "music_jar"
	jarTable    = "jar_types"
	jarEntity   = "jar_type"
	randomOrder = "random()"
)

var (
	songColumns = []string{
		"id", "jar_type", "song_name", "artist_name", "youtube_url",
		"added_by", "play_count", "created_at",
	}
	jarColumns = []string{"id", "name", "description", "emoji", "created_at"}
)

// Repo provides music jar persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new music repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Jar types
// ---------------------------------------------------------------------------

// ListJarTypes returns every jar type ordered by id. Returns an empty slice
// when none exist.
func (r *Repo) ListJarTypes(ctx context.Context) ([]domain.JarType, error) {
	query, args, err := postgres.Builder().
		Select(jarColumns...).
		From(jarTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %ss: %w", jarEntity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", jarEntity, err)
	}
	defer rows.Close()

	jars := make([]domain.JarType, 0)
	for rows.Next() {
		var j domain.JarType
		if err := rows.Scan(&j.ID, &j.Name, &j.Description, &j.Emoji, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", jarEntity, err)
		}
		j.CreatedAt = j.CreatedAt.UTC()
		jars = append(jars, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %ss: %w", jarEntity, err)
	}

	return jars, nil
}

// ---------------------------------------------------------------------------
// Songs
// ---------------------------------------------------------------------------

// AddSong inserts a song with play_count 0. An unknown jar type surfaces as
// domain.ErrNotFound through the foreign key.
func (r *Repo) AddSong(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	query, args, err := postgres.Builder().
		Insert(songTable).
		Columns("jar_type", "song_name", "artist_name", "youtube_url", "added_by", "play_count", "created_at").
		Values(s.JarType, s.SongName, s.ArtistName, s.YouTubeURL, s.AddedBy, 0, s.CreatedAt.UTC()).
		Suffix("RETURNING " + strings.Join(songColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", songEntity, err)
	}

	created, err := scanSong(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, songEntity, s.JarType)
	}

	return created, nil
}

// RandomSong returns one uniformly chosen song from any jar.
// Returns domain.ErrNotFound when there are no songs.
func (r *Repo) RandomSong(ctx context.Context) (*domain.Song, error) {
	return r.random(ctx, nil, "any")
}

// RandomSongInJar returns one uniformly chosen song from jarType.
// Returns domain.ErrNotFound when the jar is empty.
func (r *Repo) RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error) {
	return r.random(ctx, sq.Eq{"jar_type": jarType}, jarType)
}

func (r *Repo) random(ctx context.Context, where sq.Sqlizer, label string) (*domain.Song, error) {
	b := postgres.Builder().
		Select(songColumns...).
		From(songTable)
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.OrderBy(randomOrder).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build random %s: %w", songEntity, err)
	}

	s, err := scanSong(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, songEntity, label)
	}

	return s, nil
}

// IncrementPlayCount atomically adds one to play_count and returns the new
// value. Returns domain.ErrNotFound if the song does not exist.
func (r *Repo) IncrementPlayCount(ctx context.Context, id uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Update(songTable).
		Set("play_count", sq.Expr("play_count + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING play_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build increment play_count: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, songEntity, id)
	}

	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSong(row scanner) (*domain.Song, error) {
	var s domain.Song
	if err := row.Scan(
		&s.ID,
		&s.JarType,
		&s.SongName,
		&s.ArtistName,
		&s.YouTubeURL,
		&s.AddedBy,
		&s.PlayCount,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}
