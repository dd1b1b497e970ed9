package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCapsule inserts a pending capsule opening at openDate.
func SeedCapsule(t *testing.T, pool *pgxpool.Pool, openDate time.Time) domain.Capsule {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Capsule{
		ID:           uuid.New(),
		CreatorEmail: "creator-" + suffix + "@example.com",
		Title:        "Capsule " + suffix,
		Message:      "see you later",
		OpenDate:     openDate.UTC().Truncate(time.Microsecond),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO time_capsules (id, creator_email, title, message, open_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.CreatorEmail, c.Title, c.Message, c.OpenDate, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCapsule: %v", err)
	}

	return c
}

// SeedGift inserts an unviewed gift.
func SeedGift(t *testing.T, pool *pgxpool.Pool) domain.Gift {
	t.Helper()

	suffix := uniqueSuffix()
	g := domain.Gift{
		ID:             uuid.New(),
		SenderName:     "Sender " + suffix,
		RecipientName:  "Recipient " + suffix,
		RecipientEmail: "recipient-" + suffix + "@example.com",
		CardTemplate:   "birthday",
		Message:        "happy birthday",
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO gifts (id, sender_name, recipient_name, recipient_email, card_template, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID, g.SenderName, g.RecipientName, g.RecipientEmail, g.CardTemplate, g.Message, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGift: %v", err)
	}

	return g
}

// SeedJarType inserts a jar type with a unique id and returns it.
func SeedJarType(t *testing.T, pool *pgxpool.Pool) domain.JarType {
	t.Helper()

	suffix := uniqueSuffix()
	jt := domain.JarType{
		ID:        "jar-" + suffix,
		Name:      "Jar " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO jar_types (id, name, created_at) VALUES ($1, $2, $3)`,
		jt.ID, jt.Name, jt.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJarType: %v", err)
	}

	return jt
}

// SeedSong inserts a song into the given jar.
func SeedSong(t *testing.T, pool *pgxpool.Pool, jarType string) domain.Song {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.Song{
		ID:         uuid.New(),
		JarType:    jarType,
		SongName:   "Song " + suffix,
		ArtistName: "Artist " + suffix,
		YouTubeURL: "https://youtube.com/watch?v=" + suffix,
		AddedBy:    "tester",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO music_jars (id, jar_type, song_name, artist_name, youtube_url, added_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.JarType, s.SongName, s.ArtistName, s.YouTubeURL, s.AddedBy, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSong: %v", err)
	}

	return s
}
