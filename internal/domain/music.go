package domain

import (
	"time"

	"github.com/google/uuid"
)

// JarType is a category of shared music jar ("happy", "sad", ...).
// Rows are seeded by migrations; the API only reads them.
type JarType struct {
	ID          string
	Name        string
	Description *string
	Emoji       *string
	CreatedAt   time.Time
}

// Song is a single entry dropped into a music jar.
type Song struct {
	ID         uuid.UUID
	JarType    string
	SongName   string
	ArtistName string
	YouTubeURL string
	AddedBy    string
	PlayCount  int
	CreatedAt  time.Time
}
