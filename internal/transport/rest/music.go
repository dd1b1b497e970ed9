package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/music"
)

const (
	msgMusicNotFound = "Music not found"
	msgNoMusic       = "No music found"
	msgNoMusicInJar  = "No music found in this jar"
	msgMusicAdded    = "Müzik başarıyla eklendi!"
)

type musicService interface {
	ListJarTypes(ctx context.Context) ([]domain.JarType, error)
	AddSong(ctx context.Context, input music.AddSongInput) (*domain.Song, error)
	RandomSong(ctx context.Context) (*domain.Song, error)
	RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error)
	Play(ctx context.Context, id uuid.UUID) (int, error)
}

// MusicHandler serves the music jar endpoints.
type MusicHandler struct {
	svc musicService
	log *slog.Logger
}

// NewMusicHandler creates a MusicHandler.
func NewMusicHandler(svc musicService, logger *slog.Logger) *MusicHandler {
	return &MusicHandler{svc: svc, log: logger.With("handler", "music")}
}

type addSongRequest struct {
	JarType    *string `json:"jar_type"`
	SongName   *string `json:"song_name"`
	ArtistName *string `json:"artist_name"`
	YouTubeURL *string `json:"youtube_url"`
	AddedBy    *string `json:"added_by"`
}

type addSongResponse struct {
	Success bool   `json:"success"`
	MusicID string `json:"music_id"`
	Message string `json:"message"`
}

type jarTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Emoji       *string   `json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`
}

type songResponse struct {
	ID         string    `json:"id"`
	JarType    string    `json:"jar_type"`
	SongName   string    `json:"song_name"`
	ArtistName string    `json:"artist_name"`
	YouTubeURL string    `json:"youtube_url"`
	AddedBy    string    `json:"added_by"`
	PlayCount  int       `json:"play_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type playResponse struct {
	Success   bool `json:"success"`
	PlayCount int  `json:"play_count"`
}

// ListJars handles GET /api/music/jars.
func (h *MusicHandler) ListJars(w http.ResponseWriter, r *http.Request) {
	jars, err := h.svc.ListJarTypes(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, notMissable)
		return
	}

	out := make([]jarTypeResponse, 0, len(jars))
	for _, j := range jars {
		out = append(out, jarTypeResponse{
			ID:          j.ID,
			Name:        j.Name,
			Description: j.Description,
			Emoji:       j.Emoji,
			CreatedAt:   j.CreatedAt.UTC(),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// AddSong handles POST /api/music.
func (h *MusicHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	song, err := h.svc.AddSong(r.Context(), music.AddSongInput{
		JarType:    req.JarType,
		SongName:   req.SongName,
		ArtistName: req.ArtistName,
		YouTubeURL: req.YouTubeURL,
		AddedBy:    req.AddedBy,
	})
	if err != nil {
		respondError(w, r, h.log, err, notMissable)
		return
	}

	writeJSON(w, http.StatusCreated, addSongResponse{
		Success: true,
		MusicID: song.ID.String(),
		Message: msgMusicAdded,
	})
}

// Random handles GET /api/music/random.
func (h *MusicHandler) Random(w http.ResponseWriter, r *http.Request) {
	song, err := h.svc.RandomSong(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, msgNoMusic)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(song))
}

// RandomInJar handles GET /api/music/random/{jar_type}.
func (h *MusicHandler) RandomInJar(w http.ResponseWriter, r *http.Request) {
	song, err := h.svc.RandomSongInJar(r.Context(), r.PathValue("jar_type"))
	if err != nil {
		respondError(w, r, h.log, err, msgNoMusicInJar)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(song))
}

// Play handles PUT /api/music/{id}/play.
func (h *MusicHandler) Play(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgMusicNotFound)
		return
	}

	count, err := h.svc.Play(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, msgMusicNotFound)
		return
	}

	writeJSON(w, http.StatusOK, playResponse{Success: true, PlayCount: count})
}

func toSongResponse(s *domain.Song) songResponse {
	return songResponse{
		ID:         s.ID.String(),
		JarType:    s.JarType,
		SongName:   s.SongName,
		ArtistName: s.ArtistName,
		YouTubeURL: s.YouTubeURL,
		AddedBy:    s.AddedBy,
		PlayCount:  s.PlayCount,
		CreatedAt:  s.CreatedAt.UTC(),
	}
}
