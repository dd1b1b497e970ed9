package rest

import "net/http"

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Capsule *CapsuleHandler
	Gift    *GiftHandler
	Music   *MusicHandler
	Health  *HealthHandler
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", Index)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/capsules", h.Capsule.Create)
	mux.HandleFunc("POST /api/capsules/check-and-send-emails", h.Capsule.Sweep)
	mux.HandleFunc("GET /api/capsules/{id}", h.Capsule.Get)
	mux.HandleFunc("GET /api/capsules/check/{id}", h.Capsule.Check)
	mux.HandleFunc("PUT /api/capsules/{id}/open", h.Capsule.Open)

	mux.HandleFunc("POST /api/gifts", h.Gift.Create)
	mux.HandleFunc("GET /api/gifts/{id}", h.Gift.Get)
	mux.HandleFunc("PUT /api/gifts/{id}/view", h.Gift.MarkViewed)

	mux.HandleFunc("GET /api/music/jars", h.Music.ListJars)
	mux.HandleFunc("POST /api/music", h.Music.AddSong)
	mux.HandleFunc("GET /api/music/random", h.Music.Random)
	mux.HandleFunc("GET /api/music/random/{jar_type}", h.Music.RandomInJar)
	mux.HandleFunc("PUT /api/music/{id}/play", h.Music.Play)

	return mux
}
