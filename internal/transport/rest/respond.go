package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID parses the {id} path value. Anything that is not a UUID cannot name
// a stored row, so callers answer it like an unknown id.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error to a status code and a public message.
// notFound is the message used for domain.ErrNotFound. Operations that do
// not look up a resource pass notMissable, and a domain.ErrNotFound from them
// is reported as an internal error.
// notMissable marks operations with no resource that could be missing.
const notMissable = ""

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.PublicMessage())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid request")
	case notFound != notMissable && errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrNotYetOpenable):
		writeError(w, http.StatusForbidden, "Capsule cannot be opened yet")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, context.Canceled):
		log.WarnContext(r.Context(), "request cancelled", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
