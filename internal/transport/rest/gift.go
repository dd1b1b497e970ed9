package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/gift"
)

const msgGiftNotFound = "Gift not found"

type giftService interface {
	Create(ctx context.Context, input gift.CreateInput) (*gift.CreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Gift, error)
	MarkViewed(ctx context.Context, id uuid.UUID) error
}

// GiftHandler serves the gift card endpoints.
type GiftHandler struct {
	svc giftService
	log *slog.Logger
}

// NewGiftHandler creates a GiftHandler.
func NewGiftHandler(svc giftService, logger *slog.Logger) *GiftHandler {
	return &GiftHandler{svc: svc, log: logger.With("handler", "gift")}
}

type createGiftRequest struct {
	SenderName     *string `json:"sender_name"`
	RecipientName  *string `json:"recipient_name"`
	RecipientEmail *string `json:"recipient_email"`
	CardTemplate   *string `json:"card_template"`
	Message        *string `json:"message"`
}

type createGiftResponse struct {
	Success  bool   `json:"success"`
	GiftID   string `json:"gift_id"`
	ViewLink string `json:"view_link"`
}

type giftResponse struct {
	ID             string    `json:"id"`
	SenderName     string    `json:"sender_name"`
	RecipientName  string    `json:"recipient_name"`
	RecipientEmail string    `json:"recipient_email"`
	CardTemplate   string    `json:"card_template"`
	Message        string    `json:"message"`
	IsViewed       bool      `json:"is_viewed"`
	CreatedAt      time.Time `json:"created_at"`
}

// Create handles POST /api/gifts.
func (h *GiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGiftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Create(r.Context(), gift.CreateInput{
		SenderName:     req.SenderName,
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		CardTemplate:   req.CardTemplate,
		Message:        req.Message,
	})
	if err != nil {
		respondError(w, r, h.log, err, notMissable)
		return
	}

	writeJSON(w, http.StatusCreated, createGiftResponse{
		Success:  true,
		GiftID:   res.Gift.ID.String(),
		ViewLink: res.ViewLink,
	})
}

// Get handles GET /api/gifts/{id}.
func (h *GiftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgGiftNotFound)
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, msgGiftNotFound)
		return
	}

	writeJSON(w, http.StatusOK, giftResponse{
		ID:             g.ID.String(),
		SenderName:     g.SenderName,
		RecipientName:  g.RecipientName,
		RecipientEmail: g.RecipientEmail,
		CardTemplate:   g.CardTemplate,
		Message:        g.Message,
		IsViewed:       g.IsViewed,
		CreatedAt:      g.CreatedAt.UTC(),
	})
}

// MarkViewed handles PUT /api/gifts/{id}/view.
func (h *GiftHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgGiftNotFound)
		return
	}

	if err := h.svc.MarkViewed(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, msgGiftNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
