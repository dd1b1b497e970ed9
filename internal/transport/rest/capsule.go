package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/capsule"
)

const (
	msgCapsuleNotFound = "Capsule not found"
	msgCapsuleCreated  = "Zaman kapsülünüz başarıyla oluşturuldu!"
	msgNothingToSend   = "No capsules ready for opening"
)

type capsuleService interface {
	Create(ctx context.Context, input capsule.CreateInput) (*domain.Capsule, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Capsule, error)
	Check(ctx context.Context, id uuid.UUID) (*capsule.CheckResult, error)
	Open(ctx context.Context, id uuid.UUID) error
	Sweep(ctx context.Context) (capsule.SweepResult, error)
}

// CapsuleHandler serves the time capsule endpoints.
type CapsuleHandler struct {
	svc capsuleService
	log *slog.Logger
}

// NewCapsuleHandler creates a CapsuleHandler.
func NewCapsuleHandler(svc capsuleService, logger *slog.Logger) *CapsuleHandler {
	return &CapsuleHandler{svc: svc, log: logger.With("handler", "capsule")}
}

type createCapsuleRequest struct {
	CreatorEmail *string `json:"creator_email"`
	Title        *string `json:"title"`
	Message      *string `json:"message"`
	OpenDate     *string `json:"open_date"`
	MediaURL     *string `json:"media_url"`
}

type createCapsuleResponse struct {
	Success   bool   `json:"success"`
	CapsuleID string `json:"capsule_id"`
	Message   string `json:"message"`
}

type capsuleResponse struct {
	ID               string    `json:"id"`
	CreatorEmail     string    `json:"creator_email"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	MediaURL         *string   `json:"media_url"`
	OpenDate         time.Time `json:"open_date"`
	IsOpened         bool      `json:"is_opened"`
	NotificationSent bool      `json:"notification_sent"`
	CreatedAt        time.Time `json:"created_at"`
}

type checkResponse struct {
	CanOpen  bool      `json:"can_open"`
	OpenDate time.Time `json:"open_date"`
	IsOpened bool      `json:"is_opened"`
}

type sweepResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Checked int    `json:"checked"`
	Sent    int    `json:"sent"`
}

// Create handles POST /api/capsules.
func (h *CapsuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCapsuleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), capsule.CreateInput{
		CreatorEmail: req.CreatorEmail,
		Title:        req.Title,
		Message:      req.Message,
		OpenDate:     req.OpenDate,
		MediaURL:     req.MediaURL,
	})
	if err != nil {
		respondError(w, r, h.log, err, notMissable)
		return
	}

	writeJSON(w, http.StatusCreated, createCapsuleResponse{
		Success:   true,
		CapsuleID: c.ID.String(),
		Message:   msgCapsuleCreated,
	})
}

// Get handles GET /api/capsules/{id}.
func (h *CapsuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgCapsuleNotFound)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, msgCapsuleNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toCapsuleResponse(c))
}

// Check handles GET /api/capsules/check/{id}.
func (h *CapsuleHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgCapsuleNotFound)
		return
	}

	res, err := h.svc.Check(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, msgCapsuleNotFound)
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		CanOpen:  res.CanOpen,
		OpenDate: res.OpenDate,
		IsOpened: res.IsOpened,
	})
}

// Open handles PUT /api/capsules/{id}/open.
func (h *CapsuleHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgCapsuleNotFound)
		return
	}

	if err := h.svc.Open(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, msgCapsuleNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Sweep handles POST /api/capsules/check-and-send-emails.
func (h *CapsuleHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sweep(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, notMissable)
		return
	}

	writeJSON(w, http.StatusOK, sweepResponse{
		Success: true,
		Message: sweepMessage(res),
		Checked: res.Checked,
		Sent:    res.Sent,
	})
}

func sweepMessage(res capsule.SweepResult) string {
	if res.Checked == 0 {
		return msgNothingToSend
	}
	return fmt.Sprintf("Sent %d opening notification email(s)", res.Sent)
}

func toCapsuleResponse(c *domain.Capsule) capsuleResponse {
	return capsuleResponse{
		ID:               c.ID.String(),
		CreatorEmail:     c.CreatorEmail,
		Title:            c.Title,
		Message:          c.Message,
		MediaURL:         c.MediaURL,
		OpenDate:         c.OpenDate.UTC(),
		IsOpened:         c.IsOpened,
		NotificationSent: c.NotificationSent,
		CreatedAt:        c.CreatedAt.UTC(),
	}
}
