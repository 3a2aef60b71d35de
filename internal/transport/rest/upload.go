package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexilens-backend/internal/service/upload"
)

type uploadService interface {
	CreateTicket(ctx context.Context, input upload.Input) (*upload.Ticket, error)
}

// UploadHandler issues presigned image upload URLs.
type UploadHandler struct {
	svc uploadService
	log *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc uploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresAt string `json:"expiresAt"`
}

// Create handles POST /api/uploads.
func (h *UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in upload.Input
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ticket, err := h.svc.CreateTicket(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		UploadURL: ticket.UploadURL,
		Key:       ticket.Key,
		ExpiresAt: formatTime(ticket.ExpiresAt),
	})
}
