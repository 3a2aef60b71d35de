package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

type sessionService interface {
	Me(ctx context.Context) (*domain.User, error)
}

type usageService interface {
	CheckDailyLimit(ctx context.Context) (domain.UsageInfo, error)
	GetStats(ctx context.Context) (*domain.UserStats, error)
}

// AccountHandler serves the caller's profile, quota and stats.
type AccountHandler struct {
	session sessionService
	usage   usageService
	log     *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(session sessionService, usage usageService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{session: session, usage: usage, log: logger.With("handler", "account")}
}

// Me handles GET /api/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.session.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Usage handles GET /api/usage.
func (h *AccountHandler) Usage(w http.ResponseWriter, r *http.Request) {
	info, err := h.usage.CheckDailyLimit(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Stats handles GET /api/stats.
func (h *AccountHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usage.GetStats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
