package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/service/admin"
)

type adminService interface {
	FlagAnalysis(ctx context.Context, id uuid.UUID, input admin.ReasonInput) (*domain.SavedAnalysis, error)
	UnflagAnalysis(ctx context.Context, id uuid.UUID) (*domain.SavedAnalysis, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
	ListFlagged(ctx context.Context, page admin.PageInput) ([]domain.SavedAnalysis, int, error)
	SuspendUser(ctx context.Context, userID uuid.UUID, input admin.ReasonInput) (*domain.User, error)
	ReactivateUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	SetDailyLimit(ctx context.Context, userID uuid.UUID, input admin.LimitInput) (domain.UserLimit, error)
	ListUsers(ctx context.Context, status *domain.UserStatus, page admin.PageInput) ([]domain.User, int, error)
	ListLogs(ctx context.Context, targetID *uuid.UUID, page admin.PageInput) ([]domain.AdminLog, int, error)
}

// AdminHandler serves moderation endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type limitResponse struct {
	UserID     string `json:"userId"`
	DailyLimit int    `json:"dailyLimit"`
	UpdatedAt  string `json:"updatedAt"`
}

// ListUsers handles GET /api/admin/users?status=&limit=&offset=.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	pg, err := adminPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var status *domain.UserStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.UserStatus(raw)
		if !s.IsValid() {
			respondError(w, r, h.log, domain.NewValidationError("status", "must be one of: active, suspended"))
			return
		}
		status = &s
	}

	users, total, err := h.svc.ListUsers(r.Context(), status, pg)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(users, total, toUserResponse))
}

// ListFlagged handles GET /api/admin/flagged.
func (h *AdminHandler) ListFlagged(w http.ResponseWriter, r *http.Request) {
	pg, err := adminPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListFlagged(r.Context(), pg)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(items, total, analysisSummary))
}

// ListLogs handles GET /api/admin/logs?targetId=.
func (h *AdminHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	pg, err := adminPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var target *uuid.UUID
	if raw := r.URL.Query().Get("targetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("targetId", "must be a UUID"))
			return
		}
		target = &id
	}

	logs, total, err := h.svc.ListLogs(r.Context(), target, pg)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(logs, total, toAdminLogResponse))
}

// SuspendUser handles POST /api/admin/users/{id}/suspend.
func (h *AdminHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in admin.ReasonInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.SuspendUser(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ReactivateUser handles POST /api/admin/users/{id}/reactivate.
func (h *AdminHandler) ReactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.ReactivateUser(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetDailyLimit handles POST /api/admin/users/{id}/limit.
func (h *AdminHandler) SetDailyLimit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in admin.LimitInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	lim, err := h.svc.SetDailyLimit(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, limitResponse{
		UserID:     lim.UserID.String(),
		DailyLimit: lim.DailyLimit,
		UpdatedAt:  formatTime(lim.UpdatedAt),
	})
}

// FlagAnalysis handles POST /api/admin/analyses/{id}/flag.
func (h *AdminHandler) FlagAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in admin.ReasonInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.FlagAnalysis(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisSummary(a))
}

// UnflagAnalysis handles POST /api/admin/analyses/{id}/unflag.
func (h *AdminHandler) UnflagAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.UnflagAnalysis(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisSummary(a))
}

// DeleteAnalysis handles DELETE /api/admin/analyses/{id}.
func (h *AdminHandler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteAnalysis(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func adminPage(r *http.Request) (admin.PageInput, error) {
	limit, offset, err := page(r)
	if err != nil {
		return admin.PageInput{}, err
	}
	return admin.PageInput{Limit: limit, Offset: offset}, nil
}
