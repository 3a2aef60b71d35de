package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/service/analysis"
)

type analysisService interface {
	Save(ctx context.Context, input analysis.SaveInput) (*analysis.AnalysisView, error)
	Get(ctx context.Context, id uuid.UUID) (*analysis.AnalysisView, error)
	List(ctx context.Context, input analysis.ListInput) (*analysis.ListResult, error)
	Rename(ctx context.Context, id uuid.UUID, input analysis.RenameInput) (*domain.SavedAnalysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalysisHandler serves saved analysis endpoints.
type AnalysisHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: logger.With("handler", "analysis")}
}

// Save handles POST /api/analyses.
func (h *AnalysisHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in analysis.SaveInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Save(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnalysisResponse(view.Analysis, view.ImageURL))
}

// List handles GET /api/analyses?search=&language=&limit=&offset=.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), analysis.ListInput{
		Search:   queryString(r, "search"),
		Language: queryString(r, "language"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(res.Items, res.Total, analysisSummary))
}

// Get handles GET /api/analyses/{id}.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponse(view.Analysis, view.ImageURL))
}

// Rename handles PATCH /api/analyses/{id}.
func (h *AnalysisHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var in analysis.RenameInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Rename(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisSummary(a))
}

// Delete handles DELETE /api/analyses/{id}.
func (h *AnalysisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
