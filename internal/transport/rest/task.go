package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/service/task"
)

type taskService interface {
	Submit(ctx context.Context, input task.SubmitInput) (*domain.AnalysisTask, error)
	GetPending(ctx context.Context) (*domain.AnalysisTask, error)
	GetByID(ctx context.Context, taskID uuid.UUID) (*task.TaskView, error)
	UpdateStatus(ctx context.Context, taskID uuid.UUID, input task.StatusInput) (*domain.AnalysisTask, error)
}

// TaskHandler serves analysis task endpoints and the worker callback.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type pendingResponse struct {
	Task *taskResponse `json:"task"`
}

// Submit handles POST /api/tasks.
func (h *TaskHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in task.SubmitInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(t, nil))
}

// Pending handles GET /api/tasks/pending.
func (h *TaskHandler) Pending(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetPending(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var resp pendingResponse
	if t != nil {
		tr := toTaskResponse(t, nil)
		resp.Task = &tr
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(view.Task, view.ImageURL))
}

// UpdateStatus handles POST /internal/tasks/{id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var in task.StatusInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UpdateStatus(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t, nil))
}
