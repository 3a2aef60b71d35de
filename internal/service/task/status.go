package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/metrics"
)

// UpdateStatus applies a transition reported by the analysis worker.
// Transitions not allowed from the current state return domain.ErrConflict.
func (s *Service) UpdateStatus(ctx context.Context, taskID uuid.UUID, input StatusInput) (*domain.AnalysisTask, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.AnalysisTask
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.tasks.GetForUpdate(txCtx, taskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}

		if !current.Status.CanTransitionTo(input.Status) {
			return fmt.Errorf("task %s: %s -> %s: %w", taskID, current.Status, input.Status, domain.ErrConflict)
		}

		upd := domain.TaskStatusUpdate{
			Status:       input.Status,
			Description:  trimOrNil(input.Description),
			Vocabulary:   input.Vocabulary,
			ErrorMessage: trimOrNil(input.ErrorMessage),
		}
		updated, err = s.tasks.UpdateStatus(txCtx, taskID, upd)
		if err != nil {
			return fmt.Errorf("update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TaskTransitions.WithLabelValues(string(updated.Status)).Inc()
	s.log.InfoContext(ctx, "task status updated",
		slog.String("task_id", taskID.String()),
		slog.String("status", string(updated.Status)),
		slog.Int("vocabulary", len(updated.Vocabulary)),
	)
	return updated, nil
}

// FailStale moves tasks that have not finished within maxAge to the error
// state and returns how many were changed.
func (s *Service) FailStale(ctx context.Context, now time.Time, maxAge time.Duration) (int64, error) {
	n, err := s.tasks.FailStale(ctx, now.Add(-maxAge), "analysis timed out")
	if err != nil {
		return 0, fmt.Errorf("fail stale tasks: %w", err)
	}
	if n > 0 {
		metrics.TaskTransitions.WithLabelValues(string(domain.TaskStatusError)).Add(float64(n))
	}
	s.log.InfoContext(ctx, "stale tasks failed", slog.Int64("count", n))
	return n, nil
}
