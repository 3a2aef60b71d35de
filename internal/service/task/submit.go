package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/metrics"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

// Submit consumes one unit of the caller's daily quota and stores a pending
// task in one transaction, then hands the task to the analysis worker. A failed hand-off is logged and
// the task stays pending.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.AnalysisTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	imageKey := strings.TrimSpace(input.ImageKey)
	if err := s.checkImage(ctx, userID, imageKey); err != nil {
		return nil, err
	}

	t := &domain.AnalysisTask{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      domain.TaskStatusPending,
		ImageKey:    imageKey,
		Language:    domain.NormalizeLanguage(input.Language),
		Description: trimOrNil(input.Description),
	}

	// Quota and task row commit together; the job is sent only after commit.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.quota.ConsumeDailyQuota(ctx, userID); err != nil {
			return fmt.Errorf("consume quota: %w", err)
		}
		if err := s.tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.TasksSubmitted.Inc()

	s.dispatch(ctx, t)

	s.log.InfoContext(ctx, "task submitted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", t.ID.String()),
		slog.String("language", t.Language),
	)
	return t, nil
}

func (s *Service) checkImage(ctx context.Context, userID uuid.UUID, key string) error {
	if !strings.HasPrefix(key, domain.ImageKeyPrefix(userID)) || strings.Contains(key, "..") {
		return domain.NewValidationError("imageKey", "not an upload of the current user")
	}
	if s.storage == nil {
		return nil
	}

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check image: %w", err)
	}
	if !exists {
		return domain.NewValidationError("imageKey", "image has not been uploaded")
	}
	return nil
}

func (s *Service) dispatch(ctx context.Context, t *domain.AnalysisTask) {
	if s.queue == nil {
		s.log.WarnContext(ctx, "no worker queue configured, task left pending",
			slog.String("task_id", t.ID.String()))
		return
	}

	err := s.queue.Dispatch(ctx, domain.AnalysisJob{
		TaskID:   t.ID,
		UserID:   t.UserID,
		ImageKey: t.ImageKey,
		Language: t.Language,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "dispatch analysis job",
			slog.String("task_id", t.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
