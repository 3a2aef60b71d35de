package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

// TaskView is a task plus a short-lived download URL for its image.
type TaskView struct {
	Task     *domain.AnalysisTask
	ImageURL *string
}

// GetPending returns the caller's most recent unfinished task, or nil.
func (s *Service) GetPending(ctx context.Context) (*domain.AnalysisTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.tasks.GetLatestPending(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pending task: %w", err)
	}
	return t, nil
}

// GetByID returns one of the caller's tasks. Tasks owned by someone else are
// reported as not found.
func (s *Service) GetByID(ctx context.Context, taskID uuid.UUID) (*TaskView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.tasks.GetByIDForUser(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	view := &TaskView{Task: t}
	if !t.ImageRemoved() {
		view.ImageURL = s.imageURL(ctx, t.ImageKey)
	}
	return view, nil
}

// imageURL presigns a download URL. Storage failures degrade to no URL.
func (s *Service) imageURL(ctx context.Context, key string) *string {
	if s.storage == nil || key == "" {
		return nil
	}
	u, err := s.storage.PresignGet(ctx, key, s.downloadTTL)
	if err != nil {
		s.log.WarnContext(ctx, "presign image url",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &u
}
