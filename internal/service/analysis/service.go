package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type analysisRepo interface {
	Create(ctx context.Context, a *domain.SavedAnalysis) error
	GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*domain.SavedAnalysis, error)
	List(ctx context.Context, f domain.AnalysisFilter) ([]domain.SavedAnalysis, int, error)
	UpdateTitle(ctx context.Context, userID, id uuid.UUID, title string) (*domain.SavedAnalysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.AnalysisTask, error)
	LinkSavedAnalysis(ctx context.Context, taskID, analysisID uuid.UUID) error
}

type wordLedger interface {
	RecordWordsLearned(ctx context.Context, userID uuid.UUID, n int) error
}

type objectStore interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the lessons a user saved from completed tasks.
type Service struct {
	log         *slog.Logger
	analyses    analysisRepo
	tasks       taskRepo
	words       wordLedger
	storage     objectStore
	tx          txManager
	downloadTTL time.Duration
}

// NewService creates a saved-analysis service. storage may be nil.
func NewService(
	logger *slog.Logger,
	analyses analysisRepo,
	tasks taskRepo,
	words wordLedger,
	storage objectStore,
	tx txManager,
	downloadTTL time.Duration,
) *Service {
	return &Service{
		log:         logger.With("service", "analysis"),
		analyses:    analyses,
		tasks:       tasks,
		words:       words,
		storage:     storage,
		tx:          tx,
		downloadTTL: downloadTTL,
	}
}

// AnalysisView is a saved analysis plus a short-lived image URL.
type AnalysisView struct {
	Analysis *domain.SavedAnalysis
	ImageURL *string
}

func (s *Service) view(ctx context.Context, a *domain.SavedAnalysis) *AnalysisView {
	v := &AnalysisView{Analysis: a}
	if s.storage == nil || a.ImageKey == nil {
		return v
	}
	u, err := s.storage.PresignGet(ctx, *a.ImageKey, s.downloadTTL)
	if err != nil {
		s.log.WarnContext(ctx, "presign image url",
			slog.String("analysis_id", a.ID.String()),
			slog.String("error", err.Error()),
		)
		return v
	}
	v.ImageURL = &u
	return v
}

// DeleteObject removes a stored image. Failures are logged and ignored.
func (s *Service) DeleteObject(ctx context.Context, key *string) {
	if s.storage == nil || key == nil || *key == "" {
		return
	}
	if err := s.storage.Delete(ctx, *key); err != nil {
		s.log.WarnContext(ctx, "delete stored image",
			slog.String("key", *key),
			slog.String("error", err.Error()),
		)
	}
}
