package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	Create(ctx context.Context, t *domain.AnalysisTask) error
	GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*domain.AnalysisTask, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.AnalysisTask, error)
	GetLatestPending(ctx context.Context, userID uuid.UUID) (*domain.AnalysisTask, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.TaskStatusUpdate) (*domain.AnalysisTask, error)
	FailStale(ctx context.Context, cutoff time.Time, message string) (int64, error)
}

type quota interface {
	ConsumeDailyQuota(ctx context.Context, userID uuid.UUID) (domain.UsageInfo, error)
}

type jobQueue interface {
	Dispatch(ctx context.Context, job domain.AnalysisJob) error
}

type objectStore interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the analysis task lifecycle: submission, polling reads and
// worker status callbacks.
type Service struct {
	log         *slog.Logger
	tasks       taskRepo
	quota       quota
	queue       jobQueue
	storage     objectStore
	tx          txManager
	downloadTTL time.Duration
}

// NewService creates a task service. queue and storage may be nil when the
// deployment has no worker queue or object storage.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	quota quota,
	queue jobQueue,
	storage objectStore,
	tx txManager,
	downloadTTL time.Duration,
) *Service {
	return &Service{
		log:         logger.With("service", "task"),
		tasks:       tasks,
		quota:       quota,
		queue:       queue,
		storage:     storage,
		tx:          tx,
		downloadTTL: downloadTTL,
	}
}
