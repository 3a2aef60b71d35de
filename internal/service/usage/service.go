package usage

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

type counterRepo interface {
	GetDailyUsage(ctx context.Context, userID uuid.UUID, day time.Time) (int, error)
	IncrementDailyUsage(ctx context.Context, userID uuid.UUID, day time.Time) (int, error)
	IncrementDailyUsageCapped(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (int, bool, error)
	DeleteUsageBefore(ctx context.Context, day time.Time) (int64, error)
	GetUserLimit(ctx context.Context, userID uuid.UUID) (int, bool, error)
}

type statsRepo interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	GetStatsForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	SaveStats(ctx context.Context, s *domain.UserStats) error
	AddWordsLearned(ctx context.Context, userID uuid.UUID, n int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Service owns the daily usage counter and the per-user activity stats.
// "Today" is always the current UTC calendar day.
type Service struct {
	log          *slog.Logger
	counters     counterRepo
	stats        statsRepo
	tx           txManager
	clock        clock
	defaultLimit int
}

// NewService creates a usage service.
func NewService(
	logger *slog.Logger,
	counters counterRepo,
	stats statsRepo,
	tx txManager,
	defaultLimit int,
) *Service {
	return &Service{
		log:          logger.With("service", "usage"),
		counters:     counters,
		stats:        stats,
		tx:           tx,
		clock:        realClock{},
		defaultLimit: defaultLimit,
	}
}

func (s *Service) today() time.Time {
	return domain.UTCDay(s.clock.Now())
}
