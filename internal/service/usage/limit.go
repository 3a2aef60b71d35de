package usage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/metrics"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

// CheckDailyLimit reports the caller's usage for today. It never writes.
func (s *Service) CheckDailyLimit(ctx context.Context) (domain.UsageInfo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UsageInfo{}, domain.ErrUnauthorized
	}
	return s.Check(ctx, userID)
}

// Check reports today's usage for userID.
func (s *Service) Check(ctx context.Context, userID uuid.UUID) (domain.UsageInfo, error) {
	limit, err := s.effectiveLimit(ctx, userID)
	if err != nil {
		return domain.UsageInfo{}, err
	}

	used, err := s.counters.GetDailyUsage(ctx, userID, s.today())
	if err != nil {
		return domain.UsageInfo{}, fmt.Errorf("get daily usage: %w", err)
	}
	return domain.NewUsageInfo(used, limit), nil
}

// IncrementUsage records one analysis for userID without enforcing the limit.
// The counter grows on every call; the streak at most once per day.
func (s *Service) IncrementUsage(ctx context.Context, userID uuid.UUID) (domain.UsageInfo, error) {
	var info domain.UsageInfo
	today := s.today()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stats, err := s.stats.GetStatsForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("lock stats: %w", err)
		}

		used, err := s.counters.IncrementDailyUsage(txCtx, userID, today)
		if err != nil {
			return fmt.Errorf("increment daily usage: %w", err)
		}

		stats.RecordActivity(today)
		if err := s.stats.SaveStats(txCtx, stats); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}

		limit, err := s.effectiveLimit(txCtx, userID)
		if err != nil {
			return err
		}
		info = domain.NewUsageInfo(used, limit)
		return nil
	})
	if err != nil {
		return domain.UsageInfo{}, err
	}
	return info, nil
}

// ConsumeDailyQuota atomically takes one unit of today's quota for userID.
// It returns domain.ErrDailyLimitReached, and changes nothing, when the
// user has no quota left.
func (s *Service) ConsumeDailyQuota(ctx context.Context, userID uuid.UUID) (domain.UsageInfo, error) {
	var info domain.UsageInfo
	today := s.today()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The stats row lock serializes concurrent submissions of one user.
		stats, err := s.stats.GetStatsForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("lock stats: %w", err)
		}

		limit, err := s.effectiveLimit(txCtx, userID)
		if err != nil {
			return err
		}

		used, ok, err := s.counters.IncrementDailyUsageCapped(txCtx, userID, today, limit)
		if err != nil {
			return fmt.Errorf("increment daily usage: %w", err)
		}
		if !ok {
			return domain.ErrDailyLimitReached
		}

		stats.RecordActivity(today)
		if err := s.stats.SaveStats(txCtx, stats); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}

		info = domain.NewUsageInfo(used, limit)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDailyLimitReached) {
			metrics.QuotaRejections.Inc()
			s.log.InfoContext(ctx, "daily limit reached", slog.String("user_id", userID.String()))
		}
		return domain.UsageInfo{}, err
	}
	return info, nil
}

// PurgeBefore deletes usage rows older than retentionDays and returns the
// number of rows removed.
func (s *Service) PurgeBefore(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.today().AddDate(0, 0, -retentionDays)
	n, err := s.counters.DeleteUsageBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge usage: %w", err)
	}
	s.log.InfoContext(ctx, "usage rows purged",
		slog.Int64("count", n),
		slog.Time("before", cutoff),
	)
	return n, nil
}

func (s *Service) effectiveLimit(ctx context.Context, userID uuid.UUID) (int, error) {
	limit, ok, err := s.counters.GetUserLimit(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get user limit: %w", err)
	}
	if !ok {
		return s.defaultLimit, nil
	}
	return limit, nil
}

// DefaultLimit returns the limit applied to users without an override.
func (s *Service) DefaultLimit() int { return s.defaultLimit }
