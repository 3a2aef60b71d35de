// Package usage implements the daily usage ledger, per-user limits and
// user stats repositories using PostgreSQL.
package usage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// Repo provides usage, limit and stats persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Daily usage
// ---------------------------------------------------------------------------

// GetDailyUsage returns the usage count for the given UTC day, 0 when no row exists.
func (r *Repo) GetDailyUsage(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT usage_count FROM daily_usage WHERE user_id = $1 AND usage_date = $2`,
		userID, day,
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "daily_usage", userID)
	}
	return count, nil
}

// IncrementDailyUsage adds one to the day's counter, creating the row at 1.
// Returns the new count.
func (r *Repo) IncrementDailyUsage(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`INSERT INTO daily_usage (user_id, usage_date, usage_count)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, usage_date)
		 DO UPDATE SET usage_count = daily_usage.usage_count + 1
		 RETURNING usage_count`,
		userID, day,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "daily_usage", userID)
	}
	return count, nil
}

// IncrementDailyUsageCapped adds one to the day's counter only while it is
// below limit. ok is false and count is unchanged when the cap was reached.
func (r *Repo) IncrementDailyUsageCapped(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (count int, ok bool, err error) {
	if limit <= 0 {
		current, err := r.GetDailyUsage(ctx, userID, day)
		return current, false, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx,
		`INSERT INTO daily_usage (user_id, usage_date, usage_count)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, usage_date)
		 DO UPDATE SET usage_count = daily_usage.usage_count + 1
		 WHERE daily_usage.usage_count < $3
		 RETURNING usage_count`,
		userID, day, limit,
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		current, err := r.GetDailyUsage(ctx, userID, day)
		return current, false, err
	}
	if err != nil {
		return 0, false, postgres.MapError(err, "daily_usage", userID)
	}
	return count, true, nil
}

// DeleteUsageBefore removes usage rows older than the given day.
func (r *Repo) DeleteUsageBefore(ctx context.Context, day time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM daily_usage WHERE usage_date < $1`, day)
	if err != nil {
		return 0, postgres.MapError(err, "daily_usage", day.Format(time.DateOnly))
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Limits
// ---------------------------------------------------------------------------

// GetUserLimit returns the per-user override. ok is false when none is set.
func (r *Repo) GetUserLimit(ctx context.Context, userID uuid.UUID) (limit int, ok bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx, `SELECT daily_limit FROM user_limits WHERE user_id = $1`, userID).Scan(&limit)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, postgres.MapError(err, "user_limit", userID)
	}
	return limit, true, nil
}

// SetUserLimit creates or replaces the per-user override.
func (r *Repo) SetUserLimit(ctx context.Context, userID uuid.UUID, limit int) (domain.UserLimit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out := domain.UserLimit{UserID: userID}
	err := q.QueryRow(ctx,
		`INSERT INTO user_limits (user_id, daily_limit, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET daily_limit = EXCLUDED.daily_limit, updated_at = now()
		 RETURNING daily_limit, updated_at`,
		userID, limit,
	).Scan(&out.DailyLimit, &out.UpdatedAt)
	if err != nil {
		return domain.UserLimit{}, postgres.MapError(err, "user_limit", userID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

const statsColumns = `user_id, total_analyses, total_words_learned, current_streak, longest_streak, last_activity_date, updated_at`

// GetStats returns the user's stats row. Returns domain.ErrNotFound when absent.
func (r *Repo) GetStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID)
	s, err := scanStats(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_stats", userID)
	}
	return s, nil
}

// GetStatsForUpdate returns the user's stats row locked until the end of the
// surrounding transaction, creating a zero row first if needed.
func (r *Repo) GetStatsForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		`INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	); err != nil {
		return nil, postgres.MapError(err, "user_stats", userID)
	}

	row := q.QueryRow(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 FOR UPDATE`, userID)
	s, err := scanStats(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_stats", userID)
	}
	return s, nil
}

// SaveStats writes the counters and streak fields of s.
func (r *Repo) SaveStats(ctx context.Context, s *domain.UserStats) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO user_stats (user_id, total_analyses, total_words_learned, current_streak, longest_streak, last_activity_date, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		     total_analyses      = EXCLUDED.total_analyses,
		     total_words_learned = EXCLUDED.total_words_learned,
		     current_streak      = EXCLUDED.current_streak,
		     longest_streak      = EXCLUDED.longest_streak,
		     last_activity_date  = EXCLUDED.last_activity_date,
		     updated_at          = now()
		 RETURNING updated_at`,
		s.UserID, s.TotalAnalyses, s.TotalWordsLearned, s.CurrentStreak, s.LongestStreak, s.LastActivityDate,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "user_stats", s.UserID)
	}
	return nil
}

// AddWordsLearned increments total_words_learned by n.
func (r *Repo) AddWordsLearned(ctx context.Context, userID uuid.UUID, n int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_stats (user_id, total_words_learned, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		     total_words_learned = user_stats.total_words_learned + EXCLUDED.total_words_learned,
		     updated_at          = now()`,
		userID, n,
	)
	if err != nil {
		return postgres.MapError(err, "user_stats", userID)
	}
	return nil
}

func scanStats(row pgx.Row) (*domain.UserStats, error) {
	var s domain.UserStats
	if err := row.Scan(
		&s.UserID, &s.TotalAnalyses, &s.TotalWordsLearned,
		&s.CurrentStreak, &s.LongestStreak, &s.LastActivityDate, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if s.LastActivityDate != nil {
		d := domain.UTCDay(*s.LastActivityDate)
		s.LastActivityDate = &d
	}
	return &s, nil
}
