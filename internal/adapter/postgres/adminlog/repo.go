// Package adminlog implements the append-only admin action log using PostgreSQL.
package adminlog

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

var columns = []string{"id", "admin_id", "action", "target_type", "target_id", "details", "created_at"}

// Repo provides admin log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a log record. CreatedAt is set from the database.
func (r *Repo) Create(ctx context.Context, l *domain.AdminLog) error {
	details := l.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("admin_log marshal details: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx,
		`INSERT INTO admin_logs (id, admin_id, action, target_type, target_id, details)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		l.ID, l.AdminID, string(l.Action), string(l.TargetType), l.TargetID, raw,
	).Scan(&l.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "admin_log", l.ID)
	}
	return nil
}

// List returns log records newest first, optionally restricted to one target,
// and the total count.
func (r *Repo) List(ctx context.Context, targetID *uuid.UUID, limit, offset int) ([]domain.AdminLog, int, error) {
	where := sq.And{}
	if targetID != nil {
		where = append(where, sq.Eq{"target_id": *targetID})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("admin_logs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("admin_log build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "admin_log", "count")
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From("admin_logs").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("admin_log build list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "admin_log", "list")
	}
	defer rows.Close()

	logs := make([]domain.AdminLog, 0, limit)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "admin_log", "list")
	}

	return logs, total, nil
}

func scanLog(row pgx.Row) (domain.AdminLog, error) {
	var (
		l                  domain.AdminLog
		action, targetType string
		raw                []byte
	)
	if err := row.Scan(&l.ID, &l.AdminID, &action, &targetType, &l.TargetID, &raw, &l.CreatedAt); err != nil {
		return domain.AdminLog{}, postgres.MapError(err, "admin_log", "scan")
	}
	l.Action = domain.AdminAction(action)
	l.TargetType = domain.TargetType(targetType)

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &l.Details); err != nil {
			return domain.AdminLog{}, fmt.Errorf("admin_log %s unmarshal details: %w", l.ID, err)
		}
	}
	return l, nil
}
