// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const columns = `id, email, display_name, role, status, suspended_reason, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by case-insensitive email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+columns+` FROM users WHERE lower(email) = lower($1) ORDER BY created_at LIMIT 1`,
		strings.TrimSpace(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Upsert creates the user on first sight or refreshes email and display name
// from the identity provider. Role and status are never changed here.
func (r *Repo) Upsert(ctx context.Context, id domain.Identity) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`INSERT INTO users (id, email, display_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET
		     email        = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
		     display_name = CASE WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name ELSE users.display_name END,
		     updated_at   = CASE
		         WHEN (EXCLUDED.email <> '' AND EXCLUDED.email <> users.email)
		           OR (EXCLUDED.display_name <> '' AND EXCLUDED.display_name <> users.display_name)
		         THEN now() ELSE users.updated_at END
		 RETURNING `+columns,
		id.UserID, id.Email, id.Name,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.UserID)
	}
	return u, nil
}

// SetRole changes a user's role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING `+columns,
		id, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetStatus suspends or reactivates a user. The reason is cleared on reactivation.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, reason *string) (*domain.User, error) {
	if status == domain.UserStatusActive {
		reason = nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users SET status = $2, suspended_reason = $3, updated_at = now()
		 WHERE id = $1 RETURNING `+columns,
		id, string(status), reason))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns a page of users, newest first, optionally filtered by status,
// and the total count.
func (r *Repo) List(ctx context.Context, status *domain.UserStatus, limit, offset int) ([]domain.User, int, error) {
	where := sq.And{}
	if status != nil {
		where = append(where, sq.Eq{"status": string(*status)})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("user build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "user", "count")
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).
		From("users").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("user build list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "user", "list")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}

	return users, total, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u            domain.User
		role, status string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &role, &status, &u.SuspendedReason, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	u.Status = domain.UserStatus(status)
	return &u, nil
}
