// Package analysis implements the saved analysis repository using PostgreSQL.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const table = "saved_analyses"

var columns = []string{
	"id", "user_id", "title", "description", "image_key", "language",
	"vocabulary", "flagged", "flag_reason", "created_at", "updated_at",
}

// Repo provides saved analysis persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved analysis repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new saved analysis. Timestamps are set from the database.
func (r *Repo) Create(ctx context.Context, a *domain.SavedAnalysis) error {
	vocab, err := json.Marshal(nonNilVocabulary(a.Vocabulary))
	if err != nil {
		return fmt.Errorf("saved_analysis marshal vocabulary: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "title", "description", "image_key", "language", "vocabulary").
		Values(a.ID, a.UserID, a.Title, a.Description, a.ImageKey, a.Language, vocab).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("saved_analysis build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return postgres.MapError(err, "saved_analysis", a.ID)
	}
	return nil
}

// UpdateTitle renames an analysis owned by userID.
func (r *Repo) UpdateTitle(ctx context.Context, userID, id uuid.UUID, title string) (*domain.SavedAnalysis, error) {
	return r.updateReturning(ctx, id, postgres.Builder().
		Update(table).
		Set("title", title).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}))
}

// SetFlag sets or clears the moderation flag on any analysis.
func (r *Repo) SetFlag(ctx context.Context, id uuid.UUID, flagged bool, reason *string) (*domain.SavedAnalysis, error) {
	if !flagged {
		reason = nil
	}
	return r.updateReturning(ctx, id, postgres.Builder().
		Update(table).
		Set("flagged", flagged).
		Set("flag_reason", reason).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
}

// Delete removes an analysis. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM saved_analyses WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "saved_analysis", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved_analysis %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) updateReturning(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) (*domain.SavedAnalysis, error) {
	query, args, err := b.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("saved_analysis build update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanAnalysis(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "saved_analysis", id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an analysis regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedAnalysis, error) {
	return r.getOne(ctx, id, sq.Eq{"id": id})
}

// GetByIDForUser returns an analysis owned by userID.
func (r *Repo) GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*domain.SavedAnalysis, error) {
	return r.getOne(ctx, id, sq.Eq{"id": id, "user_id": userID})
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, where sq.Eq) (*domain.SavedAnalysis, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("saved_analysis build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanAnalysis(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "saved_analysis", id)
	}
	return a, nil
}

// List returns a page of analyses matching the filter, newest first, and the
// total number of matches.
func (r *Repo) List(ctx context.Context, f domain.AnalysisFilter) ([]domain.SavedAnalysis, int, error) {
	where := sq.And{}
	if f.UserID != nil {
		where = append(where, sq.Eq{"user_id": *f.UserID})
	}
	if f.Language != nil {
		where = append(where, sq.Eq{"language": *f.Language})
	}
	if f.FlaggedOnly {
		where = append(where, sq.Eq{"flagged": true})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + postgres.EscapeLike(*f.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("saved_analysis build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "saved_analysis", "count")
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("saved_analysis build list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "saved_analysis", "list")
	}
	defer rows.Close()

	out := make([]domain.SavedAnalysis, 0, f.Limit)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "saved_analysis", "list")
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "saved_analysis", "list")
	}

	return out, total, nil
}

func scanAnalysis(row pgx.Row) (*domain.SavedAnalysis, error) {
	var (
		a     domain.SavedAnalysis
		vocab []byte
	)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Description, &a.ImageKey, &a.Language,
		&vocab, &a.Flagged, &a.FlagReason, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(vocab, &a.Vocabulary); err != nil {
		return nil, fmt.Errorf("saved_analysis %s: unmarshal vocabulary: %w", a.ID, err)
	}
	return &a, nil
}

func nonNilVocabulary(v []domain.VocabularyItem) []domain.VocabularyItem {
	if v == nil {
		return []domain.VocabularyItem{}
	}
	return v
}
