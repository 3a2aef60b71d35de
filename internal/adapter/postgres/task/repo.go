// Package task implements the analysis task repository using PostgreSQL.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const columns = `id, user_id, status, image_key, language, description, vocabulary,
	saved_analysis_id, error_message, created_at, updated_at, completed_at, saved_at`

// Repo provides analysis task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new task. CreatedAt and UpdatedAt are set from the database.
func (r *Repo) Create(ctx context.Context, t *domain.AnalysisTask) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	vocab, err := marshalVocabulary(t.Vocabulary)
	if err != nil {
		return err
	}

	err = q.QueryRow(ctx,
		`INSERT INTO analysis_tasks (id, user_id, status, image_key, language, description, vocabulary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, string(t.Status), t.ImageKey, t.Language, t.Description, vocab,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	return nil
}

// GetByIDForUser returns a task owned by userID. Tasks of other users are reported as not found.
func (r *Repo) GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*domain.AnalysisTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx,
		`SELECT `+columns+` FROM analysis_tasks WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// GetForUpdate returns a task locked until the end of the surrounding transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.AnalysisTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx, `SELECT `+columns+` FROM analysis_tasks WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// GetLatestPending returns the user's most recent non-terminal task.
// Returns domain.ErrNotFound when there is none.
func (r *Repo) GetLatestPending(ctx context.Context, userID uuid.UUID) (*domain.AnalysisTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx,
		`SELECT `+columns+` FROM analysis_tasks
		 WHERE user_id = $1 AND status IN ('pending', 'analyzing')
		 ORDER BY created_at DESC
		 LIMIT 1`, userID))
	if err != nil {
		return nil, postgres.MapError(err, "pending task for user", userID)
	}
	return t, nil
}

// UpdateStatus writes a status transition and the worker's payload.
// completedAt is set when the new status is terminal.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.TaskStatusUpdate) (*domain.AnalysisTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	vocab, err := marshalVocabulary(upd.Vocabulary)
	if err != nil {
		return nil, err
	}

	t, err := scanTask(q.QueryRow(ctx,
		`UPDATE analysis_tasks SET
		     status        = $2,
		     description   = COALESCE($3, description),
		     vocabulary    = COALESCE($4, vocabulary),
		     error_message = $5,
		     updated_at    = now(),
		     completed_at  = CASE WHEN $2 IN ('completed', 'error') THEN now() ELSE completed_at END
		 WHERE id = $1
		 RETURNING `+columns,
		id, string(upd.Status), upd.Description, vocab, upd.ErrorMessage,
	))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// LinkSavedAnalysis records that the task's result was saved.
// Returns domain.ErrAlreadyExists if the task was saved before, even when
// that analysis has since been deleted.
func (r *Repo) LinkSavedAnalysis(ctx context.Context, taskID, analysisID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE analysis_tasks SET saved_analysis_id = $2, saved_at = now(), updated_at = now()
		 WHERE id = $1 AND saved_at IS NULL`,
		taskID, analysisID,
	)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: saved analysis: %w", taskID, domain.ErrAlreadyExists)
	}
	return nil
}

// FailStale moves non-terminal tasks created before cutoff to the error state.
func (r *Repo) FailStale(ctx context.Context, cutoff time.Time, message string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE analysis_tasks
		 SET status = 'error', error_message = $2, updated_at = now(), completed_at = now()
		 WHERE status IN ('pending', 'analyzing') AND created_at < $1`,
		cutoff, message,
	)
	if err != nil {
		return 0, postgres.MapError(err, "stale tasks before", cutoff.Format(time.RFC3339))
	}
	return tag.RowsAffected(), nil
}

func scanTask(row pgx.Row) (*domain.AnalysisTask, error) {
	var (
		t      domain.AnalysisTask
		status string
		vocab  []byte
	)
	if err := row.Scan(
		&t.ID, &t.UserID, &status, &t.ImageKey, &t.Language, &t.Description, &vocab,
		&t.SavedAnalysisID, &t.ErrorMessage, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt, &t.SavedAt,
	); err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)

	if len(vocab) > 0 {
		if err := json.Unmarshal(vocab, &t.Vocabulary); err != nil {
			return nil, fmt.Errorf("task %s: unmarshal vocabulary: %w", t.ID, err)
		}
	}
	return &t, nil
}

func marshalVocabulary(items []domain.VocabularyItem) ([]byte, error) {
	if items == nil {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal vocabulary: %w", err)
	}
	return b, nil
}
