package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

const defaultTitleLen = 60

// Save stores the result of one of the caller's completed tasks as a lesson.
// A task can be saved once; later attempts return domain.ErrAlreadyExists,
// also after the saved analysis and its image were deleted.
func (s *Service) Save(ctx context.Context, input SaveInput) (*AnalysisView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.SavedAnalysis
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.tasks.GetForUpdate(txCtx, input.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if t.UserID != userID {
			return fmt.Errorf("task %s: %w", input.TaskID, domain.ErrNotFound)
		}
		if t.Status != domain.TaskStatusCompleted {
			return fmt.Errorf("task %s is %s: %w", t.ID, t.Status, domain.ErrConflict)
		}
		if t.Saved() {
			return fmt.Errorf("task %s: %w", t.ID, domain.ErrAlreadyExists)
		}

		a := &domain.SavedAnalysis{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       titleFor(input.Title, t),
			Description: deref(t.Description),
			Language:    t.Language,
			Vocabulary:  t.Vocabulary,
		}
		if t.ImageKey != "" {
			a.ImageKey = &t.ImageKey
		}

		if err := s.analyses.Create(txCtx, a); err != nil {
			return fmt.Errorf("create analysis: %w", err)
		}
		if err := s.tasks.LinkSavedAnalysis(txCtx, t.ID, a.ID); err != nil {
			return fmt.Errorf("link analysis: %w", err)
		}
		if err := s.words.RecordWordsLearned(txCtx, userID, len(a.Vocabulary)); err != nil {
			return err
		}

		saved = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "analysis saved",
		slog.String("user_id", userID.String()),
		slog.String("analysis_id", saved.ID.String()),
		slog.Int("words", len(saved.Vocabulary)),
	)
	return s.view(ctx, saved), nil
}

// titleFor picks the explicit title, else a prefix of the description, else
// the first words of the lesson.
func titleFor(explicit *string, t *domain.AnalysisTask) string {
	if explicit != nil {
		if title := strings.TrimSpace(*explicit); title != "" {
			return title
		}
	}
	if d := strings.TrimSpace(deref(t.Description)); d != "" {
		return truncate(d, defaultTitleLen)
	}

	words := make([]string, 0, 3)
	for _, v := range t.Vocabulary {
		words = append(words, v.Word)
		if len(words) == cap(words) {
			break
		}
	}
	if len(words) == 0 {
		return "Untitled lesson"
	}
	return truncate(strings.Join(words, ", "), defaultTitleLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
