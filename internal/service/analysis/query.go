package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

// ListResult is one page of saved analyses.
type ListResult struct {
	Items []domain.SavedAnalysis
	Total int
}

// Get returns one of the caller's analyses.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*AnalysisView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.analyses.GetByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return s.view(ctx, a), nil
}

// List searches the caller's analyses, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	filter := domain.AnalysisFilter{
		UserID: &userID,
		Search: nonEmpty(input.Search),
		Limit:  min(limit, MaxLimit),
		Offset: input.Offset,
	}
	if lang := nonEmpty(input.Language); lang != nil {
		norm := domain.NormalizeLanguage(*lang)
		filter.Language = &norm
	}

	items, total, err := s.analyses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return &ListResult{Items: items, Total: total}, nil
}

// Rename changes the title of one of the caller's analyses.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, input RenameInput) (*domain.SavedAnalysis, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.analyses.UpdateTitle(ctx, userID, id, strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("rename analysis: %w", err)
	}
	return a, nil
}

// Delete removes one of the caller's analyses. The stored image is removed
// first on a best-effort basis; the row is deleted even if that fails.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	a, err := s.analyses.GetByIDForUser(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get analysis: %w", err)
	}

	s.DeleteObject(ctx, a.ImageKey)

	if err := s.analyses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}

	s.log.InfoContext(ctx, "analysis deleted",
		slog.String("user_id", userID.String()),
		slog.String("analysis_id", id.String()),
	)
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
