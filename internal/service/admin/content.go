package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// FlagAnalysis marks an analysis as inappropriate.
func (s *Service) FlagAnalysis(ctx context.Context, id uuid.UUID, input ReasonInput) (*domain.SavedAnalysis, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	var out *domain.SavedAnalysis
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.analyses.SetFlag(txCtx, id, true, &reason)
		if err != nil {
			return fmt.Errorf("flag analysis: %w", err)
		}
		out = a
		return s.record(txCtx, adminID, domain.AdminActionFlagContent, domain.TargetTypeAnalysis, id,
			map[string]any{"reason": reason, "owner_id": a.UserID.String()})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnflagAnalysis clears the moderation flag.
func (s *Service) UnflagAnalysis(ctx context.Context, id uuid.UUID) (*domain.SavedAnalysis, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var out *domain.SavedAnalysis
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.analyses.SetFlag(txCtx, id, false, nil)
		if err != nil {
			return fmt.Errorf("unflag analysis: %w", err)
		}
		out = a
		return s.record(txCtx, adminID, domain.AdminActionUnflagContent, domain.TargetTypeAnalysis, id, nil)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAnalysis removes any user's analysis. The stored image is removed
// after the row is gone; failing to remove it is logged only.
func (s *Service) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	var imageKey *string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.analyses.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get analysis: %w", err)
		}
		if err := s.analyses.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete analysis: %w", err)
		}
		imageKey = a.ImageKey
		return s.record(txCtx, adminID, domain.AdminActionDeleteContent, domain.TargetTypeAnalysis, id,
			map[string]any{"owner_id": a.UserID.String(), "title": a.Title})
	})
	if err != nil {
		return err
	}

	if s.objects != nil {
		s.objects.DeleteObject(ctx, imageKey)
	}
	return nil
}

// ListFlagged returns flagged analyses of all users, newest first.
func (s *Service) ListFlagged(ctx context.Context, page PageInput) ([]domain.SavedAnalysis, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.analyses.List(ctx, domain.AnalysisFilter{
		FlaggedOnly: true,
		Limit:       pageLimit(page.Limit),
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list flagged: %w", err)
	}
	return items, total, nil
}
