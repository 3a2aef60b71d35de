package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

// GetStats returns the caller's lifetime stats. Users with no activity get
// zero counters.
func (s *Service) GetStats(ctx context.Context) (*domain.UserStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.stats.GetStats(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// RecordWordsLearned adds n to the user's learned-word total.
func (s *Service) RecordWordsLearned(ctx context.Context, userID uuid.UUID, n int) error {
	if n <= 0 {
		return nil
	}
	if err := s.stats.AddWordsLearned(ctx, userID, n); err != nil {
		return fmt.Errorf("add words learned: %w", err)
	}
	return nil
}
