package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// SuspendUser blocks a user from the app. Admins cannot suspend themselves.
func (s *Service) SuspendUser(ctx context.Context, userID uuid.UUID, input ReasonInput) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if userID == adminID {
		return nil, domain.NewValidationError("userId", "cannot suspend yourself")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	var out *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.SetStatus(txCtx, userID, domain.UserStatusSuspended, &reason)
		if err != nil {
			return fmt.Errorf("suspend user: %w", err)
		}
		out = u
		return s.record(txCtx, adminID, domain.AdminActionSuspendUser, domain.TargetTypeUser, userID,
			map[string]any{"reason": reason})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReactivateUser lifts a suspension.
func (s *Service) ReactivateUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var out *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.SetStatus(txCtx, userID, domain.UserStatusActive, nil)
		if err != nil {
			return fmt.Errorf("reactivate user: %w", err)
		}
		out = u
		return s.record(txCtx, adminID, domain.AdminActionReactivateUser, domain.TargetTypeUser, userID, nil)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetDailyLimit overrides the default daily analysis limit for one user.
func (s *Service) SetDailyLimit(ctx context.Context, userID uuid.UUID, input LimitInput) (domain.UserLimit, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return domain.UserLimit{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.UserLimit{}, err
	}

	var out domain.UserLimit
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		l, err := s.limits.SetUserLimit(txCtx, userID, input.DailyLimit)
		if err != nil {
			return fmt.Errorf("set user limit: %w", err)
		}
		out = l
		return s.record(txCtx, adminID, domain.AdminActionSetDailyLimit, domain.TargetTypeUser, userID,
			map[string]any{"daily_limit": input.DailyLimit})
	})
	if err != nil {
		return domain.UserLimit{}, err
	}
	return out, nil
}

// ListUsers returns a page of users, newest first.
func (s *Service) ListUsers(ctx context.Context, status *domain.UserStatus, page PageInput) ([]domain.User, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	if status != nil && !status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "must be one of: active, suspended")
	}

	users, total, err := s.users.List(ctx, status, pageLimit(page.Limit), page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// ListLogs returns the admin log, newest first, optionally for one target.
func (s *Service) ListLogs(ctx context.Context, targetID *uuid.UUID, page PageInput) ([]domain.AdminLog, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	logs, total, err := s.adminLogs.List(ctx, targetID, pageLimit(page.Limit), page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list admin logs: %w", err)
	}
	return logs, total, nil
}
