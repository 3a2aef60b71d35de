package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, reason *string) (*domain.User, error)
	List(ctx context.Context, status *domain.UserStatus, limit, offset int) ([]domain.User, int, error)
}

type analysisRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedAnalysis, error)
	SetFlag(ctx context.Context, id uuid.UUID, flagged bool, reason *string) (*domain.SavedAnalysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.AnalysisFilter) ([]domain.SavedAnalysis, int, error)
}

type limitRepo interface {
	SetUserLimit(ctx context.Context, userID uuid.UUID, limit int) (domain.UserLimit, error)
}

type logRepo interface {
	Create(ctx context.Context, l *domain.AdminLog) error
	List(ctx context.Context, targetID *uuid.UUID, limit, offset int) ([]domain.AdminLog, int, error)
}

type objectRemover interface {
	DeleteObject(ctx context.Context, key *string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements moderation. Every mutation writes exactly one admin
// log row in the same transaction.
type Service struct {
	log       *slog.Logger
	users     userRepo
	analyses  analysisRepo
	limits    limitRepo
	adminLogs logRepo
	objects   objectRemover
	tx        txManager
}

// NewService creates an admin service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	analyses analysisRepo,
	limits limitRepo,
	adminLogs logRepo,
	objects objectRemover,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "admin"),
		users:     users,
		analyses:  analyses,
		limits:    limits,
		adminLogs: adminLogs,
		objects:   objects,
		tx:        tx,
	}
}

// requireAdmin returns the caller's id when the caller is an admin.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return id, nil
}

// record appends one admin log row. Must be called inside the mutation's transaction.
func (s *Service) record(ctx context.Context, adminID uuid.UUID, action domain.AdminAction, target domain.TargetType, targetID uuid.UUID, details map[string]any) error {
	entry := &domain.AdminLog{
		ID:         uuid.New(),
		AdminID:    adminID,
		Action:     action,
		TargetType: target,
		TargetID:   targetID,
		Details:    details,
	}
	if err := s.adminLogs.Create(ctx, entry); err != nil {
		return fmt.Errorf("write admin log: %w", err)
	}

	s.log.InfoContext(ctx, "admin action",
		slog.String("admin_id", adminID.String()),
		slog.String("action", string(action)),
		slog.String("target_type", string(target)),
		slog.String("target_id", targetID.String()),
	)
	return nil
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
