// Package session resolves the verified token identity into an application
// user and role.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, id domain.Identity) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// Service resolves users from identities.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a session service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "session"),
		users: users,
	}
}

// Resolve returns the user for a verified identity, creating the row on
// first sight. Suspended users get domain.ErrSuspended.
func (s *Service) Resolve(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.UserID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, id.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		u, err = s.users.Upsert(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.log.InfoContext(ctx, "user created", slog.String("user_id", u.ID.String()))
	case err != nil:
		return nil, fmt.Errorf("get user: %w", err)
	case changed(u, id):
		u, err = s.users.Upsert(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	if u.IsSuspended() {
		return nil, domain.ErrSuspended
	}
	return u, nil
}

// Me returns the caller's user row.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Promote grants the admin role to the user with the given email.
func (s *Service) Promote(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u.Role.IsAdmin() {
		return u, nil
	}

	u, err = s.users.SetRole(ctx, u.ID, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("user_id", u.ID.String()),
		slog.String("email", u.Email),
	)
	return u, nil
}

func changed(u *domain.User, id domain.Identity) bool {
	return (id.Email != "" && !strings.EqualFold(id.Email, u.Email)) ||
		(id.Name != "" && id.Name != u.DisplayName)
}
