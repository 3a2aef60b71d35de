package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. ID is the subject
// claim issued by the identity provider.
type User struct {
	ID              uuid.UUID
	Email           string
	DisplayName     string
	Role            UserRole
	Status          UserStatus
	SuspendedReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSuspended reports whether the account is blocked from using the app.
func (u *User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}

// Identity is the verified token payload used to resolve the current user.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}
