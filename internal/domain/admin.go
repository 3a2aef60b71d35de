package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminLog is an append-only record of a moderation action.
type AdminLog struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	Action     AdminAction
	TargetType TargetType
	TargetID   uuid.UUID
	Details    map[string]any
	CreatedAt  time.Time
}
