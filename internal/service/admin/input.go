package admin

import (
	"github.com/heartmarshall/lexilens-backend/internal/validate"
)

// ReasonInput carries a moderation reason.
type ReasonInput struct {
	Reason string `json:"reason" validate:"notblank,max=500"`
}

// Validate checks all fields and collects all errors.
func (i ReasonInput) Validate() error {
	return validate.Struct(i)
}

// LimitInput sets a per-user daily limit.
type LimitInput struct {
	DailyLimit int `json:"dailyLimit" validate:"gte=0,lte=1000"`
}

// Validate checks all fields and collects all errors.
func (i LimitInput) Validate() error {
	return validate.Struct(i)
}

// PageInput holds paging parameters for admin lists.
type PageInput struct {
	Limit  int `json:"limit" validate:"gte=0"`
	Offset int `json:"offset" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i PageInput) Validate() error {
	return validate.Struct(i)
}
