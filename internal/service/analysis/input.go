package analysis

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/validate"
)

// SaveInput holds the parameters for saving a completed task.
type SaveInput struct {
	TaskID uuid.UUID `json:"taskId"`
	Title  *string   `json:"title" validate:"omitempty,max=200"`
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("taskId", "required")
	}
	return validate.Struct(i)
}

// ListInput holds search and paging parameters.
type ListInput struct {
	Search   *string `json:"search" validate:"omitempty,max=200"`
	Language *string `json:"language" validate:"omitempty,language"`
	Limit    int     `json:"limit" validate:"gte=0,lte=100"`
	Offset   int     `json:"offset" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	return validate.Struct(i)
}

// RenameInput holds the new title of an analysis.
type RenameInput struct {
	Title string `json:"title" validate:"notblank,max=200"`
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	return validate.Struct(i)
}
