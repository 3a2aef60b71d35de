package task

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/validate"
)

// SubmitInput holds the parameters for starting an analysis.
type SubmitInput struct {
	ImageKey    string  `json:"imageKey" validate:"notblank,max=512"`
	Language    string  `json:"language" validate:"required,language"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	return validate.Struct(i)
}

// StatusInput is a worker-reported transition.
type StatusInput struct {
	Status       domain.TaskStatus       `json:"status" validate:"required"`
	Description  *string                 `json:"description" validate:"omitempty,max=4000"`
	Vocabulary   []domain.VocabularyItem `json:"vocabulary" validate:"max=200"`
	ErrorMessage *string                 `json:"errorMessage" validate:"omitempty,max=2000"`
}

// Validate checks all fields and collects all errors.
func (i StatusInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return err
	}

	var errs []domain.FieldError
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: pending, analyzing, completed, error"})
	}
	if i.Status == domain.TaskStatusCompleted && len(i.Vocabulary) == 0 {
		errs = append(errs, domain.FieldError{Field: "vocabulary", Message: "required when completed"})
	}
	for idx, item := range i.Vocabulary {
		if strings.TrimSpace(item.Word) == "" {
			errs = append(errs, domain.FieldError{Field: "vocabulary", Message: "word is required for item " + strconv.Itoa(idx)})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
