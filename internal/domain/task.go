package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of an analysis task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusAnalyzing TaskStatus = "analyzing"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusError     TaskStatus = "error"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusAnalyzing, TaskStatusCompleted, TaskStatusError:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
// Pollers stop on terminal states and keep polling otherwise.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusError
}

// CanTransitionTo reports whether the worker may move a task from s to next.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusPending:
		return next == TaskStatusAnalyzing || next == TaskStatusError
	case TaskStatusAnalyzing:
		return next == TaskStatusCompleted || next == TaskStatusError
	}
	return false
}

// AnalysisTask is one image-to-vocabulary request.
type AnalysisTask struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          TaskStatus
	ImageKey        string
	Language        string
	Description     *string
	Vocabulary      []VocabularyItem
	SavedAnalysisID *uuid.UUID
	ErrorMessage    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time

	// SavedAt stays set after the saved analysis is deleted.
	SavedAt *time.Time
}

// Saved reports whether the task result was ever saved as an analysis.
func (t *AnalysisTask) Saved() bool {
	return t.SavedAt != nil || t.SavedAnalysisID != nil
}

// ImageRemoved reports whether the task's image went away with its deleted
// saved analysis.
func (t *AnalysisTask) ImageRemoved() bool {
	return t.SavedAt != nil && t.SavedAnalysisID == nil
}

// TaskStatusUpdate is a status transition reported by the analysis worker.
type TaskStatusUpdate struct {
	Status       TaskStatus
	Description  *string
	Vocabulary   []VocabularyItem
	ErrorMessage *string
}

// AnalysisJob is the message handed to the analysis worker.
type AnalysisJob struct {
	TaskID   uuid.UUID `json:"taskId"`
	UserID   uuid.UUID `json:"userId"`
	ImageKey string    `json:"imageKey"`
	Language string    `json:"language"`
}

// ImageKeyPrefix is the storage prefix under which a user's uploads live.
func ImageKeyPrefix(userID uuid.UUID) string {
	return "images/" + userID.String() + "/"
}
