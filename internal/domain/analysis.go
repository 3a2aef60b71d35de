package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyItem is one word of a generated lesson.
type VocabularyItem struct {
	Word          string  `json:"word"`
	Translation   string  `json:"translation"`
	PartOfSpeech  *string `json:"partOfSpeech,omitempty"`
	Example       *string `json:"example,omitempty"`
	Pronunciation *string `json:"pronunciation,omitempty"`
}

// SavedAnalysis is a vocabulary lesson the user chose to keep.
type SavedAnalysis struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	ImageKey    *string
	Language    string
	Vocabulary  []VocabularyItem
	Flagged     bool
	FlagReason  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnalysisFilter narrows a saved-analysis listing.
type AnalysisFilter struct {
	UserID      *uuid.UUID
	Search      *string
	Language    *string
	FlaggedOnly bool
	Limit       int
	Offset      int
}
