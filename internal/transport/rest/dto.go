package rest

import (
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newList[S any, T any](items []S, total int, conv func(*S) T) listResponse[T] {
	out := make([]T, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}
	return listResponse[T]{Items: out, Total: total}
}

type userResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	DisplayName     string  `json:"displayName"`
	Role            string  `json:"role"`
	Status          string  `json:"status"`
	SuspendedReason *string `json:"suspendedReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		Role:            u.Role.String(),
		Status:          u.Status.String(),
		SuspendedReason: u.SuspendedReason,
		CreatedAt:       formatTime(u.CreatedAt),
	}
}

type statsResponse struct {
	TotalAnalyses     int     `json:"totalAnalyses"`
	TotalWordsLearned int     `json:"totalWordsLearned"`
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
	LastActivityDate  *string `json:"lastActivityDate"`
}

func toStatsResponse(s *domain.UserStats) statsResponse {
	resp := statsResponse{
		TotalAnalyses:     s.TotalAnalyses,
		TotalWordsLearned: s.TotalWordsLearned,
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
	}
	if s.LastActivityDate != nil {
		d := s.LastActivityDate.Format(time.DateOnly)
		resp.LastActivityDate = &d
	}
	return resp
}

type taskResponse struct {
	ID              string                  `json:"id"`
	Status          string                  `json:"status"`
	ImageKey        string                  `json:"imageKey"`
	ImageURL        *string                 `json:"imageUrl,omitempty"`
	Language        string                  `json:"language"`
	Description     *string                 `json:"description"`
	Vocabulary      []domain.VocabularyItem `json:"vocabulary"`
	SavedAnalysisID *string                 `json:"savedAnalysisId"`
	ErrorMessage    *string                 `json:"errorMessage"`
	CreatedAt       string                  `json:"createdAt"`
	CompletedAt     *string                 `json:"completedAt"`
}

func toTaskResponse(t *domain.AnalysisTask, imageURL *string) taskResponse {
	resp := taskResponse{
		ID:           t.ID.String(),
		Status:       t.Status.String(),
		ImageKey:     t.ImageKey,
		ImageURL:     imageURL,
		Language:     t.Language,
		Description:  t.Description,
		Vocabulary:   t.Vocabulary,
		ErrorMessage: t.ErrorMessage,
		CreatedAt:    formatTime(t.CreatedAt),
	}
	if t.SavedAnalysisID != nil {
		id := t.SavedAnalysisID.String()
		resp.SavedAnalysisID = &id
	}
	if t.CompletedAt != nil {
		c := formatTime(*t.CompletedAt)
		resp.CompletedAt = &c
	}
	return resp
}

type analysisResponse struct {
	ID          string                  `json:"id"`
	UserID      string                  `json:"userId"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	ImageURL    *string                 `json:"imageUrl,omitempty"`
	Language    string                  `json:"language"`
	Vocabulary  []domain.VocabularyItem `json:"vocabulary"`
	Flagged     bool                    `json:"flagged"`
	FlagReason  *string                 `json:"flagReason,omitempty"`
	CreatedAt   string                  `json:"createdAt"`
	UpdatedAt   string                  `json:"updatedAt"`
}

func toAnalysisResponse(a *domain.SavedAnalysis, imageURL *string) analysisResponse {
	vocab := a.Vocabulary
	if vocab == nil {
		vocab = []domain.VocabularyItem{}
	}
	return analysisResponse{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    imageURL,
		Language:    a.Language,
		Vocabulary:  vocab,
		Flagged:     a.Flagged,
		FlagReason:  a.FlagReason,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func analysisSummary(a *domain.SavedAnalysis) analysisResponse {
	return toAnalysisResponse(a, nil)
}

type adminLogResponse struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"adminId"`
	Action     string         `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  string         `json:"createdAt"`
}

func toAdminLogResponse(l *domain.AdminLog) adminLogResponse {
	return adminLogResponse{
		ID:         l.ID.String(),
		AdminID:    l.AdminID.String(),
		Action:     l.Action.String(),
		TargetType: l.TargetType.String(),
		TargetID:   l.TargetID.String(),
		Details:    l.Details,
		CreatedAt:  formatTime(l.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
