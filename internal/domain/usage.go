package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyUsage is the number of analyses a user started on one UTC calendar day.
type DailyUsage struct {
	UserID     uuid.UUID
	Date       time.Time
	UsageCount int
}

// UserLimit overrides the default daily analysis cap for one user.
type UserLimit struct {
	UserID     uuid.UUID
	DailyLimit int
	UpdatedAt  time.Time
}

// UsageInfo is the result of a daily limit check.
type UsageInfo struct {
	Used       int  `json:"used"`
	Limit      int  `json:"limit"`
	Remaining  int  `json:"remaining"`
	CanAnalyze bool `json:"canAnalyze"`
}

// NewUsageInfo derives remaining and canAnalyze from used and limit.
func NewUsageInfo(used, limit int) UsageInfo {
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return UsageInfo{
		Used:       used,
		Limit:      limit,
		Remaining:  remaining,
		CanAnalyze: used < limit,
	}
}

// UserStats holds lifetime counters and the activity streak of a user.
// Invariant: CurrentStreak <= LongestStreak.
type UserStats struct {
	UserID            uuid.UUID
	TotalAnalyses     int
	TotalWordsLearned int
	CurrentStreak     int
	LongestStreak     int
	LastActivityDate  *time.Time
	UpdatedAt         time.Time
}

// RecordActivity applies one analysis action performed on day (a UTC date).
// The streak is credited at most once per day; TotalAnalyses always grows.
func (s *UserStats) RecordActivity(day time.Time) {
	day = UTCDay(day)
	s.TotalAnalyses++

	switch {
	case s.LastActivityDate != nil && UTCDay(*s.LastActivityDate).Equal(day):
		// already counted today
	case s.LastActivityDate != nil && UTCDay(*s.LastActivityDate).Equal(day.AddDate(0, 0, -1)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivityDate = &day
}

// UTCDay truncates t to midnight of its UTC calendar day.
func UTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
