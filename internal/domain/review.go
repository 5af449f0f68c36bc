package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mastery level bounds. Level 1 is the newest/hardest tier, 4 is mastered.
const (
	MinLevel = 1
	MaxLevel = 4
)

// ClampLevel forces a level into the valid [MinLevel, MaxLevel] range.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ReviewState is the durable memory of how well a (user, card) pair is known.
// Created the first time a card is selected into a session, mutated exactly
// once per answer, never deleted while the card exists.
type ReviewState struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CardID            uuid.UUID
	Level             int
	DueAt             time.Time
	TotalCorrect      int
	TotalWrong        int
	TodayCorrectCount int
	TodayWrongCount   int
	LastReviewedAt    *time.Time
	LastLevelUpAt     *time.Time
	IntroducedAt      time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsDue reports whether the card should be re-presented at the given time.
// Informational for calendar/notification collaborators; the session selector
// ranks by level/wrongness/recency and does not filter strictly by DueAt.
func (s *ReviewState) IsDue(now time.Time) bool {
	return !s.DueAt.After(now)
}

// CardForSession is a read-only projection combining card content with the
// review-state fields the selector ranks by. Constructed fresh per
// session-start request, never persisted.
type CardForSession struct {
	CardID          uuid.UUID
	ReviewStateID   *uuid.UUID
	Front           string
	Back            string
	Level           int
	TotalWrong      int
	TodayWrongCount int
	LastReviewedAt  *time.Time
}

// HasState reports whether the card has been studied before.
func (c CardForSession) HasState() bool {
	return c.ReviewStateID != nil
}

// ReviewLog records a single answer event for a card.
type ReviewLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CardID     uuid.UUID
	Mode       StudyMode
	Correct    bool
	UsedHint   bool
	PrevLevel  int
	NewLevel   int
	ReviewedAt time.Time
}

// LevelCounts holds the number of review states per mastery level.
type LevelCounts struct {
	Level1 int
	Level2 int
	Level3 int
	Level4 int
}

// Total returns the number of studied cards across all levels.
func (c LevelCounts) Total() int {
	return c.Level1 + c.Level2 + c.Level3 + c.Level4
}

// Dashboard holds aggregated study statistics for a user.
type Dashboard struct {
	DueCount        int
	IntroducedToday int
	ReviewedToday   int
	NewCount        int
	LevelCounts     LevelCounts
}
