package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

// levelIntervals maps a mastery level to its review interval.
// Four discrete intervals, no randomization.
var levelIntervals = [domain.MaxLevel + 1]time.Duration{
	0,
	1 * 24 * time.Hour,  // level 1
	3 * 24 * time.Hour,  // level 2
	7 * 24 * time.Hour,  // level 3
	21 * 24 * time.Hour, // level 4
}

// ComputeDueAt returns the next due timestamp for a card at the given level.
// Out-of-range levels are clamped, keeping the function total.
func ComputeDueAt(level int, now time.Time) time.Time {
	return now.Add(levelIntervals[domain.ClampLevel(level)])
}

// ReviewInput holds all data needed for one answer transition.
// Pure value; no side effects.
type ReviewInput struct {
	State    domain.ReviewState
	Now      time.Time
	Location *time.Location
}

func (in ReviewInput) location() *time.Location {
	if in.Location == nil {
		return time.UTC
	}
	return in.Location
}

// ReviewOutput is the full next state of a card after one answer, plus
// enough information (DidLevelUp, PreviousLevel) for the orchestration
// layer to revert a level-up deterministically when the answer used a hint.
type ReviewOutput struct {
	Level             int
	DueAt             time.Time
	TotalCorrect      int
	TotalWrong        int
	TodayCorrectCount int
	TodayWrongCount   int
	LastReviewedAt    time.Time
	LastLevelUpAt     *time.Time

	PreviousLevel int
	DidLevelUp    bool
	DidLevelDown  bool
}

// lazyResetToday returns the daily counters, zeroed if the card was last
// reviewed on a different calendar day than now. There is no midnight
// rollover job; the reset happens on the write path of the next answer.
func lazyResetToday(state domain.ReviewState, now time.Time, loc *time.Location) (todayCorrect, todayWrong int) {
	if state.LastReviewedAt == nil || !sameCalendarDay(*state.LastReviewedAt, now, loc) {
		return 0, 0
	}
	return state.TodayCorrectCount, state.TodayWrongCount
}

// ProcessCorrectAnswer computes the next review state after a correct answer.
// The level rises by one (capped at MaxLevel) only when this is at least the
// second correct answer today and no level-up happened yet today.
func ProcessCorrectAnswer(in ReviewInput) ReviewOutput {
	loc := in.location()
	resetCorrect, resetWrong := lazyResetToday(in.State, in.Now, loc)

	prevLevel := domain.ClampLevel(in.State.Level)
	newTodayCorrect := resetCorrect + 1

	level := prevLevel
	lastLevelUpAt := in.State.LastLevelUpAt
	didLevelUp := false
	leveledUpToday := in.State.LastLevelUpAt != nil && sameCalendarDay(*in.State.LastLevelUpAt, in.Now, loc)

	if newTodayCorrect >= 2 && !leveledUpToday && prevLevel < domain.MaxLevel {
		level = prevLevel + 1
		now := in.Now
		lastLevelUpAt = &now
		didLevelUp = true
	}

	return ReviewOutput{
		Level:             level,
		DueAt:             ComputeDueAt(level, in.Now),
		TotalCorrect:      in.State.TotalCorrect + 1,
		TotalWrong:        in.State.TotalWrong,
		TodayCorrectCount: newTodayCorrect,
		TodayWrongCount:   resetWrong,
		LastReviewedAt:    in.Now,
		LastLevelUpAt:     lastLevelUpAt,
		PreviousLevel:     prevLevel,
		DidLevelUp:        didLevelUp,
	}
}

// ProcessWrongAnswer computes the next review state after a wrong answer.
// The level drops by one (floor MinLevel); a second wrong answer on the same
// calendar day forces the level all the way back to MinLevel.
func ProcessWrongAnswer(in ReviewInput) ReviewOutput {
	loc := in.location()
	resetCorrect, resetWrong := lazyResetToday(in.State, in.Now, loc)

	prevLevel := domain.ClampLevel(in.State.Level)
	newTodayWrong := resetWrong + 1

	level := domain.ClampLevel(prevLevel - 1)
	if newTodayWrong >= 2 {
		level = domain.MinLevel
	}

	return ReviewOutput{
		Level:             level,
		DueAt:             ComputeDueAt(level, in.Now),
		TotalCorrect:      in.State.TotalCorrect,
		TotalWrong:        in.State.TotalWrong + 1,
		TodayCorrectCount: resetCorrect,
		TodayWrongCount:   newTodayWrong,
		LastReviewedAt:    in.Now,
		LastLevelUpAt:     in.State.LastLevelUpAt,
		PreviousLevel:     prevLevel,
		DidLevelDown:      level < prevLevel,
	}
}

// RevertLevelUp undoes the level increase of a correct-answer transition.
// Used by the orchestration layer when the answer relied on a hint: the
// counters and timestamps stand, but the card keeps its previous level and
// due date, and the level-up timestamp is rolled back.
func RevertLevelUp(out ReviewOutput, prior domain.ReviewState, now time.Time) ReviewOutput {
	if !out.DidLevelUp {
		return out
	}
	out.Level = out.PreviousLevel
	out.DueAt = ComputeDueAt(out.PreviousLevel, now)
	out.LastLevelUpAt = prior.LastLevelUpAt
	out.DidLevelUp = false
	return out
}

// NewReviewState is the initial-state convention for a card entering its
// first session: level 1, zero counters, due immediately.
func NewReviewState(userID, cardID uuid.UUID, now time.Time) domain.ReviewState {
	return domain.ReviewState{
		ID:           uuid.New(),
		UserID:       userID,
		CardID:       cardID,
		Level:        domain.MinLevel,
		DueAt:        now,
		IntroducedAt: now,
	}
}
