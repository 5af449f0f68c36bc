package study

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

// SelectionResult is the outcome of session card selection. Shortfall is the
// number of requested slots that could not be filled; a short session is a
// normal outcome, surfaced explicitly so the caller can decide what to show.
type SelectionResult struct {
	Cards           []domain.CardForSession
	NewlyIntroduced int
	Shortfall       int
}

// SelectCardsForSession decides which cards populate the next study session.
//
// Cards with review state are ranked by a composite key: ascending level
// (less mastered first), then descending today-wrong count (cards missed
// today surface first within a level), then ascending last-reviewed time
// (staler first, missing timestamps treated as epoch zero). The sort is
// stable, so ties keep input order. The sorted list is taken greedily up to
// targetCount, de-duplicating by card ID.
//
// Remaining slots are filled from never-studied cards in their given order,
// stopping once introducedThisCall + alreadyIntroducedToday reaches
// maxNewPerDay. Both pools exhausting before targetCount under-fills the
// result rather than erroring.
func SelectCardsForSession(
	withState []domain.CardForSession,
	withoutState []domain.CardForSession,
	targetCount int,
	maxNewPerDay int,
	alreadyIntroducedToday int,
) SelectionResult {
	if targetCount <= 0 {
		return SelectionResult{Cards: []domain.CardForSession{}}
	}

	ranked := make([]domain.CardForSession, len(withState))
	copy(ranked, withState)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.TodayWrongCount != b.TodayWrongCount {
			return a.TodayWrongCount > b.TodayWrongCount
		}
		return lastReviewedOrEpoch(a).Before(lastReviewedOrEpoch(b))
	})

	selected := make([]domain.CardForSession, 0, targetCount)
	seen := make(map[uuid.UUID]struct{}, targetCount)

	for _, card := range ranked {
		if len(selected) == targetCount {
			break
		}
		if _, dup := seen[card.CardID]; dup {
			continue
		}
		seen[card.CardID] = struct{}{}
		selected = append(selected, card)
	}

	introduced := 0
	for _, card := range withoutState {
		if len(selected) == targetCount {
			break
		}
		if alreadyIntroducedToday+introduced >= maxNewPerDay {
			break
		}
		if _, dup := seen[card.CardID]; dup {
			continue
		}
		seen[card.CardID] = struct{}{}
		selected = append(selected, card)
		introduced++
	}

	return SelectionResult{
		Cards:           selected,
		NewlyIntroduced: introduced,
		Shortfall:       targetCount - len(selected),
	}
}

func lastReviewedOrEpoch(c domain.CardForSession) time.Time {
	if c.LastReviewedAt == nil {
		return time.Time{}
	}
	return *c.LastReviewedAt
}
