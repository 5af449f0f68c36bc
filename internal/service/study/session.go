package study

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/pkg/ctxutil"
)

// SessionPlan is the ordered batch of cards for one sitting, with selection
// metadata so callers can tell a short session from a full one.
type SessionPlan struct {
	Cards           []domain.CardForSession
	Mode            domain.StudyMode
	NewlyIntroduced int
	Shortfall       int
}

// StartSession builds the next study session for the user: loads the card
// pool, applies the level filter, runs the selector, and creates initial
// review states for cards entering their first session. State creation is
// atomic; either every newly introduced card gets a state or none do.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*SessionPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = domain.StudyModeMixed
	}
	filter := input.Filter
	if filter == "" {
		filter = domain.LevelFilterAll
	}
	target := clampTarget(input.TargetCount, s.cfg.MinSessionSize, s.cfg.MaxSessionSize)

	now := s.now()

	pool, err := s.cards.ListForStudy(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("list cards for study: %w", err)
	}

	withState, withoutState := splitPool(pool)
	withState, withoutState = applyLevelFilter(withState, withoutState, filter)

	if len(withState) == 0 && len(withoutState) == 0 {
		return nil, domain.NewValidationError("filter", "no cards match the selected filter")
	}

	dayStart := DayStart(now, s.cfg.Timezone)
	introducedToday, err := s.states.CountIntroducedSince(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count cards introduced today: %w", err)
	}

	selection := SelectCardsForSession(withState, withoutState, target, s.cfg.NewCardsPerDay, introducedToday)

	// Newly introduced cards get their initial review state now, so the
	// daily cap accounting sees them on the next session start.
	if selection.NewlyIntroduced > 0 {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for i := range selection.Cards {
				card := &selection.Cards[i]
				if card.HasState() {
					continue
				}
				state := NewReviewState(userID, card.CardID, now)
				created, createErr := s.states.Create(txCtx, &state)
				if createErr != nil {
					return fmt.Errorf("create review state for card %s: %w", card.CardID, createErr)
				}
				id := created.ID
				card.ReviewStateID = &id
				card.Level = created.Level
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("introduce new cards: %w", err)
		}
	}

	s.log.InfoContext(ctx, "session built",
		slog.String("user_id", userID.String()),
		slog.String("mode", mode.String()),
		slog.String("filter", filter.String()),
		slog.Int("cards", len(selection.Cards)),
		slog.Int("newly_introduced", selection.NewlyIntroduced),
		slog.Int("shortfall", selection.Shortfall),
	)

	return &SessionPlan{
		Cards:           selection.Cards,
		Mode:            mode,
		NewlyIntroduced: selection.NewlyIntroduced,
		Shortfall:       selection.Shortfall,
	}, nil
}

// clampTarget forces the session size into the configured bounds.
func clampTarget(target, minSize, maxSize int) int {
	if target < minSize {
		return minSize
	}
	if target > maxSize {
		return maxSize
	}
	return target
}

// splitPool partitions the loaded cards into the selector's two pools.
func splitPool(pool []domain.CardForSession) (withState, withoutState []domain.CardForSession) {
	for _, card := range pool {
		if card.HasState() {
			withState = append(withState, card)
		} else {
			withoutState = append(withoutState, card)
		}
	}
	return withState, withoutState
}

// applyLevelFilter narrows the pools before selection. Level filters and the
// problematic filter only make sense for studied cards, so they empty the
// without-state pool; PROBLEMATIC additionally pre-sorts by lifetime wrong
// count descending so the selector's stable sort keeps that order within ties.
func applyLevelFilter(withState, withoutState []domain.CardForSession, filter domain.LevelFilter) ([]domain.CardForSession, []domain.CardForSession) {
	switch {
	case filter == domain.LevelFilterAll:
		return withState, withoutState

	case filter == domain.LevelFilterProblematic:
		var problematic []domain.CardForSession
		for _, card := range withState {
			if card.TotalWrong > 0 {
				problematic = append(problematic, card)
			}
		}
		sort.SliceStable(problematic, func(i, j int) bool {
			return problematic[i].TotalWrong > problematic[j].TotalWrong
		})
		return problematic, nil

	default:
		level := filter.Level()
		var filtered []domain.CardForSession
		for _, card := range withState {
			if card.Level == level {
				filtered = append(filtered, card)
			}
		}
		return filtered, nil
	}
}
