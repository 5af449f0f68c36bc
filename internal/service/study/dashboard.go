package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/pkg/ctxutil"
)

// Dashboard returns aggregated study statistics for the current user.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	dayStart := DayStart(now, s.cfg.Timezone)

	dueCount, err := s.states.CountDue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}

	introducedToday, err := s.states.CountIntroducedSince(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count introduced today: %w", err)
	}

	reviewedToday, err := s.reviews.CountSince(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count reviewed today: %w", err)
	}

	levelCounts, err := s.states.CountByLevel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count by level: %w", err)
	}

	pool, err := s.cards.ListForStudy(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	newCount := 0
	for _, card := range pool {
		if !card.HasState() {
			newCount++
		}
	}

	return &domain.Dashboard{
		DueCount:        dueCount,
		IntroducedToday: introducedToday,
		ReviewedToday:   reviewedToday,
		NewCount:        newCount,
		LevelCounts:     levelCounts,
	}, nil
}

const maxHistoryLimit = 100

// CardHistory returns the most recent answers for one card, newest first.
func (s *Service) CardHistory(ctx context.Context, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return nil, domain.NewValidationError("card_id", "required")
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	// Ownership check doubles as a 404 for foreign cards.
	if _, err := s.cards.GetByID(ctx, userID, cardID); err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	logs, err := s.reviews.ListByCard(ctx, userID, cardID, limit)
	if err != nil {
		return nil, fmt.Errorf("list card history: %w", err)
	}
	return logs, nil
}
