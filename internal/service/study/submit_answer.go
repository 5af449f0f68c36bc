package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/pkg/ctxutil"
)

// AnswerResult is the outcome of one recorded answer.
type AnswerResult struct {
	State        *domain.ReviewState
	DidLevelUp   bool
	DidLevelDown bool
}

// SubmitAnswer records one answer and advances the card's review state.
// The read-modify-write runs inside a transaction with the state row locked,
// so concurrent answers for the same card cannot lose counter updates.
//
// Hinted answers keep their counters but never gain a level: the level-up
// computed by the state machine is reverted before persisting.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var result AnswerResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := s.states.GetByCardIDForUpdate(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("load review state: %w", err)
		}

		in := ReviewInput{State: *state, Now: now, Location: s.cfg.Timezone}

		var out ReviewOutput
		if input.Correct {
			out = ProcessCorrectAnswer(in)
			if input.UsedHint {
				out = RevertLevelUp(out, *state, now)
			}
		} else {
			out = ProcessWrongAnswer(in)
		}

		next := applyReviewOutput(*state, out)
		updated, err := s.states.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update review state: %w", err)
		}

		if _, err := s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:         uuid.New(),
			UserID:     userID,
			CardID:     input.CardID,
			Mode:       input.Mode,
			Correct:    input.Correct,
			UsedHint:   input.UsedHint,
			PrevLevel:  out.PreviousLevel,
			NewLevel:   out.Level,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		result = AnswerResult{
			State:        updated,
			DidLevelUp:   out.DidLevelUp,
			DidLevelDown: out.DidLevelDown,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Bool("correct", input.Correct),
		slog.Bool("used_hint", input.UsedHint),
		slog.Int("level", result.State.Level),
	)

	return &result, nil
}

// applyReviewOutput folds the state machine's output back into the durable
// review state record.
func applyReviewOutput(state domain.ReviewState, out ReviewOutput) domain.ReviewState {
	state.Level = out.Level
	state.DueAt = out.DueAt
	state.TotalCorrect = out.TotalCorrect
	state.TotalWrong = out.TotalWrong
	state.TodayCorrectCount = out.TodayCorrectCount
	state.TodayWrongCount = out.TodayWrongCount
	reviewed := out.LastReviewedAt
	state.LastReviewedAt = &reviewed
	state.LastLevelUpAt = out.LastLevelUpAt
	return state
}
