package study

import (
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

// StartSessionInput holds the parameters for building a study session.
type StartSessionInput struct {
	DeckID      *uuid.UUID
	Mode        domain.StudyMode
	Filter      domain.LevelFilter
	TargetCount int
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be TRANSLATE, CHOICE, SENTENCE, DESCRIBE, or MIXED"})
	}
	if i.Filter != "" && !i.Filter.IsValid() {
		errs = append(errs, domain.FieldError{Field: "filter", Message: "must be ALL, LEVEL_1..LEVEL_4, or PROBLEMATIC"})
	}
	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must be a valid UUID when set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds the parameters for recording one answer.
type SubmitAnswerInput struct {
	CardID   uuid.UUID
	Mode     domain.StudyMode
	Correct  bool
	UsedHint bool
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be TRANSLATE, CHOICE, SENTENCE, DESCRIBE, or MIXED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
