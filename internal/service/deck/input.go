package deck

import (
	"strings"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

const (
	maxNameLen = 100
	maxDescLen = 500
	maxFaceLen = 1000
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i *CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if len(i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDeckInput holds the parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID      uuid.UUID
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i *UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if len(i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateFaces(i.Front, i.Back)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a card.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = append(errs, validateFaces(i.Front, i.Back)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateFaces(front, back string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(front) == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	} else if len(front) > maxFaceLen {
		errs = append(errs, domain.FieldError{Field: "front", Message: "too long (max 1000)"})
	}
	if strings.TrimSpace(back) == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	} else if len(back) > maxFaceLen {
		errs = append(errs, domain.FieldError{Field: "back", Message: "too long (max 1000)"})
	}
	return errs
}
