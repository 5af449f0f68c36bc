package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck groups a user's cards.
type Deck struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Card is a single flashcard inside a deck.
type Card struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeckID    uuid.UUID
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
