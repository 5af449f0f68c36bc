package deck

import (
	"context"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

type deckRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	CreateFunc     func(ctx context.Context, deck *domain.Deck) (*domain.Deck, error)
	UpdateFunc     func(ctx context.Context, deck *domain.Deck) (*domain.Deck, error)
	DeleteFunc     func(ctx context.Context, userID, deckID uuid.UUID) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
}

func (m *deckRepoMock) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	return m.GetByIDFunc(ctx, userID, deckID)
}

func (m *deckRepoMock) Create(ctx context.Context, deck *domain.Deck) (*domain.Deck, error) {
	return m.CreateFunc(ctx, deck)
}

func (m *deckRepoMock) Update(ctx context.Context, deck *domain.Deck) (*domain.Deck, error) {
	return m.UpdateFunc(ctx, deck)
}

func (m *deckRepoMock) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, deckID)
}

func (m *deckRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	return m.ListByUserFunc(ctx, userID)
}

type cardRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	CreateFunc     func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	UpdateFunc     func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	DeleteFunc     func(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeckFunc func(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	return m.CreateFunc(ctx, card)
}

func (m *cardRepoMock) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	return m.UpdateFunc(ctx, card)
}

func (m *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	return m.ListByDeckFunc(ctx, userID, deckID)
}
