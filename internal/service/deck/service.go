// Package deck implements deck and card management: the CRUD surface the
// study scheduler draws its card pool from.
package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/pkg/ctxutil"
)

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	Create(ctx context.Context, deck *domain.Deck) (*domain.Deck, error)
	Update(ctx context.Context, deck *domain.Deck) (*domain.Deck, error)
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
}

// Service implements deck and card management.
type Service struct {
	decks deckRepo
	cards cardRepo
	log   *slog.Logger
}

// NewService creates a new deck service.
func NewService(log *slog.Logger, decks deckRepo, cards cardRepo) *Service {
	return &Service{
		decks: decks,
		cards: cards,
		log:   log.With("service", "deck"),
	}
}

// CreateDeck creates a new deck for the current user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deck := &domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}

	created, err := s.decks.Create(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", created.ID.String()),
	)
	return created, nil
}

// UpdateDeck renames or re-describes an existing deck.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deck, err := s.decks.GetByID(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	deck.Name = input.Name
	deck.Description = input.Description

	updated, err := s.decks.Update(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}
	return updated, nil
}

// DeleteDeck removes a deck and, through the schema's cascade, its cards and
// their review states.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if deckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}

	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
	)
	return nil
}

// ListDecks returns all decks of the current user.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// CreateCard adds a card to one of the user's decks.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Deck must exist and belong to the user.
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	card := &domain.Card{
		ID:     uuid.New(),
		UserID: userID,
		DeckID: input.DeckID,
		Front:  input.Front,
		Back:   input.Back,
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return created, nil
}

// UpdateCard edits a card's faces.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	card.Front = input.Front
	card.Back = input.Back

	updated, err := s.cards.Update(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return updated, nil
}

// DeleteCard removes a card and its review state.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

// ListCards returns all cards in a deck.
func (s *Service) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deck_id", "required")
	}

	cards, err := s.cards.ListByDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}
