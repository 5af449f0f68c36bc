package study

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

// Hand-rolled mocks with swappable Func fields, one per consumer interface.

type cardRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	ListForStudyFunc func(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]domain.CardForSession, error)
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) ListForStudy(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]domain.CardForSession, error) {
	return m.ListForStudyFunc(ctx, userID, deckID)
}

type reviewStateRepoMock struct {
	GetByCardIDForUpdateFunc func(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error)
	CreateFunc               func(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error)
	UpdateFunc               func(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error)
	CountIntroducedSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountDueFunc             func(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CountByLevelFunc         func(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
}

func (m *reviewStateRepoMock) GetByCardIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error) {
	return m.GetByCardIDForUpdateFunc(ctx, userID, cardID)
}

func (m *reviewStateRepoMock) Create(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error) {
	return m.CreateFunc(ctx, state)
}

func (m *reviewStateRepoMock) Update(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error) {
	return m.UpdateFunc(ctx, state)
}

func (m *reviewStateRepoMock) CountIntroducedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return m.CountIntroducedSinceFunc(ctx, userID, since)
}

func (m *reviewStateRepoMock) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	return m.CountDueFunc(ctx, userID, now)
}

func (m *reviewStateRepoMock) CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error) {
	return m.CountByLevelFunc(ctx, userID)
}

type reviewLogRepoMock struct {
	CreateFunc     func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ListByCardFunc func(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error)
}

func (m *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	return m.CreateFunc(ctx, log)
}

func (m *reviewLogRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return m.CountSinceFunc(ctx, userID, since)
}

func (m *reviewLogRepoMock) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	return m.ListByCardFunc(ctx, userID, cardID, limit)
}

// txManagerMock runs the callback directly, no transaction semantics.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
