package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	ListForStudy(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]domain.CardForSession, error)
}

type reviewStateRepo interface {
	GetByCardIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error)
	Create(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error)
	Update(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error)
	CountIntroducedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the scheduling knobs the service needs. The level→interval
// table itself is fixed in code; only pacing is configurable.
type Config struct {
	NewCardsPerDay int
	MinSessionSize int
	MaxSessionSize int
	Timezone       *time.Location
}

// Service implements the study business logic: session building on top of
// the card selector, and answer processing on top of the review state machine.
type Service struct {
	cards   cardRepo
	states  reviewStateRepo
	reviews reviewLogRepo
	tx      txManager
	log     *slog.Logger
	cfg     Config
	now     func() time.Time
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	states reviewStateRepo,
	reviews reviewLogRepo,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	return &Service{
		cards:   cards,
		states:  states,
		reviews: reviews,
		tx:      tx,
		log:     log.With("service", "study"),
		cfg:     cfg,
		now:     time.Now,
	}
}
