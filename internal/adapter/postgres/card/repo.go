// Package card implements the Card repository using PostgreSQL.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/adapter/postgres"
	"github.com/grajto/vocab-trainer/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// row mirrors the cards table for scany.
type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	DeckID    uuid.UUID `db:"deck_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Card {
	return domain.Card{
		ID:        r.ID,
		UserID:    r.UserID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// studyRow is one entry of the session card pool: card content LEFT JOINed
// with its review state, if any.
type studyRow struct {
	CardID          uuid.UUID  `db:"card_id"`
	ReviewStateID   *uuid.UUID `db:"review_state_id"`
	Front           string     `db:"front"`
	Back            string     `db:"back"`
	Level           *int       `db:"level"`
	TotalWrong      *int       `db:"total_wrong"`
	TodayWrongCount *int       `db:"today_wrong_count"`
	LastReviewedAt  *time.Time `db:"last_reviewed_at"`
}

func (r studyRow) toDomain() domain.CardForSession {
	card := domain.CardForSession{
		CardID:         r.CardID,
		ReviewStateID:  r.ReviewStateID,
		Front:          r.Front,
		Back:           r.Back,
		LastReviewedAt: r.LastReviewedAt,
	}
	if r.Level != nil {
		card.Level = *r.Level
	}
	if r.TotalWrong != nil {
		card.TotalWrong = *r.TotalWrong
	}
	if r.TodayWrongCount != nil {
		card.TodayWrongCount = *r.TodayWrongCount
	}
	return card
}

const getByIDSQL = `
SELECT id, user_id, deck_id, front, back, created_at, updated_at
FROM cards
WHERE id = $1 AND user_id = $2`

const listByDeckSQL = `
SELECT id, user_id, deck_id, front, back, created_at, updated_at
FROM cards
WHERE user_id = $1 AND deck_id = $2
ORDER BY created_at ASC`

// listForStudySQL loads the whole session card pool in one query. Cards not
// yet studied come back with NULL review-state columns; the service splits
// the pool on that.
const listForStudySQL = `
SELECT c.id AS card_id, c.front, c.back,
       rs.id AS review_state_id, rs.level, rs.total_wrong,
       rs.today_wrong_count, rs.last_reviewed_at
FROM cards c
LEFT JOIN review_states rs ON rs.card_id = c.id AND rs.user_id = c.user_id
WHERE c.user_id = $1
ORDER BY c.created_at ASC`

const listForStudyByDeckSQL = `
SELECT c.id AS card_id, c.front, c.back,
       rs.id AS review_state_id, rs.level, rs.total_wrong,
       rs.today_wrong_count, rs.last_reviewed_at
FROM cards c
LEFT JOIN review_states rs ON rs.card_id = c.id AND rs.user_id = c.user_id
WHERE c.user_id = $1 AND c.deck_id = $2
ORDER BY c.created_at ASC`

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, getByIDSQL, cardID, userID); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	card := rec.toDomain()
	return &card, nil
}

// Create inserts a new card.
func (r *Repo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	sql, args, err := builder.
		Insert("cards").
		Columns("id", "user_id", "deck_id", "front", "back").
		Values(card.ID, card.UserID, card.DeckID, card.Front, card.Back).
		Suffix("RETURNING id, user_id, deck_id, front, back, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}
	created := rec.toDomain()
	return &created, nil
}

// Update persists a card's faces.
func (r *Repo) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	sql, args, err := builder.
		Update("cards").
		Set("front", card.Front).
		Set("back", card.Back).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": card.ID, "user_id": card.UserID}).
		Suffix("RETURNING id, user_id, deck_id, front, back, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}
	updated := rec.toDomain()
	return &updated, nil
}

// Delete removes a card. The review_states and review_logs rows follow via
// ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM cards WHERE id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ListByDeck returns all cards of a deck in creation order.
func (r *Repo) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	var recs []row
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, listByDeckSQL, userID, deckID); err != nil {
		return nil, fmt.Errorf("list cards by deck: %w", err)
	}

	cards := make([]domain.Card, len(recs))
	for i, rec := range recs {
		cards[i] = rec.toDomain()
	}
	return cards, nil
}

// ListForStudy returns the session card pool: every card of the user (or of
// one deck), each with its review-state ranking fields when one exists.
func (r *Repo) ListForStudy(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]domain.CardForSession, error) {
	var (
		recs []studyRow
		err  error
	)
	if deckID != nil {
		err = pgxscan.Select(ctx, r.q(ctx), &recs, listForStudyByDeckSQL, userID, *deckID)
	} else {
		err = pgxscan.Select(ctx, r.q(ctx), &recs, listForStudySQL, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list cards for study: %w", err)
	}

	pool := make([]domain.CardForSession, len(recs))
	for i, rec := range recs {
		pool[i] = rec.toDomain()
	}
	return pool, nil
}
