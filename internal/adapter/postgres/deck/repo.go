// Package deck implements the Deck repository using PostgreSQL.
package deck

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

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Deck {
	return domain.Deck{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

const getByIDSQL = `
SELECT id, user_id, name, description, created_at, updated_at
FROM decks
WHERE id = $1 AND user_id = $2`

const listByUserSQL = `
SELECT id, user_id, name, description, created_at, updated_at
FROM decks
WHERE user_id = $1
ORDER BY name ASC`

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a deck by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, getByIDSQL, deckID, userID); err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	deck := rec.toDomain()
	return &deck, nil
}

// Create inserts a new deck. Deck names are unique per user.
func (r *Repo) Create(ctx context.Context, deck *domain.Deck) (*domain.Deck, error) {
	sql, args, err := builder.
		Insert("decks").
		Columns("id", "user_id", "name", "description").
		Values(deck.ID, deck.UserID, deck.Name, deck.Description).
		Suffix("RETURNING id, user_id, name, description, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "deck", deck.ID)
	}
	created := rec.toDomain()
	return &created, nil
}

// Update persists a deck's name and description.
func (r *Repo) Update(ctx context.Context, deck *domain.Deck) (*domain.Deck, error) {
	sql, args, err := builder.
		Update("decks").
		Set("name", deck.Name).
		Set("description", deck.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": deck.ID, "user_id": deck.UserID}).
		Suffix("RETURNING id, user_id, name, description, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "deck", deck.ID)
	}
	updated := rec.toDomain()
	return &updated, nil
}

// Delete removes a deck; its cards follow via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM decks WHERE id = $1 AND user_id = $2`, deckID, userID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

// ListByUser returns all decks of a user ordered by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	var recs []row
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, listByUserSQL, userID); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]domain.Deck, len(recs))
	for i, rec := range recs {
		decks[i] = rec.toDomain()
	}
	return decks, nil
}
