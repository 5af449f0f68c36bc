// Package reviewlog implements the ReviewLog repository using PostgreSQL.
package reviewlog

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
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	CardID     uuid.UUID `db:"card_id"`
	Mode       string    `db:"mode"`
	Correct    bool      `db:"correct"`
	UsedHint   bool      `db:"used_hint"`
	PrevLevel  int       `db:"prev_level"`
	NewLevel   int       `db:"new_level"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

func (r row) toDomain() *domain.ReviewLog {
	return &domain.ReviewLog{
		ID:         r.ID,
		UserID:     r.UserID,
		CardID:     r.CardID,
		Mode:       domain.StudyMode(r.Mode),
		Correct:    r.Correct,
		UsedHint:   r.UsedHint,
		PrevLevel:  r.PrevLevel,
		NewLevel:   r.NewLevel,
		ReviewedAt: r.ReviewedAt,
	}
}

const countSinceSQL = `
SELECT count(*) FROM review_logs
WHERE user_id = $1 AND reviewed_at >= $2`

const listByCardSQL = `
SELECT id, user_id, card_id, mode, correct, used_hint, prev_level, new_level, reviewed_at
FROM review_logs
WHERE user_id = $1 AND card_id = $2
ORDER BY reviewed_at DESC
LIMIT $3`

// Repo provides review-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review-log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create appends one answer event.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	sql, args, err := builder.
		Insert("review_logs").
		Columns("id", "user_id", "card_id", "mode", "correct", "used_hint",
			"prev_level", "new_level", "reviewed_at").
		Values(log.ID, log.UserID, log.CardID, log.Mode.String(), log.Correct, log.UsedHint,
			log.PrevLevel, log.NewLevel, log.ReviewedAt).
		Suffix("RETURNING id, user_id, card_id, mode, correct, used_hint, prev_level, new_level, reviewed_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review log", log.ID)
	}
	return rec.toDomain(), nil
}

// CountSince returns the number of answers recorded at or after the given
// instant. With `since` at day start this is the "reviews today" figure.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, countSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews since: %w", err)
	}
	return count, nil
}

// ListByCard returns the most recent answers for one card, newest first.
func (r *Repo) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	var recs []row
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, listByCardSQL, userID, cardID, limit); err != nil {
		return nil, fmt.Errorf("list review logs: %w", err)
	}

	logs := make([]*domain.ReviewLog, len(recs))
	for i, rec := range recs {
		logs[i] = rec.toDomain()
	}
	return logs, nil
}
