// Package reviewstate implements the ReviewState repository using PostgreSQL.
// Fixed queries are raw SQL consts; writes go through squirrel builders.
package reviewstate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/adapter/postgres"
	"github.com/grajto/vocab-trainer/internal/domain"
)

const table = "review_states"

var columns = []string{
	"id", "user_id", "card_id", "level", "due_at",
	"total_correct", "total_wrong", "today_correct_count", "today_wrong_count",
	"last_reviewed_at", "last_level_up_at", "introduced_at",
	"created_at", "updated_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// row mirrors the review_states table for scany.
type row struct {
	ID                uuid.UUID  `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	CardID            uuid.UUID  `db:"card_id"`
	Level             int        `db:"level"`
	DueAt             time.Time  `db:"due_at"`
	TotalCorrect      int        `db:"total_correct"`
	TotalWrong        int        `db:"total_wrong"`
	TodayCorrectCount int        `db:"today_correct_count"`
	TodayWrongCount   int        `db:"today_wrong_count"`
	LastReviewedAt    *time.Time `db:"last_reviewed_at"`
	LastLevelUpAt     *time.Time `db:"last_level_up_at"`
	IntroducedAt      time.Time  `db:"introduced_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.ReviewState {
	return &domain.ReviewState{
		ID:                r.ID,
		UserID:            r.UserID,
		CardID:            r.CardID,
		Level:             r.Level,
		DueAt:             r.DueAt,
		TotalCorrect:      r.TotalCorrect,
		TotalWrong:        r.TotalWrong,
		TodayCorrectCount: r.TodayCorrectCount,
		TodayWrongCount:   r.TodayWrongCount,
		LastReviewedAt:    r.LastReviewedAt,
		LastLevelUpAt:     r.LastLevelUpAt,
		IntroducedAt:      r.IntroducedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

const getByCardIDForUpdateSQL = `
SELECT id, user_id, card_id, level, due_at,
       total_correct, total_wrong, today_correct_count, today_wrong_count,
       last_reviewed_at, last_level_up_at, introduced_at, created_at, updated_at
FROM review_states
WHERE user_id = $1 AND card_id = $2
FOR UPDATE`

const countIntroducedSinceSQL = `
SELECT count(*) FROM review_states
WHERE user_id = $1 AND introduced_at >= $2`

const countDueSQL = `
SELECT count(*) FROM review_states
WHERE user_id = $1 AND due_at <= $2`

const countByLevelSQL = `
SELECT level, count(*) AS count
FROM review_states
WHERE user_id = $1
GROUP BY level`

// Repo provides review-state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review-state repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByCardIDForUpdate returns the review state for a card, row-locked for
// the duration of the surrounding transaction. Outside a transaction the
// lock is released immediately, which defeats its purpose; callers must
// run this inside TxManager.RunInTx.
func (r *Repo) GetByCardIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error) {
	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, getByCardIDForUpdateSQL, userID, cardID); err != nil {
		return nil, postgres.MapError(err, "review state for card", cardID)
	}
	return rec.toDomain(), nil
}

// Create inserts a new review state and returns it with DB-assigned timestamps.
func (r *Repo) Create(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error) {
	sql, args, err := builder.
		Insert(table).
		Columns("id", "user_id", "card_id", "level", "due_at",
			"total_correct", "total_wrong", "today_correct_count", "today_wrong_count",
			"last_reviewed_at", "last_level_up_at", "introduced_at").
		Values(state.ID, state.UserID, state.CardID, state.Level, state.DueAt,
			state.TotalCorrect, state.TotalWrong, state.TodayCorrectCount, state.TodayWrongCount,
			state.LastReviewedAt, state.LastLevelUpAt, state.IntroducedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review state", state.ID)
	}
	return rec.toDomain(), nil
}

// Update persists the full next state after an answer.
func (r *Repo) Update(ctx context.Context, state *domain.ReviewState) (*domain.ReviewState, error) {
	sql, args, err := builder.
		Update(table).
		Set("level", state.Level).
		Set("due_at", state.DueAt).
		Set("total_correct", state.TotalCorrect).
		Set("total_wrong", state.TotalWrong).
		Set("today_correct_count", state.TodayCorrectCount).
		Set("today_wrong_count", state.TodayWrongCount).
		Set("last_reviewed_at", state.LastReviewedAt).
		Set("last_level_up_at", state.LastLevelUpAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": state.ID, "user_id": state.UserID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review state", state.ID)
	}
	return rec.toDomain(), nil
}

// CountIntroducedSince returns how many cards got their first review state
// at or after the given instant. With `since` set to the start of the current
// day this is the "new cards introduced today" figure the daily cap needs.
func (r *Repo) CountIntroducedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, countIntroducedSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count introduced since: %w", err)
	}
	return count, nil
}

// CountDue returns the number of review states due at the given time.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, countDueSQL, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due: %w", err)
	}
	return count, nil
}

// CountByLevel returns review-state counts grouped by mastery level.
func (r *Repo) CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error) {
	rows, err := r.q(ctx).Query(ctx, countByLevelSQL, userID)
	if err != nil {
		return domain.LevelCounts{}, fmt.Errorf("count by level: %w", err)
	}
	defer rows.Close()

	var counts domain.LevelCounts
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return domain.LevelCounts{}, fmt.Errorf("scan level count: %w", err)
		}
		switch level {
		case 1:
			counts.Level1 = count
		case 2:
			counts.Level2 = count
		case 3:
			counts.Level3 = count
		case 4:
			counts.Level4 = count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.LevelCounts{}, fmt.Errorf("iterate level counts: %w", err)
	}
	return counts, nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
