package deck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/grajto/vocab-trainer/internal/adapter/postgres/testhelper"
	"github.com/grajto/vocab-trainer/internal/domain"
)

var deckColumns = []string{"id", "user_id", "name", "description", "created_at", "updated_at"}

func TestRepo_Create(t *testing.T) {
	userID := uuid.New()
	deckID := uuid.New()
	now := time.Now()

	t.Run("created", func(t *testing.T) {
		mock := testhelper.NewMockPool(t)
		repo := New(mock)

		mock.ExpectQuery(`INSERT INTO decks`).
			WithArgs(deckID, userID, "Basics", "Starter vocabulary").
			WillReturnRows(pgxmock.NewRows(deckColumns).
				AddRow(deckID, userID, "Basics", "Starter vocabulary", now, now))

		created, err := repo.Create(context.Background(), &domain.Deck{
			ID:          deckID,
			UserID:      userID,
			Name:        "Basics",
			Description: "Starter vocabulary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Basics" {
			t.Errorf("created = %+v", created)
		}

		testhelper.ExpectationsWereMet(t, mock)
	})

	t.Run("duplicate name maps to already exists", func(t *testing.T) {
		mock := testhelper.NewMockPool(t)
		repo := New(mock)

		mock.ExpectQuery(`INSERT INTO decks`).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.Deck{ID: deckID, UserID: userID, Name: "Basics"})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("error = %v, want ErrAlreadyExists", err)
		}

		testhelper.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_ListByUser(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	mock := testhelper.NewMockPool(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT (.+) FROM decks`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(deckColumns).
			AddRow(uuid.New(), userID, "Animals", "", now, now).
			AddRow(uuid.New(), userID, "Travel", "", now, now))

	decks, err := repo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("got %d decks, want 2", len(decks))
	}
	if decks[0].Name != "Animals" || decks[1].Name != "Travel" {
		t.Errorf("decks = %+v", decks)
	}

	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_Delete_Missing(t *testing.T) {
	mock := testhelper.NewMockPool(t)
	repo := New(mock)

	mock.ExpectExec(`DELETE FROM decks`).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	testhelper.ExpectationsWereMet(t, mock)
}
