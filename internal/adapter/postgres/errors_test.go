package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grajto/vocab-trainer/internal/domain"
)

func TestMapError(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			in:   pgx.ErrNoRows,
			want: domain.ErrNotFound,
		},
		{
			name: "unique violation becomes already exists",
			in:   &pgconn.PgError{Code: "23505"},
			want: domain.ErrAlreadyExists,
		},
		{
			name: "foreign key violation becomes not found",
			in:   &pgconn.PgError{Code: "23503"},
			want: domain.ErrNotFound,
		},
		{
			name: "check violation becomes validation",
			in:   &pgconn.PgError{Code: "23514"},
			want: domain.ErrValidation,
		},
		{
			name: "deadline exceeded stays a deadline error",
			in:   context.DeadlineExceeded,
			want: context.DeadlineExceeded,
		},
		{
			name: "canceled stays canceled",
			in:   context.Canceled,
			want: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in, "card", id)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("MapError() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError() = %v, want wrapped %v", got, tt.want)
			}
		})
	}
}

func TestMapError_Unknown(t *testing.T) {
	base := errors.New("connection reset")
	got := MapError(base, "deck", uuid.New())
	if !errors.Is(got, base) {
		t.Errorf("MapError() = %v, want wrapped original", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Errorf("unknown error must not map to not found")
	}
}
