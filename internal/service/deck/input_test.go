package deck

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	fields := make([]string, len(vErr.Errors))
	for i, fe := range vErr.Errors {
		fields[i] = fe.Field
	}
	return fields
}

func TestCreateDeckInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		input      CreateDeckInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: CreateDeckInput{Name: "Spanish", Description: "B1 vocab"},
		},
		{
			name:       "empty name",
			input:      CreateDeckInput{Name: "   "},
			wantFields: []string{"name"},
		},
		{
			name:       "name too long",
			input:      CreateDeckInput{Name: strings.Repeat("x", maxNameLen+1)},
			wantFields: []string{"name"},
		},
		{
			name: "description too long",
			input: CreateDeckInput{
				Name:        "ok",
				Description: strings.Repeat("x", maxDescLen+1),
			},
			wantFields: []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			got := fieldsOf(t, err)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", got, tt.wantFields)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("fields = %v, want %v", got, tt.wantFields)
				}
			}
		})
	}
}

func TestCreateCardInput_Validate_CollectsAllErrors(t *testing.T) {
	input := CreateCardInput{DeckID: uuid.Nil, Front: "", Back: ""}

	got := fieldsOf(t, input.Validate())
	want := []string{"deck_id", "front", "back"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
}

func TestUpdateCardInput_Validate(t *testing.T) {
	valid := UpdateCardInput{CardID: uuid.New(), Front: "hola", Back: "hello"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	long := UpdateCardInput{
		CardID: uuid.New(),
		Front:  strings.Repeat("x", maxFaceLen+1),
		Back:   "ok",
	}
	got := fieldsOf(t, long.Validate())
	if len(got) != 1 || got[0] != "front" {
		t.Errorf("fields = %v, want [front]", got)
	}
}
