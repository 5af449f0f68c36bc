package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Errorf("got %v, want %v", got, id)
	}
}

func TestUserIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestUserIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), uuid.Nil)
	if _, ok := UserIDFromCtx(ctx); ok {
		t.Error("expected ok=false for nil UUID")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want %q", got, "req-123")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("absent request id: got %q, want empty", got)
	}
}
