package repository

import (
	"context"
	"testing"
	"time"

	"organic-store/internal/data/entity"

	"go.uber.org/zap"
)

func TestSessionRepo_CreateFindDelete(t *testing.T) {
	repo := NewMemorySessionRepository(zap.NewNop())
	ctx := context.Background()

	session := entity.Session{
		Token:     "tok-1",
		Kind:      entity.KindUser,
		Email:     "a@b.com",
		Name:      "Ann",
		CreatedAt: time.Now(),
	}

	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok := repo.Find(ctx, "tok-1")
	if !ok {
		t.Fatal("expected session to be found")
	}
	if got.Email != "a@b.com" || got.IsAdmin {
		t.Fatalf("unexpected session: %+v", got)
	}

	repo.Delete(ctx, "tok-1")

	if _, ok := repo.Find(ctx, "tok-1"); ok {
		t.Fatal("expected session to be gone after delete")
	}
}

func TestSessionRepo_DuplicateTokenRejected(t *testing.T) {
	repo := NewMemorySessionRepository(zap.NewNop())
	ctx := context.Background()

	first := entity.Session{Token: "tok-1", Kind: entity.KindUser, Email: "a@b.com"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := entity.Session{Token: "tok-1", Kind: entity.KindAdmin, Email: "admin", IsAdmin: true}
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("expected duplicate token to be rejected")
	}

	// The original session must be untouched
	got, ok := repo.Find(ctx, "tok-1")
	if !ok || got.IsAdmin {
		t.Fatalf("original session clobbered: %+v ok=%v", got, ok)
	}
}

func TestSessionRepo_DeleteUnknownTokenIsNoop(t *testing.T) {
	repo := NewMemorySessionRepository(zap.NewNop())
	repo.Delete(context.Background(), "never-existed")
}
