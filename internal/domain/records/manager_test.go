package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"petpal/internal/adapters/storage/memory"
)

type note struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (n note) EntityID() string     { return n.ID }
func (n note) EntityUserID() string { return n.UserID }

func newTestManager(less func(a, b note) bool) *Manager[note] {
	return NewManager[note](memory.NewStore(), "notes", less)
}

func TestListForUser_ScopesByOwner(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(nil)

	seed := []note{
		{ID: "1", UserID: "alice", Title: "a1"},
		{ID: "2", UserID: "bob", Title: "b1"},
		{ID: "3", UserID: "alice", Title: "a2"},
	}
	for _, n := range seed {
		if err := mgr.Append(ctx, n); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := mgr.ListForUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected list for alice: %+v", got)
	}

	got, err = mgr.ListForUser(ctx, "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected list for bob: %+v", got)
	}

	// Sin usuario => lista vacía, nunca registros ajenos
	got, err = mgr.ListForUser(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list without user, got %+v", got)
	}
}

func TestListForUser_AppliesSortOrder(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(func(a, b note) bool { return a.Title < b.Title })

	for _, n := range []note{
		{ID: "1", UserID: "u", Title: "zz"},
		{ID: "2", UserID: "u", Title: "aa"},
	} {
		if err := mgr.Append(ctx, n); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := mgr.ListForUser(ctx, "u")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].Title != "aa" || got[1].Title != "zz" {
		t.Fatalf("expected sorted list, got %+v", got)
	}
}

func TestUpdate_MergesAndRetainsOtherFields(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(nil)

	orig := note{ID: "1", UserID: "u", Title: "before", Body: "keep me"}
	if err := mgr.Append(ctx, orig); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := mgr.Update(ctx, "1", func(n note) note {
		n.Title = "after"
		return n
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" || updated.Body != "keep me" || updated.UserID != "u" {
		t.Fatalf("merge lost fields: %+v", updated)
	}

	// Read-back idéntico salvo el campo tocado
	got, err := mgr.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != updated {
		t.Fatalf("persisted record differs: %+v vs %+v", got, updated)
	}
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	mgr := newTestManager(nil)

	_, err := mgr.Update(context.Background(), "nope", func(n note) note { return n })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(nil)

	if err := mgr.Append(ctx, note{ID: "1", UserID: "u"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := mgr.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := mgr.ListForUser(ctx, "u")
	if len(got) != 0 {
		t.Fatalf("expected record gone, got %+v", got)
	}

	// Segundo delete del mismo id: no-op, sin error
	if err := mgr.Delete(ctx, "1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestNewID_IsCreationTimestampMillis(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
	if got := NewID(now); got != "1704164645678" {
		t.Fatalf("unexpected id: %s", got)
	}
}
