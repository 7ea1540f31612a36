package store_test

import (
	"context"
	"errors"
	"testing"

	"tg-roulette/internal/store"
	"tg-roulette/internal/testutil"
)

func TestAccountLookupByTelegramID(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	created, err := st.CreateAccount(ctx, "tg-123", "alice", "Alice", "", 1000)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	got, err := st.GetAccountByTelegramID(ctx, "tg-123")
	if err != nil {
		t.Fatalf("get by telegram id: %v", err)
	}
	if got.ID != created.ID || got.Balance != 1000 {
		t.Fatalf("unexpected account: %+v", got)
	}

	if _, err := st.GetAccountByTelegramID(ctx, "tg-999"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateAccountProfileKeepsBalance(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	created, err := st.CreateAccount(ctx, "tg-1", "old", "Old", "Name", 250)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	updated, err := st.UpdateAccountProfile(ctx, created.ID, "new", "New", "Name")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Username != "new" || updated.FirstName != "New" {
		t.Fatalf("unexpected profile: %+v", updated)
	}
	if updated.Balance != 250 {
		t.Fatalf("balance = %d, want 250", updated.Balance)
	}
}
