package game_test

import (
	"context"
	"errors"
	"testing"

	"tg-roulette/internal/game"
	"tg-roulette/internal/store"
	"tg-roulette/internal/testutil"
)

// fixedGenerator always lands on the same sector.
type fixedGenerator int

func (g fixedGenerator) Draw() int { return int(g) }

func TestSettleForcedWin(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	acc, err := st.CreateAccount(ctx, "tg-win", "p", "", "", 100)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	eng := game.NewEngine(st, fixedGenerator(14), 10)
	res, err := eng.Settle(ctx, acc.ID, 50)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !res.Spin.IsWin || res.Spin.Result != 14 {
		t.Fatalf("unexpected spin: %+v", res.Spin)
	}
	if res.WinAmount != 75 || res.NewBalance != 125 {
		t.Fatalf("win/balance = %d/%d, want 75/125", res.WinAmount, res.NewBalance)
	}

	entries, err := st.ListLedgerEntries(ctx, store.LedgerFilter{AccountID: acc.ID}, 10, 0)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected BET and WIN entries, got %d", len(entries))
	}
}

func TestSettleForcedLoss(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	acc, err := st.CreateAccount(ctx, "tg-loss", "p", "", "", 100)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	eng := game.NewEngine(st, fixedGenerator(7), 10)
	res, err := eng.Settle(ctx, acc.ID, 50)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if res.Spin.IsWin || res.WinAmount != 0 || res.NewBalance != 50 {
		t.Fatalf("unexpected settlement: %+v", res)
	}

	entries, err := st.ListLedgerEntries(ctx, store.LedgerFilter{AccountID: acc.ID}, 10, 0)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != store.EntryBet {
		t.Fatalf("expected only the BET entry, got %+v", entries)
	}
}

func TestSettlePreconditionOrder(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	eng := game.NewEngine(st, fixedGenerator(14), 10)

	// Bet floor is checked before the account lookup.
	if _, err := eng.Settle(ctx, "missing", 5); !errors.Is(err, game.ErrInvalidBet) {
		t.Fatalf("err = %v, want ErrInvalidBet", err)
	}
	if _, err := eng.Settle(ctx, "missing", 50); !errors.Is(err, game.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}

	acc, err := st.CreateAccount(ctx, "tg-poor", "p", "", "", 20)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if _, err := eng.Settle(ctx, acc.ID, 50); !errors.Is(err, game.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	// Rejected bets leave no trace.
	bal, err := st.GetAccountBalance(ctx, acc.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 20 {
		t.Fatalf("balance = %d, want 20", bal)
	}
	spins, err := st.ListSpins(ctx, acc.ID, 10)
	if err != nil {
		t.Fatalf("list spins: %v", err)
	}
	if len(spins) != 0 {
		t.Fatalf("expected no spins, got %d", len(spins))
	}
}
