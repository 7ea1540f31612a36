package ledger

import (
	"context"

	"tg-roulette/internal/store"
)

// Writer names the money movements this system performs. All of them
// go through the store's transactional primitives; nothing here writes
// partial state.
type Writer struct {
	Store *store.Store
}

func New(s *store.Store) *Writer {
	return &Writer{Store: s}
}

// ApplySettlement commits one spin: spin record, balance move, BET
// entry, and the WIN entry on winning spins, atomically.
func (w *Writer) ApplySettlement(ctx context.Context, p store.SettleParams) (*store.Spin, int64, error) {
	return w.Store.SettleSpin(ctx, p)
}

// Topup credits an account outside of play (admin surface).
func (w *Writer) Topup(ctx context.Context, accountID string, amount int64) (int64, error) {
	return w.Store.Credit(ctx, accountID, amount, store.EntryTopup, "Admin top-up")
}

func (w *Writer) Entries(ctx context.Context, f store.LedgerFilter, limit, offset int) ([]store.LedgerEntry, error) {
	return w.Store.ListLedgerEntries(ctx, f, limit, offset)
}
