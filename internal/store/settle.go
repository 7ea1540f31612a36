package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SettleParams carries an already-evaluated spin into the atomic write.
type SettleParams struct {
	AccountID string
	BetAmount int64
	Result    int
	IsWin     bool
	WinAmount int64
}

// SettleSpin applies one settlement as a single transaction: lock the
// account row, re-check the balance, insert the spin record, move the
// balance, and write the BET (and WIN) ledger entries. On any error
// nothing is visible; ErrInsufficientFunds means the locked balance
// lost a race and could no longer cover the bet.
func (s *Store) SettleSpin(ctx context.Context, p SettleParams) (*Spin, int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	if err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, p.AccountID).Scan(&bal); err != nil {
		return nil, 0, mapNotFound(err)
	}
	if bal < p.BetAmount {
		return nil, 0, ErrInsufficientFunds
	}

	delta := -p.BetAmount
	if p.IsWin {
		delta = p.WinAmount - p.BetAmount
	}
	newBal := bal + delta

	spin := &Spin{
		ID:        NewID(),
		AccountID: p.AccountID,
		BetAmount: p.BetAmount,
		Result:    p.Result,
		IsWin:     p.IsWin,
	}
	if p.IsWin {
		win := p.WinAmount
		spin.WinAmount = &win
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO spins (id, account_id, bet_amount, result, is_win, win_amount)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		spin.ID, spin.AccountID, spin.BetAmount, spin.Result, spin.IsWin, spin.WinAmount,
	).Scan(&spin.CreatedAt)
	if err != nil {
		return nil, 0, err
	}

	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, newBal, p.AccountID); err != nil {
		return nil, 0, err
	}

	betDesc := fmt.Sprintf("Roulette bet - Result: %d", p.Result)
	if err := insertLedgerEntry(ctx, tx, p.AccountID, EntryBet, -p.BetAmount, betDesc); err != nil {
		return nil, 0, err
	}
	if p.IsWin {
		winDesc := fmt.Sprintf("Roulette win - Result: %d", p.Result)
		if err := insertLedgerEntry(ctx, tx, p.AccountID, EntryWin, p.WinAmount, winDesc); err != nil {
			return nil, 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}
	return spin, newBal, nil
}

// Credit adds funds outside of a spin (admin top-up). Same row-lock
// discipline as settlement.
func (s *Store) Credit(ctx context.Context, accountID string, amount int64, kind, description string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive")
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	if err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	newBal := bal + amount
	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, newBal, accountID); err != nil {
		return 0, err
	}
	if err := insertLedgerEntry(ctx, tx, accountID, kind, amount, description); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

func insertLedgerEntry(ctx context.Context, tx pgx.Tx, accountID, kind string, amount int64, description string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO ledger_entries (id, account_id, kind, amount, description)
		VALUES ($1,$2,$3,$4,$5)`,
		NewID(), accountID, kind, amount, description)
	return err
}
