package game

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"tg-roulette/internal/ledger"
	"tg-roulette/internal/store"
)

const DefaultMinBet = 10

// Engine turns a validated bet into a settled spin: draw, evaluate,
// apply atomically through the ledger writer. The server result is
// authoritative; clients only display it.
type Engine struct {
	store  *store.Store
	ledger *ledger.Writer
	gen    Generator
	minBet int64
}

type Settlement struct {
	Spin       *store.Spin
	WinAmount  int64
	NewBalance int64
}

func NewEngine(st *store.Store, gen Generator, minBet int64) *Engine {
	if gen == nil {
		gen = NewGenerator()
	}
	if minBet <= 0 {
		minBet = DefaultMinBet
	}
	return &Engine{store: st, ledger: ledger.New(st), gen: gen, minBet: minBet}
}

func (e *Engine) MinBet() int64 { return e.minBet }

// Ledger exposes the writer used for settlement so callers can share
// it for top-ups and entry listings.
func (e *Engine) Ledger() *ledger.Writer { return e.ledger }

// Settle checks preconditions in order (bet floor, account existence,
// balance), draws the outcome, and commits all effects as one
// transaction. Business failures are terminal; nothing is retried here.
func (e *Engine) Settle(ctx context.Context, accountID string, bet int64) (*Settlement, error) {
	if bet < e.minBet {
		return nil, ErrInvalidBet
	}
	acc, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if acc.Balance < bet {
		return nil, ErrInsufficientBalance
	}

	result := e.gen.Draw()
	isWin := IsWin(result)
	var winAmount int64
	if isWin {
		winAmount = WinAmount(bet)
	}

	spin, newBalance, err := e.ledger.ApplySettlement(ctx, store.SettleParams{
		AccountID: accountID,
		BetAmount: bet,
		Result:    result,
		IsWin:     isWin,
		WinAmount: winAmount,
	})
	if err != nil {
		// The balance re-check inside the transaction is authoritative;
		// a concurrent spin may have drained the account since the
		// pre-check above.
		if errors.Is(err, store.ErrInsufficientFunds) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	log.Debug().
		Str("account_id", accountID).
		Int("result", result).
		Bool("is_win", isWin).
		Int64("bet", bet).
		Int64("win", winAmount).
		Int64("balance", newBalance).
		Msg("spin settled")

	return &Settlement{Spin: spin, WinAmount: winAmount, NewBalance: newBalance}, nil
}
