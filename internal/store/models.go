package store

import "time"

type Account struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Spin is one resolved bet-and-outcome event. Immutable once written.
type Spin struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	BetAmount int64     `json:"bet_amount"`
	Result    int       `json:"result"`
	IsWin     bool      `json:"is_win"`
	WinAmount *int64    `json:"win_amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger entry kinds. One BET entry per spin, one WIN entry on winning
// spins, TOPUP only from the admin surface.
const (
	EntryBet   = "BET"
	EntryWin   = "WIN"
	EntryTopup = "TOPUP"
)

type LedgerEntry struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type SpinStats struct {
	TotalGames     int64
	TotalWins      int64
	TotalBetAmount int64
	TotalWinAmount int64
}
