package store

import (
	"context"
)

// ListSpins returns the account's spins, most recent first.
func (s *Store) ListSpins(ctx context.Context, accountID string, limit int) ([]Spin, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT id, account_id, bet_amount, result, is_win, win_amount, created_at
		FROM spins
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Spin{}
	for rows.Next() {
		var sp Spin
		if err := rows.Scan(&sp.ID, &sp.AccountID, &sp.BetAmount, &sp.Result, &sp.IsWin, &sp.WinAmount, &sp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// GetSpinStats aggregates over the account's spin records. Win totals
// only count winning spins; bet totals count every spin.
func (s *Store) GetSpinStats(ctx context.Context, accountID string) (*SpinStats, error) {
	var st SpinStats
	err := s.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_win),
			COALESCE(SUM(bet_amount), 0),
			COALESCE(SUM(win_amount) FILTER (WHERE is_win), 0)
		FROM spins
		WHERE account_id = $1`, accountID).Scan(
		&st.TotalGames, &st.TotalWins, &st.TotalBetAmount, &st.TotalWinAmount)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
