package games

import "time"

type PlayResponse struct {
	SpinID     string `json:"spinId"`
	Result     int    `json:"result"`
	IsWin      bool   `json:"isWin"`
	BetAmount  int64  `json:"betAmount"`
	WinAmount  int64  `json:"winAmount"`
	NewBalance int64  `json:"newBalance"`
	Message    string `json:"message"`
}

type HistoryItem struct {
	ID        string    `json:"id"`
	BetAmount int64     `json:"betAmount"`
	Result    int       `json:"result"`
	IsWin     bool      `json:"isWin"`
	WinAmount *int64    `json:"winAmount"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

type StatsResponse struct {
	TotalGames     int64   `json:"totalGames"`
	TotalWins      int64   `json:"totalWins"`
	WinRate        float64 `json:"winRate"`
	TotalBetAmount int64   `json:"totalBetAmount"`
	TotalWinAmount int64   `json:"totalWinAmount"`
	NetProfit      int64   `json:"netProfit"`
}
