package games

import (
	"context"
	"math"
	"time"

	"tg-roulette/internal/game"
	"tg-roulette/internal/metrics"
	"tg-roulette/internal/spectate"
	"tg-roulette/internal/store"
)

const (
	winMessage  = "Поздравляем! Вы выиграли!"
	lossMessage = "Удача в следующий раз!"
)

const maxHistoryLimit = 100

type Service struct {
	engine *game.Engine
	store  *store.Store
	hub    *spectate.Hub
}

// NewService wires the settlement engine to its read models. hub may be
// nil when no spectator feed is wanted.
func NewService(engine *game.Engine, st *store.Store, hub *spectate.Hub) *Service {
	return &Service{engine: engine, store: st, hub: hub}
}

func (s *Service) Play(ctx context.Context, accountID string, bet int64) (*PlayResponse, error) {
	started := time.Now()
	res, err := s.engine.Settle(ctx, accountID, bet)
	if err != nil {
		switch err {
		case game.ErrInvalidBet, game.ErrAccountNotFound, game.ErrInsufficientBalance:
			metrics.RecordRejected(err.Error())
		}
		return nil, err
	}
	metrics.RecordSpin(res.Spin.IsWin, bet, res.WinAmount, started)

	if s.hub != nil {
		username := ""
		if acc, err := s.store.GetAccount(ctx, accountID); err == nil {
			username = acc.Username
		}
		s.hub.Publish(spectate.SpinEvent{
			SpinID:    res.Spin.ID,
			Username:  username,
			BetAmount: bet,
			Result:    res.Spin.Result,
			IsWin:     res.Spin.IsWin,
			WinAmount: res.WinAmount,
			CreatedAt: res.Spin.CreatedAt.UnixMilli(),
		})
	}

	message := lossMessage
	if res.Spin.IsWin {
		message = winMessage
	}
	return &PlayResponse{
		SpinID:     res.Spin.ID,
		Result:     res.Spin.Result,
		IsWin:      res.Spin.IsWin,
		BetAmount:  bet,
		WinAmount:  res.WinAmount,
		NewBalance: res.NewBalance,
		Message:    message,
	}, nil
}

func (s *Service) History(ctx context.Context, accountID string, limit int) (*HistoryResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	spins, err := s.store.ListSpins(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]HistoryItem, 0, len(spins))
	for _, sp := range spins {
		items = append(items, HistoryItem{
			ID:        sp.ID,
			BetAmount: sp.BetAmount,
			Result:    sp.Result,
			IsWin:     sp.IsWin,
			WinAmount: sp.WinAmount,
			CreatedAt: sp.CreatedAt,
		})
	}
	return &HistoryResponse{Items: items}, nil
}

func (s *Service) Stats(ctx context.Context, accountID string) (*StatsResponse, error) {
	st, err := s.store.GetSpinStats(ctx, accountID)
	if err != nil {
		return nil, err
	}
	var winRate float64
	if st.TotalGames > 0 {
		winRate = math.Round(float64(st.TotalWins)/float64(st.TotalGames)*100*100) / 100
	}
	return &StatsResponse{
		TotalGames:     st.TotalGames,
		TotalWins:      st.TotalWins,
		WinRate:        winRate,
		TotalBetAmount: st.TotalBetAmount,
		TotalWinAmount: st.TotalWinAmount,
		NetProfit:      st.TotalWinAmount - st.TotalBetAmount,
	}, nil
}
