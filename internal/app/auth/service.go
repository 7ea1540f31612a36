package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"tg-roulette/internal/config"
	"tg-roulette/internal/store"
)

type Service struct {
	store *store.Store
	cfg   config.ServerConfig
}

func NewService(st *store.Store, cfg config.ServerConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

type AccountView struct {
	ID         string `json:"id"`
	TelegramID string `json:"telegramId"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Balance    int64  `json:"balance"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  AccountView `json:"user"`
}

// Login verifies Telegram init data, provisions the account on first
// visit, refreshes the profile fields on later visits, and issues the
// session token.
func (s *Service) Login(ctx context.Context, initData string) (*LoginResponse, error) {
	if !s.cfg.AllowUnsignedAuth {
		maxAge := time.Duration(s.cfg.AuthMaxAgeMins) * time.Minute
		if err := VerifyInitData(initData, s.cfg.TelegramBotToken, maxAge); err != nil {
			return nil, err
		}
	}
	tgUser, err := ParseInitData(initData)
	if err != nil {
		return nil, err
	}

	telegramID := strconv.FormatInt(tgUser.ID, 10)
	acc, err := s.store.GetAccountByTelegramID(ctx, telegramID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		acc, err = s.store.CreateAccount(ctx, telegramID, tgUser.Username, tgUser.FirstName, tgUser.LastName, s.cfg.InitialBalance)
		if err != nil {
			return nil, err
		}
		log.Info().Str("account_id", acc.ID).Str("telegram_id", telegramID).Msg("account provisioned")
	case err != nil:
		return nil, err
	default:
		acc, err = s.store.UpdateAccountProfile(ctx, acc.ID, tgUser.Username, tgUser.FirstName, tgUser.LastName)
		if err != nil {
			return nil, err
		}
	}

	ttl := time.Duration(s.cfg.JWTTTLHours) * time.Hour
	token, err := MintToken(s.cfg.JWTSecret, acc.ID, ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: accountView(acc)}, nil
}

type ProfileResponse struct {
	User         AccountView         `json:"user"`
	RecentSpins  []store.Spin        `json:"recentSpins"`
	RecentLedger []store.LedgerEntry `json:"recentLedger"`
}

// Profile returns the account with its recent activity.
func (s *Service) Profile(ctx context.Context, accountID string) (*ProfileResponse, error) {
	acc, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	spins, err := s.store.ListSpins(ctx, accountID, 10)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListLedgerEntries(ctx, store.LedgerFilter{AccountID: accountID}, 10, 0)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{User: accountView(acc), RecentSpins: spins, RecentLedger: entries}, nil
}

func accountView(a *store.Account) AccountView {
	return AccountView{
		ID:         a.ID,
		TelegramID: a.TelegramID,
		Username:   a.Username,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Balance:    a.Balance,
	}
}
