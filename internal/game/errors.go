package game

import "errors"

var (
	ErrInvalidBet          = errors.New("invalid_bet")
	ErrAccountNotFound     = errors.New("account_not_found")
	ErrInsufficientBalance = errors.New("insufficient_balance")
)
