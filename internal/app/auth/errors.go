package auth

import "errors"

var (
	ErrInvalidInitData = errors.New("invalid_init_data")
	ErrExpiredInitData = errors.New("expired_init_data")
	ErrInvalidToken    = errors.New("invalid_token")
)
