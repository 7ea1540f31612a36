package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TelegramUser is the `user` payload of Telegram WebApp init data.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ParseInitData extracts the user from init data without verifying the
// signature. Callers must verify first unless unsigned auth is allowed.
func ParseInitData(initData string) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}
	raw := values.Get("user")
	if raw == "" {
		return nil, ErrInvalidInitData
	}
	var user TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, ErrInvalidInitData
	}
	if user.ID == 0 {
		return nil, ErrInvalidInitData
	}
	return &user, nil
}

// VerifyInitData checks the WebApp signature: the hash field must equal
// HMAC-SHA256 of the sorted data-check string, keyed with
// HMAC-SHA256("WebAppData", botToken). auth_date older than maxAge is
// rejected to stop replay.
func VerifyInitData(initData, botToken string, maxAge time.Duration) error {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return ErrInvalidInitData
	}
	gotHash := values.Get("hash")
	if gotHash == "" {
		return ErrInvalidInitData
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(gotHash)) {
		return ErrInvalidInitData
	}

	if maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return ErrInvalidInitData
		}
		if time.Since(time.Unix(authDate, 0)) > maxAge {
			return ErrExpiredInitData
		}
	}
	return nil
}

// SignInitData produces the hash Telegram would attach to the given
// unsigned init data. Test helper for building valid payloads.
func SignInitData(initData, botToken string) string {
	values, _ := url.ParseQuery(initData)
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
