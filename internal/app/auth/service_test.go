package auth_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"tg-roulette/internal/app/auth"
	"tg-roulette/internal/config"
	"tg-roulette/internal/testutil"
)

const botToken = "12345:test-token"

func serviceConfig() config.ServerConfig {
	return config.ServerConfig{
		TelegramBotToken: botToken,
		AuthMaxAgeMins:   60,
		JWTSecret:        "test-secret",
		JWTTTLHours:      1,
		InitialBalance:   1000,
		MinBet:           10,
	}
}

func initDataFor(id int64, username, firstName string) string {
	v := url.Values{}
	v.Set("user", fmt.Sprintf(`{"id":%d,"username":%q,"first_name":%q}`, id, username, firstName))
	v.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
	v.Set("hash", auth.SignInitData(v.Encode(), botToken))
	return v.Encode()
}

func TestLoginProvisionsAccount(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	svc := auth.NewService(st, serviceConfig())
	ctx := context.Background()

	resp, err := svc.Login(ctx, initDataFor(777, "bob", "Bob"))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.Balance != 1000 {
		t.Fatalf("balance = %d, want 1000", resp.User.Balance)
	}
	if resp.User.TelegramID != "777" || resp.User.Username != "bob" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	sub, err := auth.ParseToken("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if sub != resp.User.ID {
		t.Fatalf("token subject = %q, want %q", sub, resp.User.ID)
	}
}

func TestLoginUpdatesProfileOnReturn(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	svc := auth.NewService(st, serviceConfig())
	ctx := context.Background()

	first, err := svc.Login(ctx, initDataFor(778, "carol", "Carol"))
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, initDataFor(778, "carol_new", "Caroline"))
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("account id changed: %q vs %q", second.User.ID, first.User.ID)
	}
	if second.User.Username != "carol_new" || second.User.FirstName != "Caroline" {
		t.Fatalf("profile not refreshed: %+v", second.User)
	}
	if second.User.Balance != first.User.Balance {
		t.Fatalf("balance changed on login: %d vs %d", second.User.Balance, first.User.Balance)
	}
}

func TestLoginRejectsBadSignature(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	svc := auth.NewService(st, serviceConfig())

	v := url.Values{}
	v.Set("user", `{"id":779,"username":"eve"}`)
	v.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
	v.Set("hash", "deadbeef")
	if _, err := svc.Login(context.Background(), v.Encode()); err == nil {
		t.Fatal("expected signature rejection")
	}
}

func TestProfileReturnsRecentActivity(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	svc := auth.NewService(st, serviceConfig())
	ctx := context.Background()

	resp, err := svc.Login(ctx, initDataFor(780, "dave", "Dave"))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	profile, err := svc.Profile(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.User.ID != resp.User.ID {
		t.Fatalf("profile user = %q, want %q", profile.User.ID, resp.User.ID)
	}
	if len(profile.RecentSpins) != 0 {
		t.Fatalf("expected no spins yet, got %d", len(profile.RecentSpins))
	}
}
