package config

import "testing"

func TestLoadBotDefaults(t *testing.T) {
	cfg, err := LoadBot()
	if err != nil {
		t.Fatalf("LoadBot() error = %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Fatalf("APIURL = %q, want http://localhost:8080", cfg.APIURL)
	}
	if cfg.BetAmount != 10 {
		t.Fatalf("BetAmount = %d, want 10", cfg.BetAmount)
	}
}

func TestLoadBotOverrides(t *testing.T) {
	t.Setenv("API_URL", "http://127.0.0.1:9000")
	t.Setenv("AUTH_TOKEN", "token-a")
	t.Setenv("BET_AMOUNT", "50")

	cfg, err := LoadBot()
	if err != nil {
		t.Fatalf("LoadBot() error = %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9000" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.AuthToken != "token-a" || cfg.BetAmount != 50 {
		t.Fatalf("unexpected bot config: %+v", cfg)
	}
}
