package auth

import (
	"errors"
	"testing"
	"time"
)

func TestMintAndParseToken(t *testing.T) {
	token, err := MintToken("secret", "account-1", time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	sub, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "account-1" {
		t.Fatalf("subject = %q, want account-1", sub)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := MintToken("secret", "account-1", time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseToken("other", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := MintToken("secret", "account-1", -time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseToken("secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
