package main

// spin-bot hammers the play endpoint with fixed-size bets. Useful for
// smoke-testing a local server and for generating spectator traffic.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"tg-roulette/internal/config"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal(err)
	}
	client := &http.Client{Timeout: 10 * time.Second}

	token := cfg.AuthToken
	if token == "" {
		token, err = login(client, cfg.APIURL)
		if err != nil {
			log.Fatalf("login: %v (set AUTH_TOKEN or run the server with ALLOW_UNSIGNED_AUTH=true)", err)
		}
	}

	interval := time.Duration(cfg.IntervalMS) * time.Millisecond
	for {
		spin, err := play(client, cfg.APIURL, token, cfg.BetAmount)
		if err != nil {
			log.Printf("play: %v", err)
			time.Sleep(interval)
			continue
		}
		log.Printf("result=%d win=%v balance=%d", spin.Result, spin.IsWin, spin.NewBalance)
		if spin.NewBalance < cfg.BetAmount {
			log.Printf("balance %d below bet %d, stopping", spin.NewBalance, cfg.BetAmount)
			return
		}
		time.Sleep(interval)
	}
}

type playResponse struct {
	Result     int   `json:"result"`
	IsWin      bool  `json:"isWin"`
	NewBalance int64 `json:"newBalance"`
}

func play(client *http.Client, apiURL, token string, bet int64) (*playResponse, error) {
	body, _ := json.Marshal(map[string]int64{"betAmount": bet})
	req, err := http.NewRequest(http.MethodPost, apiURL+"/api/games/roulette/play", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, errResp.Error)
	}
	var out playResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// login provisions a throwaway account using unsigned init data.
func login(client *http.Client, apiURL string) (string, error) {
	id := 900000 + rand.Int63n(100000)
	v := url.Values{}
	v.Set("user", fmt.Sprintf(`{"id":%d,"username":"spin-bot-%d","first_name":"Bot"}`, id, id))
	v.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
	body, _ := json.Marshal(map[string]string{"initData": v.Encode()})

	resp, err := client.Post(apiURL+"/api/auth/telegram", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}
