package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	APIURL     string `env:"API_URL" envDefault:"http://localhost:8080"`
	AuthToken  string `env:"AUTH_TOKEN" envDefault:""`
	BetAmount  int64  `env:"BET_AMOUNT" envDefault:"10"`
	IntervalMS int    `env:"INTERVAL_MS" envDefault:"1000"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
