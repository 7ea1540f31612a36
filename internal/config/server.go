package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	// Accepts any init data without signature verification. Local dev only.
	AllowUnsignedAuth bool `env:"ALLOW_UNSIGNED_AUTH" envDefault:"false"`
	AuthMaxAgeMins    int  `env:"AUTH_MAX_AGE_MINUTES" envDefault:"1440"`

	JWTSecret   string `env:"JWT_SECRET,required,notEmpty"`
	JWTTTLHours int    `env:"JWT_TTL_HOURS" envDefault:"72"`

	InitialBalance int64 `env:"INITIAL_BALANCE" envDefault:"1000"`
	MinBet         int64 `env:"MIN_BET" envDefault:"10"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
