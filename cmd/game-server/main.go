package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"tg-roulette/internal/config"
	"tg-roulette/internal/logging"
	"tg-roulette/internal/spectate"
	"tg-roulette/internal/store"
	httptransport "tg-roulette/internal/transport/http"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}
	if cfg.AllowUnsignedAuth {
		log.Warn().Msg("unsigned Telegram auth enabled; do not run this in production")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	hub := spectate.NewHub(256)
	r := httptransport.NewRouter(st, cfg, hub)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
