package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"tg-roulette/internal/app/auth"
	"tg-roulette/internal/app/games"
	"tg-roulette/internal/config"
	"tg-roulette/internal/game"
	"tg-roulette/internal/spectate"
	"tg-roulette/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, hub *spectate.Hub) *chi.Mux {
	engine := game.NewEngine(st, nil, cfg.MinBet)
	gamesSvc := games.NewService(engine, st, hub)
	authSvc := auth.NewService(st, cfg)

	authHandlers := NewAuthHandlers(authSvc)
	gamesHandlers := NewGamesHandlers(gamesSvc)
	adminHandlers := NewAdminHandlers(st, engine.Ledger())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/auth/telegram", authHandlers.Login())

		r.Get("/public/spectate/events", spectate.EventsHandler(hub))

		r.Group(func(r chi.Router) {
			r.Use(UserAuthMiddleware(cfg.JWTSecret))
			r.Get("/auth/me", authHandlers.Me())
			r.Post("/games/roulette/play", gamesHandlers.Play())
			r.Get("/games/history", gamesHandlers.History())
			r.Get("/games/stats", gamesHandlers.Stats())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/accounts", adminHandlers.Accounts())
			r.Get("/ledger", adminHandlers.Ledger())
			r.Post("/topup", adminHandlers.Topup())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
