package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gamejay/internal/config"
	"gamejay/internal/logging"
	"gamejay/internal/score"
	"gamejay/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/rs/zerolog/log"
)

func newRouter(cfg config.ServerConfig, st *session.Store, engine *score.Engine) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(requestLogger())

	r.Get("/healthz", healthHandler(st))

	r.Get("/join-game/{inlineId}/{userId}/{userName}", joinInlineHandler(cfg, st))
	r.Get("/join-game/{chatId}/{messageId}/{userId}/{userName}", joinChatHandler(cfg, st))
	r.Patch("/start-game/{sessionId}/{userId}", startGameHandler(st))
	r.Post("/result/{sessionId}/{userId}", resultHandler(engine))
	r.Get("/board/{sessionId}", boardHandler(st))
	r.Get("/session/{sessionId}", sessionHandler(st))

	return r
}

// requestLogger emits one JSON line per request into the shared log sink.
// Session and player ids come straight from the route, so a game's whole
// request history greps by one attr.
func requestLogger() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), nil)),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "elapsed_ms"},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				attrs := []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
				}
				if rc := chi.RouteContext(req.Context()); rc != nil {
					if key := rc.URLParam("sessionId"); key != "" {
						attrs = append(attrs, slog.String("session", key))
					}
					if player := rc.URLParam("userId"); player != "" {
						attrs = append(attrs, slog.String("player", player))
					}
				}
				return attrs
			},
		},
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, map[string]string{"error": reason})
}

func logRoutes(r chi.Router) {
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Info().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
	}
}
