package main

import (
	"context"
	"net/http"
	"time"

	"gamejay/internal/archive"
	"gamejay/internal/board"
	"gamejay/internal/config"
	"gamejay/internal/logging"
	"gamejay/internal/score"
	"gamejay/internal/scoreboard"
	"gamejay/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadLog()
	if err != nil {
		log.Fatal().Err(err).Msg("load log config")
	}
	logging.Init(logCfg)

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config")
	}

	dict, err := board.LoadDictionary()
	if err != nil {
		log.Fatal().Err(err).Msg("load dictionary")
	}
	log.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	gen := board.NewGenerator(dict, cfg.BoardMinSolutions)
	supplier := board.NewSupplier(gen, cfg.BoardPoolSize)
	if err := supplier.Prepare(); err != nil {
		log.Fatal().Err(err).Msg("prepare board pool")
	}

	st := session.NewStore(supplier, session.DefaultRules(cfg.GameURL), cfg.SessionMax, cfg.SessionExpiryDays)

	var adapter scoreboard.Adapter
	if cfg.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram bot init")
		}
		adapter = scoreboard.NewTelegram(bot)
	} else {
		log.Warn().Msg("BOT_TOKEN empty, scoreboard updates disabled")
	}

	engine := score.NewEngine(st, adapter)

	if cfg.PostgresDSN != "" {
		arch, err := archive.New(cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("archive init")
		}
		defer arch.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := arch.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("archive ping")
		}
		if err := arch.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("archive schema")
		}
		engine.OnComplete = arch.Hook()
	}

	engine.Start()
	defer engine.Close()

	r := newRouter(cfg, st, engine)
	logRoutes(r)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("game server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("http server")
	}
}
