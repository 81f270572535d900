package main

import (
	"fmt"
	"net/url"
	"strconv"

	"gamejay/internal/config"
	"gamejay/internal/logging"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// word-bot is the Telegram front door: it serves the game tile in chats
// and inline queries, and answers game-launch callbacks with a join URL
// on the game server.
func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadLog()
	if err != nil {
		log.Fatal().Err(err).Msg("load log config")
	}
	logging.Init(logCfg)

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal().Err(err).Msg("load bot config")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot init")
	}
	log.Info().Str("bot", bot.Self.UserName).Str("game", cfg.GameShortName).Msg("bot online")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for update := range bot.GetUpdatesChan(u) {
		switch {
		case update.Message != nil && update.Message.IsCommand():
			handleCommand(bot, cfg, update.Message)
		case update.CallbackQuery != nil && update.CallbackQuery.GameShortName != "":
			handleGameCallback(bot, cfg, update.CallbackQuery)
		case update.InlineQuery != nil:
			handleInlineQuery(bot, cfg, update.InlineQuery)
		}
	}
}

func handleCommand(bot *tgbotapi.BotAPI, cfg config.BotConfig, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Send /game to deal a word hunt board.")
		if _, err := bot.Send(reply); err != nil {
			log.Error().Err(err).Msg("send help")
		}
	case "game":
		game := tgbotapi.GameConfig{
			BaseChat:      tgbotapi.BaseChat{ChatID: msg.Chat.ID},
			GameShortName: cfg.GameShortName,
		}
		if _, err := bot.Send(game); err != nil {
			log.Error().Err(err).Msg("send game")
		}
	}
}

func handleGameCallback(bot *tgbotapi.BotAPI, cfg config.BotConfig, cq *tgbotapi.CallbackQuery) {
	if cq.GameShortName != cfg.GameShortName {
		log.Warn().Str("game", cq.GameShortName).Msg("callback for unknown game")
		return
	}
	joinURL := buildJoinURL(cfg.ServerURL, cq)
	answer := tgbotapi.CallbackConfig{CallbackQueryID: cq.ID, URL: joinURL}
	if _, err := bot.Request(answer); err != nil {
		log.Error().Err(err).Msg("answer game callback")
	}
}

func buildJoinURL(serverURL string, cq *tgbotapi.CallbackQuery) string {
	userID := strconv.FormatInt(cq.From.ID, 10)
	userName := cq.From.FirstName
	if userName == "" {
		userName = cq.From.UserName
	}
	if cq.Message != nil {
		return fmt.Sprintf("%s/join-game/%d/%d/%s/%s",
			serverURL, cq.Message.Chat.ID, cq.Message.MessageID, userID, url.PathEscape(userName))
	}
	return fmt.Sprintf("%s/join-game/%s/%s/%s",
		serverURL, cq.InlineMessageID, userID, url.PathEscape(userName))
}

func handleInlineQuery(bot *tgbotapi.BotAPI, cfg config.BotConfig, iq *tgbotapi.InlineQuery) {
	result := tgbotapi.InlineQueryResultGame{
		Type:          "game",
		ID:            "word-hunt",
		GameShortName: cfg.GameShortName,
	}
	answer := tgbotapi.InlineConfig{
		InlineQueryID: iq.ID,
		Results:       []any{result},
	}
	if _, err := bot.Request(answer); err != nil {
		log.Error().Err(err).Msg("answer inline query")
	}
}
