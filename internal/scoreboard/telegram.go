package scoreboard

import (
	"context"
	"fmt"
	"strconv"

	"gamejay/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram implements Adapter on top of the Telegram game score API. A
// session addressed inline uses the inline-message variants; otherwise the
// (chat, message) pair fixed at session creation.
type Telegram struct {
	bot *tgbotapi.BotAPI
}

func NewTelegram(bot *tgbotapi.BotAPI) *Telegram {
	return &Telegram{bot: bot}
}

func (t *Telegram) ReadScore(_ context.Context, ref session.ChatRef, playerID string) (int, bool, error) {
	userID, err := strconv.ParseInt(playerID, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("player id %q: %w", playerID, err)
	}
	cfg := tgbotapi.GetGameHighScoresConfig{UserID: userID}
	if err := addressConfig(ref, &cfg.ChatID, &cfg.MessageID, &cfg.InlineMessageID); err != nil {
		return 0, false, err
	}
	scores, err := t.bot.GetGameHighScores(cfg)
	if err != nil {
		return 0, false, err
	}
	for _, s := range scores {
		if s.User.ID == userID {
			return s.Score, true, nil
		}
	}
	return 0, false, nil
}

func (t *Telegram) WriteScore(_ context.Context, ref session.ChatRef, playerID string, score int, force bool) error {
	userID, err := strconv.ParseInt(playerID, 10, 64)
	if err != nil {
		return fmt.Errorf("player id %q: %w", playerID, err)
	}
	cfg := tgbotapi.SetGameScoreConfig{
		UserID: userID,
		Score:  score,
		Force:  force,
	}
	if err := addressConfig(ref, &cfg.ChatID, &cfg.MessageID, &cfg.InlineMessageID); err != nil {
		return err
	}
	_, err = t.bot.Request(cfg)
	return err
}

func addressConfig(ref session.ChatRef, chatID *int64, messageID *int, inlineID *string) error {
	if ref.Inline() {
		*inlineID = ref.InlineID
		return nil
	}
	chat, err := strconv.ParseInt(ref.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("chat id %q: %w", ref.ChatID, err)
	}
	msg, err := strconv.Atoi(ref.MessageID)
	if err != nil {
		return fmt.Errorf("message id %q: %w", ref.MessageID, err)
	}
	*chatID = chat
	*messageID = msg
	return nil
}
