package scoreboard

import (
	"context"
	"strings"

	"gamejay/internal/session"

	"github.com/rs/zerolog/log"
)

// Adapter is the external scoreboard boundary. ReadScore reports the
// player's persisted score and whether one exists. WriteScore must pass
// force=true whenever the new value could be at or below a previously
// recorded one; the platform refuses to lower a score otherwise.
type Adapter interface {
	ReadScore(ctx context.Context, ref session.ChatRef, playerID string) (int, bool, error)
	WriteScore(ctx context.Context, ref session.ChatRef, playerID string, score int, force bool) error
}

// Increment bumps the player's external score, starting at 1 for a player
// who never scored before.
func Increment(ctx context.Context, a Adapter, ref session.ChatRef, playerID string) error {
	old, ok, err := a.ReadScore(ctx, ref, playerID)
	if err != nil {
		return err
	}
	next := 1
	if ok {
		next = old + 1
	}
	return a.WriteScore(ctx, ref, playerID, next, false)
}

// Decrement lowers the player's external score by one, compensating an
// over-counted earlier win. Decrementing a player with no recorded score
// is a logic error to surface, so it warns and skips the write.
func Decrement(ctx context.Context, a Adapter, ref session.ChatRef, playerID string) error {
	old, ok, err := a.ReadScore(ctx, ref, playerID)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn().Str("player", playerID).Msg("decrement skipped, player has no score")
		return nil
	}
	return a.WriteScore(ctx, ref, playerID, old-1, true)
}

// IsNotModified recognizes the platform's idempotency conflict signal for
// a write that would not change the stored score.
func IsNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BOT_SCORE_NOT_MODIFIED")
}
