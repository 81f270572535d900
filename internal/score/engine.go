package score

import (
	"gamejay/internal/scoreboard"
	"gamejay/internal/session"

	"github.com/rs/zerolog/log"
)

// Engine ingests reported results, keeps each session's winner set
// consistent, and mirrors leader changes to the external scoreboard
// through fire-and-forget commands.
type Engine struct {
	store *session.Store

	// OnComplete runs once per session, off the request path, when the
	// final turn lands. Winner announcement back to chat is deliberately
	// not done here yet.
	OnComplete func(session.Session)

	dispatch *dispatcher
}

func NewEngine(store *session.Store, adapter scoreboard.Adapter) *Engine {
	return &Engine{
		store:    store,
		dispatch: newDispatcher(adapter),
	}
}

// Start launches the scoreboard dispatch worker. Commands enqueued before
// Start sit in the buffer until then.
func (e *Engine) Start() {
	e.dispatch.start()
}

// Close drains no further commands and waits for the worker to stop.
func (e *Engine) Close() {
	e.dispatch.stop()
}

// SubmitResult records one player's final score for a session.
//
// Rejections (missing session or player, rescoring, negative score) leave
// every piece of state untouched and issue no external calls. On
// acceptance the turn counter advances, the winner set is recomputed from
// players already done, and any external score corrections are queued in
// admission order.
func (e *Engine) SubmitResult(key, playerID string, points int, words []string) error {
	if points < 0 {
		return ErrNegativeScore
	}

	var cmds []command
	var completed *session.Session
	err := e.store.WithSession(key, func(sess *session.Session) error {
		p, ok := sess.Players[playerID]
		if !ok {
			return session.ErrPlayerNotFound
		}
		if p.Done {
			return ErrAlreadyScored
		}
		rules, ok := e.store.RulesFor(sess.Kind)
		if !ok {
			return session.ErrUnknownKind
		}

		sess.TurnCount++
		cmds = reconcile(sess, playerID, points)
		p.Score = points
		p.Done = true
		if rules.RecordsWords {
			p.Words = words
		}

		if sess.TurnCount >= rules.TurnMax && !sess.Done {
			sess.Done = true
			snap := sess.Snapshot()
			completed = &snap
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		e.dispatch.enqueue(cmd)
	}
	if completed != nil {
		e.finish(*completed)
	}
	return nil
}

func (e *Engine) finish(snap session.Session) {
	log.Info().Str("session", snap.Key).Strs("winners", snap.WinnerIDs).Msg("session over")
	if e.OnComplete == nil {
		return
	}
	go e.OnComplete(snap)
}

// reconcile recomputes the winner set after playerID reported newScore and
// returns the external corrections to issue. The just-reported player is
// not part of the old field; their score lands on the record afterwards.
func reconcile(sess *session.Session, playerID string, newScore int) []command {
	type scored struct {
		id    string
		score int
	}
	old := make([]scored, 0, len(sess.Players))
	for _, id := range sess.JoinOrder {
		if id == playerID {
			continue
		}
		if p := sess.Players[id]; p != nil && p.Done {
			old = append(old, scored{id: id, score: p.Score})
		}
	}

	if len(old) == 0 {
		log.Info().Str("session", sess.Key).Msg("first finisher, winner decided on next result")
		return nil
	}

	var cmds []command
	// With exactly one earlier finisher the winner set is still empty;
	// seed it before comparing the new entrant so the tie and dethrone
	// arms below see a credited leader.
	if len(old) == 1 && old[0].score >= newScore {
		log.Info().Str("session", sess.Key).Str("player", old[0].id).Msg("first finisher confirmed as winner")
		sess.WinnerIDs = []string{old[0].id}
		cmds = append(cmds, command{op: opIncrement, ref: sess.Ref, playerID: old[0].id})
	}

	oldHigh := old[0].score
	for _, s := range old[1:] {
		if s.score > oldHigh {
			oldHigh = s.score
		}
	}

	switch {
	case newScore == oldHigh:
		log.Info().Str("session", sess.Key).Str("player", playerID).Strs("with", sess.WinnerIDs).Msg("score tied")
		sess.WinnerIDs = append(sess.WinnerIDs, playerID)
		cmds = append(cmds, command{op: opIncrement, ref: sess.Ref, playerID: playerID})
	case newScore > oldHigh:
		log.Info().Str("session", sess.Key).Str("player", playerID).Int("beat", oldHigh).Int("with", newScore).Msg("leader dethroned")
		for _, winner := range sess.WinnerIDs {
			cmds = append(cmds, command{op: opDecrement, ref: sess.Ref, playerID: winner})
		}
		sess.WinnerIDs = []string{playerID}
		cmds = append(cmds, command{op: opIncrement, ref: sess.Ref, playerID: playerID})
	}
	return cmds
}
