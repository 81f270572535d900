// Package archive persists finished sessions to Postgres so players can
// revisit scores and word lists after the in-memory session is gone.
package archive

import (
	"context"
	"time"

	"gamejay/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS game_sessions (
	id          TEXT PRIMARY KEY,
	session_key TEXT NOT NULL,
	game_kind   TEXT NOT NULL,
	chat_id     TEXT,
	message_id  TEXT,
	inline_id   TEXT,
	turn_count  INT NOT NULL,
	winner_ids  TEXT[] NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS game_players (
	session_id TEXT NOT NULL REFERENCES game_sessions(id),
	player_id  TEXT NOT NULL,
	name       TEXT NOT NULL,
	score      INT NOT NULL,
	words      TEXT[] NOT NULL,
	PRIMARY KEY (session_id, player_id)
);
`

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// SaveSession writes one finished session and its players in a single
// transaction.
func (s *Store) SaveSession(ctx context.Context, snap session.Session) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	id := newID()
	winners := snap.WinnerIDs
	if winners == nil {
		winners = []string{}
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO game_sessions (id, session_key, game_kind, chat_id, message_id, inline_id, turn_count, winner_ids, created_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, snap.Key, string(snap.Kind), snap.Ref.ChatID, snap.Ref.MessageID, snap.Ref.InlineID,
		snap.TurnCount, winners, snap.Created, time.Now().UTC())
	if err != nil {
		return err
	}
	for _, playerID := range snap.JoinOrder {
		p := snap.Players[playerID]
		if p == nil {
			continue
		}
		words := p.Words
		if words == nil {
			words = []string{}
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO game_players (session_id, player_id, name, score, words)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, playerID, p.Name, p.Score, words)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Hook adapts the store into a session completion callback: best effort,
// never on the request path, failures logged and dropped.
func (s *Store) Hook() func(session.Session) {
	return func(snap session.Session) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.SaveSession(ctx, snap); err != nil {
			log.Error().Err(err).Str("session", snap.Key).Msg("session archive failed")
			return
		}
		log.Info().Str("session", snap.Key).Msg("session archived")
	}
}
