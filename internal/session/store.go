package session

import (
	"sync"
	"time"

	"gamejay/internal/board"

	"github.com/rs/zerolog/log"
)

// BoardSource supplies boards for kinds that need one.
type BoardSource interface {
	Take() (board.Board, error)
}

// Store is the process-owned registry of live sessions. Every mutation of
// a session runs under the store lock; external calls never do.
type Store struct {
	boards    BoardSource
	rules     map[Kind]Rules
	capacity  int
	retention time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(boards BoardSource, rules map[Kind]Rules, capacity, expiryDays int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	if expiryDays < 1 {
		expiryDays = 1
	}
	return &Store{
		boards:    boards,
		rules:     rules,
		capacity:  capacity,
		retention: time.Duration(expiryDays) * 24 * time.Hour,
		now:       time.Now,
		sessions:  map[string]*Session{},
	}
}

// RulesFor exposes the per-kind rules table.
func (s *Store) RulesFor(kind Kind) (Rules, bool) {
	r, ok := s.rules[kind]
	return r, ok
}

// View returns the read projection of a session.
func (s *Store) View(key string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return View{}, ErrSessionNotFound
	}
	return sess.view(), nil
}

// Board returns the session's board, if it has one.
func (s *Store) Board(key string) (*board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok || sess.Board == nil {
		return nil, ErrSessionNotFound
	}
	return sess.Board, nil
}

// WithSession runs fn on the session under the store lock. fn must not
// block on anything external.
func (s *Store) WithSession(key string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(sess)
}

// Delete drops a session from memory. The external scoreboard is never
// touched; anything persisted there stays.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// PurgeExpired removes every session older than the retention window and
// reports how many went.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purgeExpiredLocked()
}

func (s *Store) purgeExpiredLocked() int {
	cutoff := s.now().Add(-s.retention)
	n := 0
	for key, sess := range s.sessions {
		if sess.Created.Before(cutoff) {
			delete(s.sessions, key)
			n++
		}
	}
	if n > 0 {
		log.Info().Int("purged", n).Msg("expired sessions removed")
	}
	return n
}

// create inserts a new session for key, pulling a board first when the
// kind requires one. The board pull happens outside the lock so on-demand
// synthesis cannot stall other sessions.
func (s *Store) create(kind Kind, key string, ref ChatRef) (*Session, error) {
	rules, ok := s.rules[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	s.mu.Lock()
	s.purgeExpiredLocked()
	if len(s.sessions) >= s.capacity {
		s.mu.Unlock()
		log.Warn().Int("capacity", s.capacity).Msg("session store at capacity")
		return nil, ErrStoreFull
	}
	s.mu.Unlock()

	var b *board.Board
	if rules.NeedsBoard {
		bd, err := s.boards.Take()
		if err != nil {
			log.Error().Err(err).Msg("board supplier failed")
			return nil, err
		}
		b = &bd
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.sessions[key]; existing != nil {
		// lost the race to a concurrent join for the same trigger
		return existing, nil
	}
	if len(s.sessions) >= s.capacity {
		return nil, ErrStoreFull
	}
	sess := &Session{
		Key:     key,
		Ref:     ref,
		Kind:    kind,
		Board:   b,
		Players: map[string]*Player{},
		Created: s.now(),
	}
	s.sessions[key] = sess
	return sess, nil
}
