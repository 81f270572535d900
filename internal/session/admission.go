package session

import "net/url"

// Destination tells the transport layer where to send the player's
// browser after a join.
type Destination struct {
	URL      string
	Spectate bool
}

// Join finds or creates the session for key and admits the player.
//
// A brand-new player (and any known player who has not started yet) is
// sent to play; everyone else spectates: a started player rejoining
// forfeits further active play, and a player who could not be inserted
// because the session is full watches from the sidelines.
func (s *Store) Join(kind Kind, key string, ref ChatRef, playerID, playerName string) (Destination, error) {
	if _, err := s.findOrCreate(kind, key, ref); err != nil {
		return Destination{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return Destination{}, ErrSessionNotFound
	}
	rules := s.rules[sess.Kind]

	if _, present := sess.Players[playerID]; !present && len(sess.Players) < rules.PlayerMax {
		sess.Players[playerID] = &Player{Name: playerName}
		sess.JoinOrder = append(sess.JoinOrder, playerID)
	}

	p := sess.Players[playerID]
	spectate := p == nil || p.Started
	return Destination{
		URL:      playURL(rules.GameURL, key, playerID, spectate),
		Spectate: spectate,
	}, nil
}

// MarkStarted records that the player loaded the game client. From here
// on, rejoining sends them to spectate.
func (s *Store) MarkStarted(key, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return ErrSessionNotFound
	}
	p, ok := sess.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	p.Started = true
	return nil
}

func (s *Store) findOrCreate(kind Kind, key string, ref ChatRef) (*Session, error) {
	s.mu.Lock()
	sess := s.sessions[key]
	s.mu.Unlock()
	if sess != nil {
		return sess, nil
	}
	return s.create(kind, key, ref)
}

func playURL(base, key, playerID string, spectate bool) string {
	q := url.Values{}
	q.Set("session", key)
	q.Set("user", playerID)
	if spectate {
		q.Set("spectate", "true")
	}
	return base + "?" + q.Encode()
}
