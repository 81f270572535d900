package session

import (
	"time"

	"gamejay/internal/board"
)

// ChatRef addresses the chat surface a session was launched from: either a
// chat message pair or an inline invocation, never both. Fixed at creation.
type ChatRef struct {
	ChatID    string `json:"chat_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	InlineID  string `json:"inline_id,omitempty"`
}

// Inline reports whether the session is addressed by inline invocation.
func (r ChatRef) Inline() bool {
	return r.InlineID != ""
}

// Player is one participant in a session.
type Player struct {
	Name string `json:"name"`
	// Started flips when the player loads the game client; a started
	// player who comes back can only spectate.
	Started bool `json:"started"`
	// Done marks the score as final. A done player is never rescored.
	Done bool `json:"done"`
	// Score holds the submitted result; meaningless until Done.
	Score int      `json:"score,omitempty"`
	Words []string `json:"words,omitempty"`
}

// Session is one played instance of a game tied to one chat trigger point.
type Session struct {
	Key   string
	Ref   ChatRef
	Kind  Kind
	Board *board.Board

	TurnCount int
	Players   map[string]*Player
	// JoinOrder preserves insertion order of Players.
	JoinOrder []string
	// WinnerIDs is the ordered set of currently leading done players.
	WinnerIDs []string

	Created time.Time
	Done    bool
}

// View is the read-only projection served over HTTP.
type View struct {
	Board   *board.Board       `json:"board,omitempty"`
	Players map[string]*Player `json:"players"`
	Done    bool               `json:"done"`
}

func (s *Session) view() View {
	players := make(map[string]*Player, len(s.Players))
	for id, p := range s.Players {
		cp := *p
		cp.Words = append([]string(nil), p.Words...)
		players[id] = &cp
	}
	return View{Board: s.Board, Players: players, Done: s.Done}
}

// Snapshot is a deep copy handed to completion hooks and archive writers
// after the session left the store's lock.
func (s *Session) Snapshot() Session {
	cp := *s
	cp.Players = make(map[string]*Player, len(s.Players))
	for id, p := range s.Players {
		pc := *p
		pc.Words = append([]string(nil), p.Words...)
		cp.Players[id] = &pc
	}
	cp.JoinOrder = append([]string(nil), s.JoinOrder...)
	cp.WinnerIDs = append([]string(nil), s.WinnerIDs...)
	return cp
}
