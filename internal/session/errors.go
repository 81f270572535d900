package session

import "errors"

var (
	ErrStoreFull       = errors.New("session_store_full")
	ErrSessionNotFound = errors.New("session_not_found")
	ErrPlayerNotFound  = errors.New("player_not_found")
	ErrUnknownKind     = errors.New("unknown_game_kind")
)
