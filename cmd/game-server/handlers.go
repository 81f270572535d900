package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamejay/internal/config"
	"gamejay/internal/score"
	"gamejay/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func healthHandler(st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": st.Len()})
	}
}

func joinChatHandler(cfg config.ServerConfig, st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID := chi.URLParam(r, "chatId")
		messageID := chi.URLParam(r, "messageId")
		userID := chi.URLParam(r, "userId")
		userName := chi.URLParam(r, "userName")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		key := session.DeriveKey(chatID, messageID)
		ref := session.ChatRef{ChatID: chatID, MessageID: messageID}
		redirectJoin(cfg, st, w, r, key, ref, userID, userName)
	}
}

func joinInlineHandler(cfg config.ServerConfig, st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inlineID := chi.URLParam(r, "inlineId")
		userID := chi.URLParam(r, "userId")
		userName := chi.URLParam(r, "userName")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		key := session.DeriveInlineKey(inlineID)
		ref := session.ChatRef{InlineID: inlineID}
		redirectJoin(cfg, st, w, r, key, ref, userID, userName)
	}
}

func redirectJoin(cfg config.ServerConfig, st *session.Store, w http.ResponseWriter, r *http.Request, key string, ref session.ChatRef, userID, userName string) {
	dest, err := st.Join(session.KindWordHunt, key, ref, userID, userName)
	if err != nil {
		log.Warn().Err(err).Str("session", key).Msg("join failed, degrading")
		http.Redirect(w, r, cfg.UnavailableURL, http.StatusFound)
		return
	}
	http.Redirect(w, r, dest.URL, http.StatusFound)
}

func startGameHandler(st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "sessionId")
		userID := chi.URLParam(r, "userId")
		if err := st.MarkStarted(key, userID); err != nil {
			log.Error().Err(err).Str("session", key).Str("player", userID).Msg("start-game failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

type resultBody struct {
	Score int      `json:"score"`
	Words []string `json:"words"`
}

func resultHandler(engine *score.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "sessionId")
		userID := chi.URLParam(r, "userId")
		var body resultBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if err := engine.SubmitResult(key, userID, body.Score, body.Words); err != nil {
			log.Error().Err(err).Str("session", key).Str("player", userID).Msg("result rejected")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func boardHandler(st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "sessionId")
		b, err := st.Board(key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "board_not_found")
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

func sessionHandler(st *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "sessionId")
		view, err := st.View(key)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				writeError(w, http.StatusNotFound, "session_not_found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
