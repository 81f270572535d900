package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gamejay/internal/board"
	"gamejay/internal/config"
	"gamejay/internal/score"
	"gamejay/internal/session"

	"github.com/go-chi/chi/v5"
)

type stubBoards struct{}

func (stubBoards) Take() (board.Board, error) {
	return board.Board{
		Grid:  []string{"C", "A", "T", "S"},
		Words: []string{"CAT", "CATS"},
	}, nil
}

func newTestApp(t *testing.T, capacity int) (*chi.Mux, *session.Store, config.ServerConfig) {
	t.Helper()
	cfg := config.ServerConfig{
		GameURL:        "http://game.test",
		UnavailableURL: "http://unavailable.test/503",
	}
	st := session.NewStore(stubBoards{}, session.DefaultRules(cfg.GameURL), capacity, 2)
	engine := score.NewEngine(st, nil)
	engine.Start()
	t.Cleanup(engine.Close)
	return newRouter(cfg, st, engine), st, cfg
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	rec := doRequest(t, r, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
}

func TestJoinChatRedirectsToPlay(t *testing.T) {
	r, _, cfg := newTestApp(t, 10)
	rec := doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if !strings.HasPrefix(loc.String(), cfg.GameURL) {
		t.Fatalf("location = %s", loc)
	}
	q := loc.Query()
	if q.Get("session") != session.DeriveKey("-100", "1") {
		t.Fatalf("session param = %q", q.Get("session"))
	}
	if q.Get("user") != "u1" || q.Get("spectate") != "" {
		t.Fatalf("query = %v", q)
	}
}

func TestJoinInlineRedirectsToPlay(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	rec := doRequest(t, r, http.MethodGet, "/join-game/inline123/u1/Ann", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Query().Get("session") != session.DeriveInlineKey("inline123") {
		t.Fatalf("session param = %q", loc.Query().Get("session"))
	}
}

func TestJoinAfterStartRedirectsToSpectate(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	key := session.DeriveKey("-100", "1")

	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")
	if rec := doRequest(t, r, http.MethodPatch, "/start-game/"+key+"/u1", ""); rec.Code != http.StatusOK {
		t.Fatalf("start status = %d", rec.Code)
	}

	rec := doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "spectate=true") {
		t.Fatalf("location = %s", rec.Header().Get("Location"))
	}
}

func TestJoinFullStoreRedirectsUnavailable(t *testing.T) {
	r, _, cfg := newTestApp(t, 1)
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")

	rec := doRequest(t, r, http.MethodGet, "/join-game/-100/2/u1/Ann", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Location") != cfg.UnavailableURL {
		t.Fatalf("location = %s", rec.Header().Get("Location"))
	}
}

func TestStartGameUnknownSession(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	rec := doRequest(t, r, http.MethodPatch, "/start-game/nope/u1", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResultRoundTrip(t *testing.T) {
	r, st, _ := newTestApp(t, 10)
	key := session.DeriveKey("-100", "1")
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u2/Bob", "")

	rec := doRequest(t, r, http.MethodPost, "/result/"+key+"/u1", `{"score":5,"words":["CAT"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	view, err := st.View(key)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	p := view.Players["u1"]
	if p == nil || !p.Done || p.Score != 5 || len(p.Words) != 1 {
		t.Fatalf("player = %+v", p)
	}
}

func TestResultRejections(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	key := session.DeriveKey("-100", "1")
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")

	if rec := doRequest(t, r, http.MethodPost, "/result/"+key+"/u1", `not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d", rec.Code)
	}
	if rec := doRequest(t, r, http.MethodPost, "/result/"+key+"/u1", `{"score":-1}`); rec.Code != http.StatusInternalServerError {
		t.Fatalf("negative score status = %d", rec.Code)
	}
	if rec := doRequest(t, r, http.MethodPost, "/result/nope/u1", `{"score":1}`); rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown session status = %d", rec.Code)
	}
}

func TestBoardEndpoint(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	key := session.DeriveKey("-100", "1")
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")

	rec := doRequest(t, r, http.MethodGet, "/board/"+key, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var b board.Board
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(b.Grid) != 4 || len(b.Words) != 2 {
		t.Fatalf("board = %+v", b)
	}

	if rec := doRequest(t, r, http.MethodGet, "/board/nope", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown board status = %d", rec.Code)
	}
}

func TestSessionEndpoint(t *testing.T) {
	r, _, _ := newTestApp(t, 10)
	key := session.DeriveKey("-100", "1")
	doRequest(t, r, http.MethodGet, "/join-game/-100/1/u1/Ann", "")

	rec := doRequest(t, r, http.MethodGet, "/session/"+key, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view session.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Players["u1"] == nil || view.Players["u1"].Name != "Ann" {
		t.Fatalf("view = %+v", view)
	}

	rec = doRequest(t, r, http.MethodGet, "/session/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session status = %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("error content type = %q", rec.Header().Get("Content-Type"))
	}
	var errBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["error"] != "session_not_found" {
		t.Fatalf("error body = %v", errBody)
	}
}
