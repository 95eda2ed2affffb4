package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

type ServerSuite struct {
	suite.Suite
	store  store.Store
	server *Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	list, err := words.New(
		[]string{"tango", "mango"},
		[]string{"cargo", "banjo", "largo", "mambo", "radar"},
	)
	s.Require().NoError(err)
	s.store = store.NewMemoryStore()
	s.server = New(Options{
		Store:        s.store,
		Words:        list,
		Random:       random.NewMockRandom(0),
		ClientOrigin: "http://example.test",
	})
}

func (s *ServerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *ServerSuite) newGame(answer string) string {
	rec := s.do(http.MethodPost, "/game/new", map[string]string{"answer": answer})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var res newGameRes
	s.decode(rec, &res)
	s.Require().NotEmpty(res.GameID)
	s.Equal(game.WordLength, res.WordLength)
	s.Equal(game.MaxAttempts, res.MaxAttempts)
	return res.GameID
}

func (s *ServerSuite) guess(id, word string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/game/guess", guessReq{GameID: id, Guess: word})
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true}`, rec.Body.String())
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
	s.Equal("http://example.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestDebugWords() {
	rec := s.do(http.MethodGet, "/debug/words", nil)
	s.JSONEq(`{"answers":2,"allowed":7}`, rec.Body.String())
}

func (s *ServerSuite) TestPreflight() {
	rec := s.do(http.MethodOptions, "/game/new", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerSuite) TestNewGameRandomAnswer() {
	rec := s.do(http.MethodPost, "/game/new", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var res newGameRes
	s.decode(rec, &res)

	snap, err := s.store.Get(context.Background(), res.GameID)
	s.Require().NoError(err)
	s.Equal("tango", snap.Target)
}

func (s *ServerSuite) TestNewGameRejectsUnknownAnswer() {
	rec := s.do(http.MethodPost, "/game/new", map[string]string{"answer": "zebra"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"invalid_answer"}`, rec.Body.String())
}

func (s *ServerSuite) TestInvalidGuessesThenWin() {
	id := s.newGame("tango")

	for _, g := range []string{"tan", "kalak", "123"} {
		rec := s.guess(id, g)
		s.Equal(http.StatusUnprocessableEntity, rec.Code, g)
		var res invalidRes
		s.decode(rec, &res)
		s.Equal("invalid_guess", res.Error)
		s.Equal(0, res.Attempts)
		s.Equal(game.MaxAttempts, res.AttemptsLeft)
	}

	rec := s.guess(id, "TANGO")
	s.Require().Equal(http.StatusOK, rec.Code)
	var res guessRes
	s.decode(rec, &res)
	s.Equal("won", res.Kind)
	s.Equal("won", res.State)
	s.Equal("tango", res.Answer)
	s.Equal([]game.Verdict{game.CorrectPosition, game.CorrectPosition, game.CorrectPosition, game.CorrectPosition, game.CorrectPosition}, res.Marks)

	// finished rounds are discarded
	s.Equal(http.StatusNotFound, s.guess(id, "tango").Code)
}

func (s *ServerSuite) TestScoredGuessHidesAnswer() {
	id := s.newGame("tango")

	rec := s.guess(id, "mango")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"marks":["absent","correct","correct","correct","correct"]`)
	var res guessRes
	s.decode(rec, &res)
	s.Equal("scored", res.Kind)
	s.Equal("playing", res.State)
	s.Equal(1, res.Attempts)
	s.Equal(5, res.AttemptsLeft)
	s.Empty(res.Answer)
	s.Equal(game.Absent, res.Keyboard["m"])

	rec = s.do(http.MethodGet, "/game/"+id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "tango")
	var state gameStateRes
	s.decode(rec, &state)
	s.Equal(1, state.Attempts)
	s.Require().Len(state.Rows, 1)
	s.Equal("mango", state.Rows[0].Guess)
}

func (s *ServerSuite) TestExhaustion() {
	id := s.newGame("tango")
	misses := []string{"mango", "cargo", "banjo", "largo", "mambo", "radar"}
	var res guessRes
	for _, g := range misses {
		rec := s.guess(id, g)
		s.Require().Equal(http.StatusOK, rec.Code, g)
		s.decode(rec, &res)
	}
	s.Equal("exhausted", res.Kind)
	s.Equal("lost", res.State)
	s.Equal("tango", res.Answer)
	s.Equal(0, res.AttemptsLeft)

	_, err := s.store.Get(context.Background(), id)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *ServerSuite) TestQuitTokenAndQuitEndpoint() {
	id := s.newGame("tango")
	rec := s.guess(id, "no")
	s.Require().Equal(http.StatusOK, rec.Code)
	var res guessRes
	s.decode(rec, &res)
	s.Equal("quit", res.Kind)
	s.Equal(0, res.Attempts)
	s.Empty(res.Answer)

	id = s.newGame("tango")
	rec = s.do(http.MethodPost, "/game/quit", guessReq{GameID: id})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &res)
	s.Equal("quit", res.State)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/game/"+id, nil).Code)
}

func (s *ServerSuite) TestBadRequests() {
	rec := s.do(http.MethodPost, "/game/guess", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.guess("", "tango")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.guess("nope", "tango")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/nowhere", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"not_found","path":"/nowhere"}`, rec.Body.String())
}
