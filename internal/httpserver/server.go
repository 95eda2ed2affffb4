// internal/httpserver/server.go
//
// HTTP transport for the round engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/quit, GET /game/{id}.
//
// Notes:
//   - Every game id is an independent round; rounds share only the read-only word list.
//   - In-progress rounds are parked in a store.Store between requests.
//   - Finished rounds are deleted straight away, so their ids answer 404 afterwards.
//   - The answer is only ever sent back once a round is won or exhausted.

package httpserver

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
)

// WordList is the read-only dictionary shared by all rounds.
type WordList interface {
	game.Dictionary
	Stats() (answers int, allowed int)
}

// Options configures a Server. Store and Words are required.
type Options struct {
	Store        store.Store
	Words        WordList
	Random       random.Random
	QuitToken    string
	ClientOrigin string
	Timeout      time.Duration
}

// Server bundles router, round store and word list.
type Server struct {
	r         *chi.Mux
	store     store.Store
	words     WordList
	rnd       random.Random
	quitToken string

	// locks serialize load→submit→persist per game id; ids hash onto stripes.
	locks [64]sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Random == nil {
		opts.Random = random.New()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:         chi.NewRouter(),
		store:     opts.Store,
		words:     opts.Words,
		rnd:       opts.Random,
		quitToken: opts.QuitToken,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)               // one zerolog line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-go",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "POST /game/quit", "GET /game/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/quit", s.handleQuit)
		r.Get("/{id}", s.handleGetGame)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", map[string]any{"path": r.URL.Path})
	})
	return s
}

// Handler exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID       string `json:"gameId"`
	WordLength   int    `json:"wordLength"`
	MaxAttempts  int    `json:"maxAttempts"`
	AttemptsLeft int    `json:"attemptsLeft"`
}

// handleNewGame starts a round and parks it in the store.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	round, err := game.NewRound(s.words, s.rnd,
		game.WithTarget(req.Answer),
		game.WithQuitToken(s.quitToken),
	)
	if err != nil {
		if errors.Is(err, game.ErrInvalidTarget) {
			writeError(w, http.StatusBadRequest, "invalid_answer", nil)
			return
		}
		log.Error().Err(err).Msg("new round")
		writeError(w, http.StatusInternalServerError, "new_round_failed", nil)
		return
	}
	if err := s.store.Save(r.Context(), round.Snapshot()); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	log.Info().Str("gameId", round.ID()).Msg("round started")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:       round.ID(),
		WordLength:   game.WordLength,
		MaxAttempts:  game.MaxAttempts,
		AttemptsLeft: round.AttemptsLeft(),
	})
}

// guessReq is the payload for POST /game/guess and POST /game/quit.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// guessRes mirrors game.Report for the wire.
type guessRes struct {
	Kind         string                  `json:"kind"`
	Guess        string                  `json:"guess,omitempty"`
	Marks        []game.Verdict          `json:"marks,omitempty"`
	State        string                  `json:"state"` // "playing" | "won" | "quit" | "lost"
	Attempts     int                     `json:"attempts"`
	AttemptsLeft int                     `json:"attemptsLeft"`
	Keyboard     map[string]game.Verdict `json:"keyboard,omitempty"`
	Answer       string                  `json:"answer,omitempty"`
}

// invalidRes is returned with 422 when a guess fails validation.
type invalidRes struct {
	Error        string `json:"error"`
	Problem      string `json:"problem"`
	Message      string `json:"message"`
	Attempts     int    `json:"attempts"`
	AttemptsLeft int    `json:"attemptsLeft"`
}

// handleGuess applies one guess to a stored round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", nil)
		return
	}
	defer s.lock(req.GameID)()
	round, ok := s.load(w, r, req.GameID)
	if !ok {
		return
	}

	rep, err := round.Submit(req.Guess)
	if err != nil {
		writeError(w, http.StatusConflict, "round_over", nil)
		return
	}
	if rep.Kind == game.ReportInvalid {
		writeJSON(w, http.StatusUnprocessableEntity, invalidRes{
			Error:        "invalid_guess",
			Problem:      rep.Validation.Problem.String(),
			Message:      rep.Validation.Message(),
			Attempts:     rep.Attempts,
			AttemptsLeft: rep.AttemptsLeft,
		})
		return
	}
	if !s.persist(w, r, round) {
		return
	}
	writeJSON(w, http.StatusOK, toGuessRes(rep, round))
}

// handleQuit abandons a stored round.
func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", nil)
		return
	}
	defer s.lock(req.GameID)()
	round, ok := s.load(w, r, req.GameID)
	if !ok {
		return
	}
	rep, err := round.Quit()
	if err != nil {
		writeError(w, http.StatusConflict, "round_over", nil)
		return
	}
	if !s.persist(w, r, round) {
		return
	}
	writeJSON(w, http.StatusOK, toGuessRes(rep, round))
}

// gameRow is one accepted guess in GET /game/{id}.
type gameRow struct {
	Guess string         `json:"guess"`
	Marks []game.Verdict `json:"marks"`
}

// gameStateRes is returned by GET /game/{id}; it never includes the answer.
type gameStateRes struct {
	GameID       string                  `json:"gameId"`
	State        string                  `json:"state"`
	Attempts     int                     `json:"attempts"`
	AttemptsLeft int                     `json:"attemptsLeft"`
	Rows         []gameRow               `json:"rows"`
	Keyboard     map[string]game.Verdict `json:"keyboard"`
}

// handleGetGame reports the state of an in-progress round.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	round, ok := s.load(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	res := gameStateRes{
		GameID:       round.ID(),
		State:        round.Outcome().String(),
		Attempts:     round.Attempts(),
		AttemptsLeft: round.AttemptsLeft(),
		Rows:         []gameRow{},
		Keyboard:     round.Keyboard().Letters(),
	}
	for _, g := range round.Guesses() {
		res.Rows = append(res.Rows, gameRow{Guess: g, Marks: game.Compare(g, round.Target())})
	}
	writeJSON(w, http.StatusOK, res)
}

// lock holds the stripe for id until the returned func is called.
func (s *Server) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%uint32(len(s.locks))]
	mu.Lock()
	return mu.Unlock
}

// load fetches and restores a round, writing the error response itself
// when it cannot.
func (s *Server) load(w http.ResponseWriter, r *http.Request, id string) (*game.Round, bool) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_game_id", nil)
		return nil, false
	}
	snap, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", nil)
			return nil, false
		}
		log.Error().Err(err).Str("gameId", id).Msg("get round")
		writeError(w, http.StatusInternalServerError, "load_failed", nil)
		return nil, false
	}
	round, err := game.Restore(snap, s.words)
	if err != nil {
		log.Warn().Err(err).Str("gameId", id).Msg("restore round")
		_ = s.store.Delete(r.Context(), id)
		writeError(w, http.StatusGone, "round_unavailable", nil)
		return nil, false
	}
	return round, true
}

// persist saves an in-progress round or discards a finished one.
func (s *Server) persist(w http.ResponseWriter, r *http.Request, round *game.Round) bool {
	var err error
	if round.Outcome().Terminal() {
		err = s.store.Delete(r.Context(), round.ID())
		log.Info().
			Str("gameId", round.ID()).
			Str("outcome", round.Outcome().String()).
			Int("attempts", round.Attempts()).
			Msg("round finished")
	} else {
		err = s.store.Save(r.Context(), round.Snapshot())
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", round.ID()).Msg("persist round")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return false
	}
	return true
}

func toGuessRes(rep game.Report, round *game.Round) guessRes {
	return guessRes{
		Kind:         rep.Kind.String(),
		Guess:        rep.Guess,
		Marks:        rep.Verdicts,
		State:        rep.Outcome.String(),
		Attempts:     rep.Attempts,
		AttemptsLeft: rep.AttemptsLeft,
		Keyboard:     round.Keyboard().Letters(),
		Answer:       rep.Target,
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError sends {"error": code, ...extra}.
func writeError(w http.ResponseWriter, status int, code string, extra map[string]any) {
	body := map[string]any{"error": code}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}
