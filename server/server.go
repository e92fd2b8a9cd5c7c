package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"boardgames/agent"
	"boardgames/checkers"
	"boardgames/chess"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/gamemaster"
	"boardgames/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// PositionRequest describes a position to analyse. Board holds eight rows
// from Black's home edge down, in the ParseBoard notation of the game.
type PositionRequest struct {
	Board      []string `json:"board"`
	ToMove     string   `json:"to_move"`
	Difficulty string   `json:"difficulty,omitempty"`
	// Chain is the square of a checkers piece in the middle of a capture
	// sequence, which is then the only piece allowed to move.
	Chain string `json:"chain,omitempty"`
	From  string `json:"from,omitempty"`
}

type MoveResponse struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Move     string   `json:"move"`
	Notation string   `json:"notation"`
	Captured []string `json:"captured,omitempty"`
	Outcome  string   `json:"outcome"`
	Nodes    int      `json:"nodes,omitempty"`
	Millis   int64    `json:"millis"`
}

type DestinationsResponse struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
	Outcome      string   `json:"outcome"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Outcome string `json:"outcome,omitempty"`
}

var errNoMove = errors.New("side to move has no legal move")

// Server answers "find me a move" requests for posted positions. It keeps no
// game state between requests.
type Server struct {
	seed atomic.Uint64
}

// New creates a server. A zero seed picks one from the clock.
func New(seed uint64) *Server {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Server{}
	s.seed.Store(seed)
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Route("/{game}", func(r chi.Router) {
		r.Post("/move", s.handleMove)
		r.Post("/destinations", s.handleDestinations)
	})
	return r
}

// rng hands every request its own generator; the shared seed only advances.
func (s *Server) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed.Add(1)))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	difficulty, err := agent.ParseDifficulty(payload.Difficulty)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	state, err := parseState(chi.URLParam(r, "game"), payload)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	session := gamemaster.NewSession(state)
	if outcome := session.Outcome(); outcome.Over() {
		writeJSON(w, http.StatusConflict, errorResponse{Error: errNoMove.Error(), Outcome: outcome.String()})
		return
	}

	start := time.Now()
	move, metric := newAgent(state, difficulty, s.rng()).FindMove(state)
	if move == nil {
		writeJSON(w, http.StatusConflict, errorResponse{Error: errNoMove.Error(), Outcome: session.Outcome().String()})
		return
	}
	outcome, err := session.Apply(move)
	if err != nil {
		// The agent only picks among legal moves.
		log.Error().Msgf("%s agent produced a move the session rejected: %v", difficulty, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, moveResponse(move, session.Log()[0].Notation, outcome, metric, time.Since(start)))
}

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	var payload PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	from, err := game.ParsePosition(payload.From)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	state, err := parseState(chi.URLParam(r, "game"), payload)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	session := gamemaster.NewSession(state)
	resp := DestinationsResponse{From: from.String(), Destinations: []string{}, Outcome: session.Outcome().String()}
	for _, to := range session.LegalDestinations(from) {
		resp.Destinations = append(resp.Destinations, to.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

var errUnknownGame = errors.New("unknown game")

func statusFor(err error) int {
	if errors.Is(err, errUnknownGame) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func parseState(name string, payload PositionRequest) (game.State, error) {
	toMove, err := game.ParseColor(payload.ToMove)
	if err != nil {
		return nil, err
	}

	switch name {
	case "chess":
		b, err := chess.ParseBoard(payload.Board)
		if err != nil {
			return nil, err
		}
		if _, ok := b.KingPosition(toMove); !ok {
			return nil, fmt.Errorf("no %s king on the board", toMove)
		}
		return chess.NewStateFromBoard(b, toMove), nil
	case "checkers":
		b, err := checkers.ParseBoard(payload.Board)
		if err != nil {
			return nil, err
		}
		s := checkers.NewStateFromBoard(b, toMove)
		if payload.Chain != "" {
			chain, err := game.ParsePosition(payload.Chain)
			if err != nil {
				return nil, err
			}
			if p := b.At(chain); p.Empty() || p.Color != toMove {
				return nil, fmt.Errorf("no %s piece on chain square %s", toMove, chain)
			}
			s.Chaining, s.Chain = true, chain
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownGame, name)
}

func newAgent(state game.State, d agent.Difficulty, rng *rand.Rand) agent.Agent {
	if _, ok := state.(*chess.State); ok {
		return agent.NewChess(d, rng, searcher.WithMetrics())
	}
	return agent.NewCheckers(d, rng, searcher.WithMetrics())
}

func moveResponse(move game.Move, notation string, outcome game.Outcome, metric metrics.SearchMetric, elapsed time.Duration) MoveResponse {
	from, to := move.Squares()
	resp := MoveResponse{
		From:     from.String(),
		To:       to.String(),
		Move:     move.String(),
		Notation: notation,
		Outcome:  outcome.String(),
		Nodes:    metric.Nodes,
		Millis:   elapsed.Milliseconds(),
	}
	if m, ok := move.(checkers.Move); ok {
		for _, c := range m.Captured {
			resp.Captured = append(resp.Captured, c.At.String())
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
